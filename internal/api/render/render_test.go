package render

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	ID      int64     `json:"sample_id"`
	Name    string    `json:"name"`
	Amount  float64   `json:"total_amount"`
	At      time.Time `json:"at"`
	Note    *string   `json:"note"`
	Hidden  string    `json:"-"`
	private string
}

type sampleList struct {
	Samples []sampleRecord `json:"samples"`
	Count   int            `json:"count"`
}

func serve(t *testing.T, target string, status int, payload any) (int, string, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Send(c, status, payload)
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), string(body)
}

func TestSendDefaultsToJSON(t *testing.T) {
	status, contentType, body := serve(t, "/", fiber.StatusCreated, fiber.Map{"message": "ok"})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, contentType, fiber.MIMEApplicationJSON)
	assert.JSONEq(t, `{"message":"ok"}`, body)

	_, contentType, _ = serve(t, "/?format=yaml", fiber.StatusOK, fiber.Map{})
	assert.Contains(t, contentType, fiber.MIMEApplicationJSON)
}

func TestSendXMLCollection(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	payload := sampleList{
		Samples: []sampleRecord{{ID: 1, Name: "Tea & cake", Amount: 12.5, At: at, Hidden: "x", private: "p"}},
		Count:   1,
	}

	status, contentType, body := serve(t, "/?format=XML", fiber.StatusOK, payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MIMEApplicationXMLCharsetUTF8, contentType)
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<response><samples><item><sample_id>1</sample_id><name>Tea &amp; cake</name>`+
			`<total_amount>12.5</total_amount><at>2025-03-01T12:30:00Z</at><note></note></item></samples>`+
			`<count>1</count></response>`,
		body)
}

func TestMarshalXMLMapsAreSorted(t *testing.T) {
	out, err := MarshalXML(map[string]any{"b": 2, "a": []string{"x", "y"}, "1bad": true})
	require.NoError(t, err)
	assert.Contains(t, string(out),
		`<response><key name="1bad">true</key><a><item>x</item><item>y</item></a><b>2</b></response>`)
}

func TestMarshalXMLEmptyCollection(t *testing.T) {
	out, err := MarshalXML(sampleList{Samples: []sampleRecord{}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<response><samples></samples><count>0</count></response>`)
}

func TestErrorShape(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "customer not found")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"customer not found"}`, string(body))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/?format=xml", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `<response><error>customer not found</error></response>`)
}
