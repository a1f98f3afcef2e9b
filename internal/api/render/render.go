package render

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Format is the caller-selected response representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// FormatQueryParam is the query parameter selecting the representation.
const FormatQueryParam = "format"

// MIMEApplicationXMLCharsetUTF8 is the content type of markup responses.
const MIMEApplicationXMLCharsetUTF8 = "application/xml; charset=utf-8"

// FormatFromQuery reads ?format=; anything other than xml selects JSON.
func FormatFromQuery(c *fiber.Ctx) Format {
	if strings.EqualFold(strings.TrimSpace(c.Query(FormatQueryParam)), string(FormatXML)) {
		return FormatXML
	}
	return FormatJSON
}

// Send writes payload with status in the representation chosen by the request.
func Send(c *fiber.Ctx, status int, payload any) error {
	if FormatFromQuery(c) == FormatXML {
		body, err := MarshalXML(payload)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, MIMEApplicationXMLCharsetUTF8)
		return c.Status(status).Send(body)
	}
	return c.Status(status).JSON(payload)
}

// OK writes payload with 200.
func OK(c *fiber.Ctx, payload any) error {
	return Send(c, fiber.StatusOK, payload)
}

// Created writes payload with 201.
func Created(c *fiber.Ctx, payload any) error {
	return Send(c, fiber.StatusCreated, payload)
}

// Error writes the uniform error body {error: message}.
func Error(c *fiber.Ctx, status int, message string) error {
	return Send(c, status, fiber.Map{"error": message})
}
