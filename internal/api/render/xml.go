package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	rootElement = "response"
	itemElement = "item"
	keyElement  = "key"
)

var timeType = reflect.TypeOf(time.Time{})

// MarshalXML renders payload under a single <response> root. Map and struct keys become
// element names (struct fields use their json names), sequences become <item> elements.
// Keys that are not valid element names are written as <key name="...">.
func MarshalXML(payload any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if err := encodeElement(enc, rootElement, reflect.ValueOf(payload)); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func startElement(name string) xml.StartElement {
	if validElementName(name) {
		return xml.StartElement{Name: xml.Name{Local: name}}
	}
	return xml.StartElement{
		Name: xml.Name{Local: keyElement},
		Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: name}},
	}
}

func encodeElement(enc *xml.Encoder, name string, v reflect.Value) error {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			v = reflect.Value{}
			break
		}
		v = v.Elem()
	}

	start := startElement(name)
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeContent(enc, v); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func encodeContent(enc *xml.Encoder, v reflect.Value) error {
	if !v.IsValid() {
		return nil
	}
	if v.Type() == timeType {
		return enc.EncodeToken(xml.CharData(v.Interface().(time.Time).Format(time.RFC3339Nano)))
	}

	switch v.Kind() {
	case reflect.Map:
		keys := v.MapKeys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = fmt.Sprint(k.Interface())
		}
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return names[order[a]] < names[order[b]] })
		for _, i := range order {
			if err := encodeElement(enc, names[i], v.MapIndex(keys[i])); err != nil {
				return err
			}
		}
		return nil

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, omitEmpty, skip := fieldName(field)
			if skip || (omitEmpty && v.Field(i).IsZero()) {
				continue
			}
			if err := encodeElement(enc, name, v.Field(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return enc.EncodeToken(xml.CharData(v.Bytes()))
		}
		for i := 0; i < v.Len(); i++ {
			if err := encodeElement(enc, itemElement, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}

	return enc.EncodeToken(xml.CharData(scalarText(v)))
}

func scalarText(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func fieldName(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// validElementName accepts a subset of XML names: no colons and no "xml" prefix.
func validElementName(name string) bool {
	if name == "" || strings.HasPrefix(strings.ToLower(name), "xml") {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
