// Package validate holds the shared shape-coercion and escaping helpers
// used by the persistence layer and the HTTP surface.
package validate

import (
	"encoding/json"
	"html"

	"github.com/go-openapi/strfmt"
)

var (
	emptyArray  = json.RawMessage("[]")
	emptyObject = json.RawMessage("{}")
)

// SanitizeText escapes a string for safe interpolation into HTML markup
// produced by render consumers.
func SanitizeText(s string) string {
	return html.EscapeString(s)
}

// IsArray reports whether raw is a JSON array.
func IsArray(raw json.RawMessage) bool {
	var v []json.RawMessage
	return json.Unmarshal(raw, &v) == nil
}

// IsObject reports whether raw is a JSON object.
func IsObject(raw json.RawMessage) bool {
	var v map[string]json.RawMessage
	return json.Unmarshal(raw, &v) == nil
}

// EnsureArray returns raw when it is a JSON array and "[]" otherwise.
// Total: any input, including nil and unparseable bytes, yields an array.
func EnsureArray(raw json.RawMessage) json.RawMessage {
	if IsArray(raw) {
		return raw
	}
	return emptyArray
}

// EnsureObject returns raw when it is a JSON object and "{}" otherwise.
func EnsureObject(raw json.RawMessage) json.RawMessage {
	if IsObject(raw) {
		return raw
	}
	return emptyObject
}

// EnsureString decodes raw as a JSON string, falling back to def.
func EnsureString(raw json.RawMessage, def string) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return def
	}
	return s
}

// IsISODateTime reports whether s parses as an ISO-8601 / RFC 3339
// date-time.
func IsISODateTime(s string) bool {
	return strfmt.IsDateTime(s)
}
