package models

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Text is a string field filled in by an LLM. Models regularly answer a
// "character count" or "target number" with a bare JSON number, so Text
// accepts any JSON value and keeps its plain text form.
type Text string

// UnmarshalJSON implements the legacy json.Unmarshaler interface, which
// both encoding/json and go-json-experiment honour.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(Flatten(b))
	return nil
}

// String returns the plain string value.
func (t Text) String() string { return string(t) }

// Leaves returns the scalar values of a JSON value in document order:
// strings unquoted, numbers and booleans literal. Member names and nulls
// are skipped. Malformed input yields its trimmed raw text.
func Leaves(b []byte) []string {
	dec := jsontext.NewDecoder(bytes.NewReader(b))
	var out []string
	for {
		tok, err := dec.ReadToken()
		if err != nil {
			if err != io.EOF && len(out) == 0 {
				if raw := strings.TrimSpace(string(b)); raw != "" {
					return []string{raw}
				}
			}
			return out
		}
		if kind, n := dec.StackIndex(dec.StackDepth()); kind == '{' && n%2 == 1 {
			continue // member name
		}
		switch tok.Kind() {
		case '"':
			if s := strings.TrimSpace(tok.String()); s != "" {
				out = append(out, s)
			}
		case '0', 't', 'f':
			out = append(out, tok.String())
		}
	}
}

// Flatten renders a JSON value as one line of text, joining its leaves
// with " - ".
func Flatten(b []byte) string {
	return strings.Join(Leaves(b), " - ")
}
