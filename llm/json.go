package llm

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/kaptinlin/jsonrepair"

	"github.com/use-agent/listingscout/models"
)

// maxPrunes bounds how many mistyped members DecodeJSON drops from one reply.
const maxPrunes = 32

// syntaxOptions accept what JSON.parse accepts: repeated member names (the
// last one wins) and stray invalid UTF-8.
var syntaxOptions = json.JoinOptions(
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
)

// replyOptions decode model replies leniently: any JSON value may fill a
// string, and a lone value or an object may fill a string list.
var replyOptions = json.JoinOptions(
	syntaxOptions,
	json.DiscardUnknownMembers(true),
	json.WithUnmarshalers(json.JoinUnmarshalers(
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, s *string) error {
			if dec.PeekKind() == '"' {
				return json.SkipFunc
			}
			v, err := dec.ReadValue()
			if err != nil {
				return err
			}
			*s = models.Flatten(v)
			return nil
		}),
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, list *[]string) error {
			switch dec.PeekKind() {
			case '[', 'n':
				return json.SkipFunc
			}
			v, err := dec.ReadValue()
			if err != nil {
				return err
			}
			*list = models.Leaves(v)
			return nil
		}),
	)),
)

// ExtractJSON cuts a model reply down to its JSON object: the span from the
// first '{' to the last '}', with any markdown code fences removed.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)
	if start, end := strings.Index(s, "{"), strings.LastIndex(s, "}"); start >= 0 && end > start {
		s = s[start : end+1]
	}
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// DecodeJSON extracts, repairs and decodes a model reply into T. Unknown
// members are discarded and missing members keep their zero value. A member
// whose shape cannot be coerced into its field is dropped, so it too keeps
// its zero value while the rest of the reply survives. Only a reply that is
// not a JSON object at all is an error.
func DecodeJSON[T any](raw string) (T, error) {
	var out T

	content := ExtractJSON(raw)
	if content == "" {
		return out, fmt.Errorf("no JSON object in reply")
	}

	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		slog.Debug("repair JSON payload failed", slog.Any("error", err))
		repaired = content
	}

	data := []byte(repaired)
	for range maxPrunes {
		var zero T
		out = zero
		err = json.Unmarshal(data, &out, replyOptions)
		if err == nil {
			return out, nil
		}

		var se *json.SemanticError
		if !errors.As(err, &se) || se.JSONPointer == "" {
			break
		}
		pruned, ok := prune(data, string(se.JSONPointer))
		if !ok {
			break
		}
		slog.Debug("dropped mistyped reply member",
			slog.String("pointer", string(se.JSONPointer)),
			slog.Any("error", se.Err),
		)
		data = pruned
	}
	var zero T
	return zero, fmt.Errorf("parse JSON reply: %w", err)
}

// prune removes the value at the RFC 6901 pointer from a JSON document.
func prune(data []byte, pointer string) ([]byte, bool) {
	var doc any
	if err := json.Unmarshal(data, &doc, syntaxOptions); err != nil {
		return nil, false
	}
	tokens := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, t := range tokens {
		tokens[i] = strings.NewReplacer("~1", "/", "~0", "~").Replace(t)
	}
	doc, ok := remove(doc, tokens)
	if !ok {
		return nil, false
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, false
	}
	return out, true
}

func remove(v any, tokens []string) (any, bool) {
	key, rest := tokens[0], tokens[1:]
	switch v := v.(type) {
	case map[string]any:
		child, ok := v[key]
		if !ok {
			return nil, false
		}
		if len(rest) == 0 {
			delete(v, key)
			return v, true
		}
		if child, ok = remove(child, rest); !ok {
			return nil, false
		}
		v[key] = child
		return v, true
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(v) {
			return nil, false
		}
		if len(rest) == 0 {
			return slices.Delete(v, i, i+1), true
		}
		child, ok := remove(v[i], rest)
		if !ok {
			return nil, false
		}
		v[i] = child
		return v, true
	}
	return nil, false
}
