package models

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
)

func TestLeaves(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"string", `"water bottle"`, []string{"water bottle"}},
		{"number", `180`, []string{"180"}},
		{"null", `null`, nil},
		{"empty", ``, nil},
		{"object keeps order", `{"keyword": "summer water bottle", "volume": "high", "rank": 3}`, []string{"summer water bottle", "high", "3"}},
		{"nested", `{"a": ["x", {"b": true}], "c": null, "d": " "}`, []string{"x", "true"}},
		{"malformed", `{oops`, []string{"{oops"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Leaves([]byte(tt.in)))
		})
	}
}

func TestTextUnmarshal(t *testing.T) {
	var got struct {
		Title Text `json:"title"`
		Count Text `json:"count"`
		Tip   Text `json:"tip"`
		None  Text `json:"none"`
	}
	raw := `{"title": "Steel Bottle", "count": 180, "tip": {"text": "Lead with capacity", "why": "top search"}, "none": null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Equal(t, Text("Steel Bottle"), got.Title)
	require.Equal(t, Text("180"), got.Count)
	require.Equal(t, Text("Lead with capacity - top search"), got.Tip)
	require.Equal(t, Text(""), got.None)
}
