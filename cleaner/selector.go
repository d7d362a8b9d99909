package cleaner

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// noiseSelector matches markup that carries no description text.
var noiseSelector = cascadia.MustCompile(
	"script, style, noscript, iframe, img, picture, video, button, form, " +
		".a-button, .aplus-carousel-actions, .comparison-table .a-button-stack",
)

// StripNoise removes scripts, media and interactive widgets from an HTML
// fragment and returns the rendered remainder.
func StripNoise(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	for _, node := range cascadia.QueryAll(doc, noiseSelector) {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	}

	body := cascadia.Query(doc, cascadia.MustCompile("body"))
	if body == nil {
		body = doc
	}

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
