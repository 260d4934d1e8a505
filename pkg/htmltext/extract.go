// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package htmltext turns an HTML document into plain text suitable for swapping.
package htmltext

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/net/html"
)

// noiseSelector lists elements whose text is never wanted
const noiseSelector = "script, style, noscript, template, head, title"

// lineBreakers are set on their own lines
var lineBreakers = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "label": true, "li": true, "br": true, "blockquote": true, "tr": true,
}

// Extract parses an HTML document and returns its text.
//
// If the document has an <article>, only the first one is used. Scripts, styles and the
// head section are dropped, comments are never output, and headings, paragraphs and the
// other line-breaking elements start a new line.
func Extract(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", errors.Errorf("parsing HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	root := doc.Selection
	if article := doc.Find("article").First(); article.Length() > 0 {
		root = article
	}

	var b strings.Builder
	for _, n := range root.Nodes {
		writeNode(&b, n)
	}

	return strings.TrimSpace(b.String()), nil
}

// ExtractString is Extract for an in-memory document
func ExtractString(doc string) (string, error) {
	return Extract(strings.NewReader(doc))
}

func writeNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// the parser has already decoded entities
		if strings.TrimSpace(n.Data) != "" {
			b.WriteString(n.Data)
		}
		return
	case html.ElementNode, html.DocumentNode:
	default:
		// comments, doctypes
		return
	}

	breaks := n.Type == html.ElementNode && lineBreakers[n.Data]
	if breaks {
		lineBreak(b)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c)
	}
	if breaks {
		lineBreak(b)
	}
}

// lineBreak ends the current line unless it is already ended, so nested and adjacent
// block elements never produce blank lines
func lineBreak(b *strings.Builder) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
}
