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

package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractString(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs_break_lines",
			html: `<html><body><p>The cat sat.</p><p>The dog ran.</p></body></html>`,
			want: "The cat sat.\nThe dog ran.",
		},
		{
			name: "headings_break_lines",
			html: `<body><h1>Title</h1><h3>Sub</h3>text</body>`,
			want: "Title\nSub\ntext",
		},
		{
			name: "text_after_closing_block_starts_new_line",
			html: `<body><h3>cat</h3>dog<p>one</p>two</body>`,
			want: "cat\ndog\none\ntwo",
		},
		{
			name: "nested_blocks_no_blank_lines",
			html: `<body><blockquote><p>quoted</p></blockquote><ul><li><p>item</p></li></ul></body>`,
			want: "quoted\nitem",
		},
		{
			name: "newlines_inside_text_kept",
			html: "<body><pre>a\n\nb</pre></body>",
			want: "a\n\nb",
		},
		{
			name: "scripts_and_styles_removed",
			html: `<body><script>var cat = 1;</script><style>p { color: red }</style><p>visible</p></body>`,
			want: "visible",
		},
		{
			name: "head_and_title_removed",
			html: `<html><head><title>Cat page</title><meta name="x" content="y"></head><body><p>body text</p></body></html>`,
			want: "body text",
		},
		{
			name: "comments_skipped",
			html: `<body><p>one<!-- a cat in a comment -->two</p></body>`,
			want: "onetwo",
		},
		{
			name: "entities_decoded",
			html: `<body><p>Tom &amp; Jerry&#39;s &quot;show&quot;</p></body>`,
			want: `Tom & Jerry's "show"`,
		},
		{
			name: "article_preferred",
			html: `<body><nav>menu</nav><article><p>story</p></article><footer>legal</footer></body>`,
			want: "story",
		},
		{
			name: "first_article_only",
			html: `<body><article><p>first</p></article><article><p>second</p></article></body>`,
			want: "first",
		},
		{
			name: "whitespace_only_text_skipped",
			html: "<body>\n  <div>\n    <span>a</span>\n    <span>b</span>\n  </div>\n</body>",
			want: "ab",
		},
		{
			name: "inline_text_kept_with_spaces",
			html: `<body><p>Hello <b>big</b> world</p></body>`,
			want: "Hello big world",
		},
		{
			name: "list_items_and_breaks",
			html: `<body><ul><li>one</li><li>two</li></ul><p>three<br>four</p></body>`,
			want: "one\ntwo\nthree\nfour",
		},
		{
			name: "empty_document",
			html: ``,
			want: "",
		},
		{
			name: "plain_text",
			html: `just text`,
			want: "just text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractString(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
