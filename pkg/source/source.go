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

// Package source loads the text that gets swapped, from a local file or a web page.
package source

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/walteh/wordswap/pkg/fetch"
	"github.com/walteh/wordswap/pkg/htmltext"
)

// CandidatePattern matches the files offered at the file prompt
const CandidatePattern = "**/*.{txt,html,htm,md}"

// swappedMarker identifies files this tool wrote
const swappedMarker = "_Swapped"

var (
	ErrEmptyURL       = errors.Base("url is empty")
	ErrUnqualifiedURL = errors.Base("url must start with http:// or https://")
	ErrInvalidURL     = errors.Base("url is invalid")
)

// Kind describes where a Text came from
type Kind string

const (
	KindFile     Kind = "file"
	KindHTMLFile Kind = "html-file"
	KindURL      Kind = "url"
)

// 📄 Text is loaded content ready for swapping
type Text struct {
	// Origin is the file path or URL the text came from
	Origin string
	// Content is NFC-normalized, like the configured rule words
	Content string
	Kind    Kind
}

// ValidateURL checks that s is a fully-qualified http or https URL
func ValidateURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmptyURL
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return ErrUnqualifiedURL
	}

	u, err := url.Parse(s)
	if err != nil {
		return errors.Errorf("%w: %s", ErrInvalidURL, err.Error())
	}
	if u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// Path joins dir and name unless name is already absolute
func Path(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// Exists reports whether name is a regular file under dir
func Exists(dir, name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	info, err := os.Stat(Path(dir, name))
	return err == nil && info.Mode().IsRegular()
}

// 📂 File reads dir/name. HTML files are reduced to their text.
// The content is NFC-normalized so decomposed accents match the rules.
func File(ctx context.Context, dir, name string) (*Text, error) {
	path := Path(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	text := &Text{Origin: path, Content: string(data), Kind: KindFile}

	if isHTML(path) {
		content, err := htmltext.ExtractString(text.Content)
		if err != nil {
			return nil, errors.Errorf("extracting text from %s: %w", path, err)
		}
		text.Content = content
		text.Kind = KindHTMLFile
	}
	text.Content = norm.NFC.String(text.Content)

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("kind", string(text.Kind)).
		Int("length", len(text.Content)).
		Msg("loaded file")

	return text, nil
}

// 🌐 URL fetches a web page and reduces it to its text
func URL(ctx context.Context, fetcher fetch.Fetcher, rawURL string) (*Text, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := ValidateURL(rawURL); err != nil {
		return nil, errors.Errorf("validating url: %w", err)
	}

	page, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, errors.Errorf("fetching page: %w", err)
	}

	content, err := htmltext.ExtractString(page)
	if err != nil {
		return nil, errors.Errorf("extracting text from %s: %w", rawURL, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("url", rawURL).
		Int("length", len(content)).
		Msg("loaded page")

	return &Text{Origin: rawURL, Content: norm.NFC.String(content), Kind: KindURL}, nil
}

// List returns the candidate text files under dir, relative to it and sorted.
// Files written by a previous swap are left out.
func List(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	matches, err := doublestar.Glob(os.DirFS(dir), CandidatePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.Contains(filepath.Base(m), swappedMarker) {
			continue
		}
		files = append(files, filepath.FromSlash(m))
	}
	sort.Strings(files)

	return files, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
