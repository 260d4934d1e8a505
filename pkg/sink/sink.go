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

// Package sink names and writes swapped output files.
package sink

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Suffix is appended to every output file name
const Suffix = "_Swapped"

var (
	schemeAndWWW = regexp.MustCompile(`(?i)^https?://(www\.)?`)
	// anything that is not safe in a file name on common filesystems
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\-]`)
)

// FileName returns the output name for an input file: story.txt becomes story_Swapped.txt
func FileName(name string) string {
	ext := filepath.Ext(name)
	if ext == filepath.Base(name) {
		// dotfile with no extension
		ext = ""
	}
	base := strings.TrimSuffix(name, ext)
	return base + Suffix + ext
}

// URLName returns the output file name for a page URL.
// https://www.example.com/a/b.html becomes example_com_a_b_html_Swapped.txt
func URLName(rawURL string) string {
	name := schemeAndWWW.ReplaceAllString(strings.TrimSpace(rawURL), "")
	name = unsafeChars.ReplaceAllString(name, "_")
	return name + Suffix + ".txt"
}

// 💾 Write saves text to dir/name, creating parent directories as needed.
// The file is written to a temp path then renamed, so readers never see a partial file.
// Returns the path written.
func Write(ctx context.Context, dir, name, text string) (string, error) {
	path := name
	if !filepath.IsAbs(name) && dir != "" {
		path = filepath.Join(dir, name)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Errorf("creating parent directories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(text)).Msg("wrote output file")

	return path, nil
}
