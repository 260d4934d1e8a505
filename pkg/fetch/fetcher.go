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

package fetch

import (
	"context"
	"time"
)

// 🌐 Fetcher returns the HTML of a web page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages with a plain GET request
type HTTPFetcher struct {
	Options *Options
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := URL(ctx, url, f.Options)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// BrowserFetcher renders pages in headless Chrome, for pages built by JavaScript
type BrowserFetcher struct {
	Timeout time.Duration
}

// Fetch implements Fetcher
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return Browser(ctx, url, f.Timeout)
}

// 🏭 New returns a BrowserFetcher when useBrowser is set and an HTTPFetcher otherwise
func New(opts *Options, useBrowser bool) Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if useBrowser {
		return &BrowserFetcher{Timeout: opts.Timeout}
	}
	return &HTTPFetcher{Options: opts}
}
