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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/cmd/wordswap/opts"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/operation"
)

// NewURLCmd creates a new url command
func NewURLCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url URL",
		Short: "Swap words in the text of a web page",
		Long: `URL fetches a web page and swaps the words in its text.
It will:
1. Fetch the page (plain HTTP, or headless Chrome when fetch.use_browser is set)
2. Extract the text, preferring the first <article>
3. Apply every rule in order
4. Save the result to the output directory, named after the URL`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "url").Logger().WithContext(cmd.Context())
			return SwapURL(ctx, opts, args[0])
		},
	}

	return cmd
}

// SwapURL swaps the words in the text of the page at url
func SwapURL(ctx context.Context, opts *opts.RootOpts, url string) error {
	logger := log.FromContext(ctx)
	logger.Header("swapping " + url)
	logger.Infof("fetching %s", url)

	op := operation.NewSwapURLOperation(opts.Base(), url, opts.Fetcher)
	outcome, err := opts.Runner().Run(ctx, op)
	if err != nil {
		logger.Errorf("could not swap %s", url)
		return errors.Errorf("swapping url: %w", err)
	}

	logger.LogNewline()
	if !outcome.Result.WasModified {
		logger.Warningf("no rule matched, %s is an unchanged copy", outcome.OutputPath)
		return nil
	}
	logger.Successf("saved %s", outcome.OutputPath)
	return nil
}
