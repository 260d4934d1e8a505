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

// NewFileCmd creates a new file command
func NewFileCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file NAME",
		Short: "Swap words in a local file",
		Long: `File swaps the words in a text or HTML file from the source directory.
It will:
1. Read the file (HTML is reduced to its text)
2. Apply every rule in order
3. Print the original and new text
4. Save NAME_Swapped.EXT to the output directory`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "file").Logger().WithContext(cmd.Context())
			return SwapFile(ctx, opts, args[0])
		},
	}

	return cmd
}

// SwapFile swaps the words in name, a file in the configured source directory
func SwapFile(ctx context.Context, opts *opts.RootOpts, name string) error {
	logger := log.FromContext(ctx)
	logger.Header("swapping " + name)
	logger.Infof("reading %s from %s", name, opts.Config.SourceDirectory)

	op := operation.NewSwapFileOperation(opts.Base(), opts.Config.SourceDirectory, name)
	outcome, err := opts.Runner().Run(ctx, op)
	if err != nil {
		logger.Errorf("could not swap %s", name)
		return errors.Errorf("swapping file: %w", err)
	}

	logger.LogNewline()
	if !outcome.Result.WasModified {
		logger.Warningf("no rule matched, %s is an unchanged copy", outcome.OutputPath)
		return nil
	}
	logger.Successf("saved %s", outcome.OutputPath)
	return nil
}
