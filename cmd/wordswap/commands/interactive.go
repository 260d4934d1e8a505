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
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/cmd/wordswap/opts"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/prompt"
	"github.com/walteh/wordswap/pkg/source"
)

// RunInteractive asks for a mode, then a file name or URL, swaps it and waits for enter
func RunInteractive(ctx context.Context, opts *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)
	p := prompt.New(opts.In, opts.Out)

	mode, err := p.Mode(ctx)
	if err != nil {
		return errors.Errorf("selecting mode: %w", err)
	}
	logger.Debug().Str("mode", mode.String()).Msg("mode selected")

	switch mode {
	case prompt.ModeFile:
		dir := opts.Config.SourceDirectory
		candidates, err := source.List(dir)
		if err != nil {
			// the list is only a hint
			log.FromContext(ctx).Warningf("could not list files in %s: %v", dir, err)
		}

		name, err := p.FileName(ctx, dir, candidates, source.Exists)
		if err != nil {
			return errors.Errorf("selecting file: %w", err)
		}
		if err := SwapFile(ctx, opts, name); err != nil {
			return err
		}

	case prompt.ModeURL:
		url, err := p.URL(ctx)
		if err != nil {
			return errors.Errorf("selecting url: %w", err)
		}
		if err := SwapURL(ctx, opts, url); err != nil {
			return err
		}
	}

	if opts.NoPause {
		return nil
	}
	return p.Pause(ctx)
}
