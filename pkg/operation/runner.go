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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/pkg/log"
)

// RunnerOptions controls what the runner prints after a swap
type RunnerOptions struct {
	// ShowDiff prints a word diff between the original and new text
	ShowDiff bool
	// ShowTallies prints per-rule replacement counts
	ShowTallies bool
}

type OperationRunner struct {
	logger *log.Logger
	opts   RunnerOptions
}

func NewRunner(logger *log.Logger, opts RunnerOptions) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		opts:   opts,
	}
}

// Run executes op and reports the original text, the new text and where it was saved
func (r *OperationRunner) Run(ctx context.Context, op Operation) (*Outcome, error) {
	zlog := zerolog.Ctx(ctx)
	zlog.Debug().Str("operation", op.Name()).Msg("starting operation")

	outcome, err := op.Execute(ctx)
	if err != nil {
		return nil, errors.Errorf("executing %s: %w", op.Name(), err)
	}

	r.report(ctx, outcome)

	zlog.Debug().
		Str("operation", op.Name()).
		Str("output", outcome.OutputPath).
		Bool("modified", outcome.Result.WasModified).
		Msg("operation complete")

	return outcome, nil
}

func (r *OperationRunner) report(ctx context.Context, outcome *Outcome) {
	r.logger.Section("ORIGINAL TEXT", outcome.Result.Original)
	r.logger.Separator()
	r.logger.Section("NEW TEXT", outcome.Result.Swapped)

	if r.opts.ShowDiff {
		r.logger.Separator()
		r.logger.Diff(outcome.Result.Original, outcome.Result.Swapped)
	}

	r.logger.LogNewline()
	r.logger.LogOutputFile(ctx, log.OutputFile{
		Path:         outcome.OutputPath,
		Source:       string(outcome.Source.Kind),
		IsModified:   outcome.Result.WasModified,
		Replacements: outcome.Result.ReplacementCount,
	})

	if r.opts.ShowTallies {
		r.logger.LogNewline()
		r.logger.Tallies(outcome.Result.Tallies)
	}
}
