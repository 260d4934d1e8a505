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
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/pkg/fetch"
	"github.com/walteh/wordswap/pkg/sink"
	"github.com/walteh/wordswap/pkg/source"
)

// 📄 SwapFileOperation swaps the words in a local file
type SwapFileOperation struct {
	BaseOperation
	// Dir is the source directory
	Dir string
	// File is the file name, relative to Dir
	File string
}

// 📦 NewSwapFileOperation creates a new file operation
func NewSwapFileOperation(base BaseOperation, dir, name string) *SwapFileOperation {
	return &SwapFileOperation{BaseOperation: base, Dir: dir, File: name}
}

func (op *SwapFileOperation) Name() string {
	return "swap file " + op.File
}

// 🏃 Execute reads the file, swaps it and writes NAME_Swapped.EXT to the output directory
func (op *SwapFileOperation) Execute(ctx context.Context) (*Outcome, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}

	text, err := source.File(ctx, op.Dir, op.File)
	if err != nil {
		return nil, errors.Errorf("loading file: %w", err)
	}

	outputName := op.File
	if filepath.IsAbs(outputName) {
		// absolute inputs still land in the output directory
		outputName = filepath.Base(outputName)
	}

	return op.swapAndSave(ctx, text, sink.FileName(outputName))
}

// 🌐 SwapURLOperation swaps the words in the text of a web page
type SwapURLOperation struct {
	BaseOperation
	// URL is the page to fetch
	URL string
	// Fetcher retrieves the page HTML
	Fetcher fetch.Fetcher
}

// 📦 NewSwapURLOperation creates a new URL operation
func NewSwapURLOperation(base BaseOperation, url string, fetcher fetch.Fetcher) *SwapURLOperation {
	return &SwapURLOperation{BaseOperation: base, URL: url, Fetcher: fetcher}
}

func (op *SwapURLOperation) Name() string {
	return "swap url " + op.URL
}

// 🏃 Execute fetches the page, swaps its text and writes a file named after the URL
func (op *SwapURLOperation) Execute(ctx context.Context) (*Outcome, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	if op.Fetcher == nil {
		return nil, errors.Errorf("fetcher is required")
	}

	text, err := source.URL(ctx, op.Fetcher, op.URL)
	if err != nil {
		return nil, errors.Errorf("loading url: %w", err)
	}

	return op.swapAndSave(ctx, text, sink.URLName(text.Origin))
}

func (b BaseOperation) swapAndSave(ctx context.Context, text *source.Text, outputName string) (*Outcome, error) {
	logger := zerolog.Ctx(ctx)

	result := b.Swapper.Swap(text.Content, b.Rules)

	logger.Debug().
		Str("origin", text.Origin).
		Int("rules", len(b.Rules)).
		Int("replacements", result.ReplacementCount).
		Msg("swapped text")

	path, err := sink.Write(ctx, b.OutputDir, outputName, result.Swapped)
	if err != nil {
		return nil, errors.Errorf("saving output: %w", err)
	}

	return &Outcome{
		Source:     text,
		OutputPath: path,
		Result:     result,
	}, nil
}
