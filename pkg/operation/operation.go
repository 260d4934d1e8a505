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

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/pkg/source"
	"github.com/walteh/wordswap/pkg/swap"
)

// Operation loads some text, swaps it and saves the result
type Operation interface {
	// Name describes the operation for logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) (*Outcome, error)
}

// 📦 Outcome is what an operation produced
type Outcome struct {
	Source     *source.Text
	OutputPath string
	Result     *swap.Result
}

// BaseOperation holds what every swap operation needs
type BaseOperation struct {
	// OutputDir is where the swapped file is written
	OutputDir string
	// Swapper runs the substitution
	Swapper *swap.Swapper
	// Rules are applied in order
	Rules []swap.Rule
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(outputDir string, swapper *swap.Swapper, rules []swap.Rule) BaseOperation {
	if swapper == nil {
		swapper = swap.New(swap.Options{})
	}
	return BaseOperation{
		OutputDir: outputDir,
		Swapper:   swapper,
		Rules:     rules,
	}
}

func (b BaseOperation) validate() error {
	if b.Swapper == nil {
		return errors.Errorf("swapper is required")
	}
	return nil
}
