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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/operation"
	"github.com/walteh/wordswap/pkg/swap"
)

// 🔧 MockOperation is a mock implementation of the operation.Operation interface
type MockOperation struct {
	mock.Mock
}

func (m *MockOperation) Name() string {
	return m.Called().String(0)
}

func (m *MockOperation) Execute(ctx context.Context) (*operation.Outcome, error) {
	result := m.Called(ctx)
	outcome, _ := result.Get(0).(*operation.Outcome)
	return outcome, result.Error(1)
}

func TestOperationRunner(t *testing.T) {
	color.NoColor = true
	pterm.DisableStyling()
	defer func() {
		color.NoColor = false
		pterm.EnableStyling()
	}()

	tests := []struct {
		name        string
		opts        operation.RunnerOptions
		wantLines   []string
		unwantLines []string
	}{
		{
			name: "sections_and_output_file",
			opts: operation.RunnerOptions{},
			wantLines: []string{
				"ORIGINAL TEXT:",
				"The cat sat.",
				"==========================",
				"NEW TEXT:",
				"The dog sat.",
				"story_Swapped.txt",
				"1 replacement",
			},
			unwantLines: []string{"CHANGES:", "Replacement"},
		},
		{
			name:      "with_diff",
			opts:      operation.RunnerOptions{ShowDiff: true},
			wantLines: []string{"CHANGES:", "The [-cat-]{+dog+} sat."},
		},
		{
			name:      "with_tallies",
			opts:      operation.RunnerOptions{ShowTallies: true},
			wantLines: []string{"Word", "Replacement", "Total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, srcDir, _, base := createTestEnv(t)
			require.NoError(t, os.WriteFile(filepath.Join(srcDir, "story.txt"), []byte("The cat sat."), 0644))

			buf := &bytes.Buffer{}
			runner := operation.NewRunner(log.New(buf, zerolog.Disabled), tt.opts)

			outcome, err := runner.Run(ctx, operation.NewSwapFileOperation(base, srcDir, "story.txt"))
			require.NoError(t, err)
			assert.Equal(t, "The dog sat.", outcome.Result.Swapped)

			out := buf.String()
			for _, want := range tt.wantLines {
				assert.Contains(t, out, want)
			}
			for _, unwant := range tt.unwantLines {
				assert.NotContains(t, out, unwant)
			}

			// original text comes before new text
			assert.Less(t, strings.Index(out, "ORIGINAL TEXT:"), strings.Index(out, "NEW TEXT:"))
		})
	}
}

func TestOperationRunner_Error(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	runner := operation.NewRunner(log.New(buf, zerolog.Disabled), operation.RunnerOptions{})

	op := &MockOperation{}
	op.On("Name").Return("swap file broken.txt")
	op.On("Execute", ctx).Return(nil, errors.New("disk on fire"))

	outcome, err := runner.Run(ctx, op)
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.Equal(t, "executing swap file broken.txt: disk on fire", err.Error())
	assert.Empty(t, buf.String(), "nothing is reported for a failed operation")
	op.AssertExpectations(t)
}

func TestOperationRunner_UnchangedText(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx, srcDir, _, _ := createTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "plain.txt"), []byte("nothing to see"), 0644))

	base := operation.NewBaseOperation(t.TempDir(), swap.New(swap.Options{}), nil)

	buf := &bytes.Buffer{}
	runner := operation.NewRunner(log.New(buf, zerolog.Disabled), operation.RunnerOptions{ShowTallies: true})

	outcome, err := runner.Run(ctx, operation.NewSwapFileOperation(base, srcDir, "plain.txt"))
	require.NoError(t, err)
	assert.False(t, outcome.Result.WasModified)
	assert.Contains(t, buf.String(), "no change")
	assert.Contains(t, buf.String(), "no words were swapped")
}
