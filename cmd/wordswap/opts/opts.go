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

package opts

import (
	"io"

	"github.com/walteh/wordswap/pkg/config"
	"github.com/walteh/wordswap/pkg/fetch"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/operation"
)

// RootOpts is shared by every command. Flags are bound to it before the
// command runs, the rest is filled in once the configuration is loaded.
type RootOpts struct {
	// Flags
	ConfigFile string
	EnvFile    string
	Debug      bool
	ShowDiff   bool
	NoPause    bool

	// Console
	In  io.Reader
	Out io.Writer

	Config  *config.Config
	Logger  *log.Logger
	Fetcher fetch.Fetcher
}

// Base returns the operation settings for the loaded configuration
func (o *RootOpts) Base() operation.BaseOperation {
	return operation.NewBaseOperation(o.Config.OutputDirectory, o.Config.Swapper(), o.Config.SwapRules())
}

// Runner returns an operation runner reporting to the console
func (o *RootOpts) Runner() *operation.OperationRunner {
	return operation.NewRunner(o.Logger, operation.RunnerOptions{
		ShowDiff:    o.ShowDiff,
		ShowTallies: true,
	})
}
