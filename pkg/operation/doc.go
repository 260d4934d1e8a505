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

/*
Package operation ties a text source, the swap engine and the output sink together.

	+-------------+     +-------------+     +-------------+
	|   source    | --> |    swap     | --> |    sink     |
	| (file, url) |     |  (Swapper)  |     | (_Swapped)  |
	+-------------+     +-------------+     +-------------+

🎯 Purpose:
- Load text from a local file (plain or HTML) or a web page
- Apply the configured swap rules
- Write the result next to the other outputs

🔄 Flow:
1. SwapFileOperation or SwapURLOperation loads a source.Text
2. The Swapper applies every rule in order
3. sink.Write saves the swapped text atomically
4. The OperationRunner prints ORIGINAL TEXT and NEW TEXT, then the saved file

📝 Design Philosophy:
Operations do no console output of their own. They return an Outcome and leave
reporting to the runner, so they can be tested without a terminal.

🔍 Example:

	base := operation.NewBaseOperation(cfg.OutputDirectory, cfg.Swapper(), cfg.SwapRules())
	runner := operation.NewRunner(logger, operation.RunnerOptions{ShowTallies: true})
	outcome, err := runner.Run(ctx, operation.NewSwapFileOperation(base, cfg.SourceDirectory, "story.txt"))
*/
package operation
