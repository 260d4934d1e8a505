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
Package config loads the word swap configuration.

	+-----------------+      +----------+      +-----------+
	| wordswap.{yaml, | ---> |  Parser  | ---> |  Config   |
	| json,hcl,toml}  |      | registry |      | (checked) |
	+-----------------+      +----------+      +-----+-----+
	                                                 |
	                     WORDSWAP_* environment -----+

🎯 Purpose:
- Reads the rule list and the replacement indicator once, at start up
- Lets the environment override the scalar settings
- Validates and normalizes everything before the first swap

🔄 Flow:
1. Picks a parser by file extension
2. Decodes the file, rejecting unknown keys
3. Applies WORDSWAP_* overrides
4. Validates, normalizes rule words (trimmed, NFC) and fills defaults

⚡ Key Responsibilities:
- The indicator regex must compile and must match the indicator, otherwise
  the indicators inserted during a swap would survive into the output
- Relative directories are taken from the config file's directory
- The loaded Config is handed to callers explicitly, there is no global copy

🔍 Example:

	cfg, err := config.Load(ctx, "wordswap.yaml")
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	result := cfg.Swapper().Swap(text, cfg.SwapRules())
*/
package config
