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

package config

import (
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "WORDSWAP_"

// LookupFunc reports the value of an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// 🌱 ApplyEnv overrides file values with WORDSWAP_* environment variables.
// Rules cannot be set from the environment.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"REPLACEMENT_INDICATOR", &cfg.ReplacementIndicator},
		{"REPLACEMENT_INDICATOR_REGEX", &cfg.ReplacementIndicatorRegex},
		{"SOURCE_DIRECTORY", &cfg.SourceDirectory},
		{"OUTPUT_DIRECTORY", &cfg.OutputDirectory},
	}
	for _, s := range strs {
		if v, ok := lookup(EnvPrefix + s.key); ok {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "FETCH_TIMEOUT"); ok {
		cfg.fetch().Timeout = v
	}
	if v, ok := lookup(EnvPrefix + "FETCH_USER_AGENT"); ok {
		cfg.fetch().UserAgent = v
	}
	if v, ok := lookup(EnvPrefix + "FETCH_USE_BROWSER"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Errorf("%sFETCH_USE_BROWSER: %w", EnvPrefix, err)
		}
		cfg.fetch().UseBrowser = b
	}

	return nil
}

func (cfg *Config) fetch() *FetchConfig {
	if cfg.Fetch == nil {
		cfg.Fetch = &FetchConfig{}
	}
	return cfg.Fetch
}
