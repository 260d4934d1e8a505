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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/walteh/wordswap/pkg/fetch"
	"github.com/walteh/wordswap/pkg/inflect"
	"github.com/walteh/wordswap/pkg/swap"
)

const (
	// DefaultFetchTimeout is used when fetch.timeout is not set
	DefaultFetchTimeout = fetch.DefaultTimeout

	// DefaultUserAgent is sent with every page fetch unless fetch.user_agent is set
	DefaultUserAgent = fetch.DefaultUserAgent
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule represents one configured word swap
type Rule struct {
	Word            string `json:"word" yaml:"word" toml:"word" hcl:"word,optional" validate:"required"`
	Replacement     string `json:"replacement" yaml:"replacement" toml:"replacement" hcl:"replacement,optional" validate:"required"`
	CanBePlural     bool   `json:"can_be_plural,omitempty" yaml:"can_be_plural,omitempty" toml:"can_be_plural,omitempty" hcl:"can_be_plural,optional"`
	CanBePossessive bool   `json:"can_be_possessive,omitempty" yaml:"can_be_possessive,omitempty" toml:"can_be_possessive,omitempty" hcl:"can_be_possessive,optional"`
}

// 🌐 FetchConfig controls how web pages are retrieved
type FetchConfig struct {
	Timeout    string `json:"timeout,omitempty" yaml:"timeout,omitempty" toml:"timeout,omitempty" hcl:"timeout,optional"`
	UserAgent  string `json:"user_agent,omitempty" yaml:"user_agent,omitempty" toml:"user_agent,omitempty" hcl:"user_agent,optional"`
	UseBrowser bool   `json:"use_browser,omitempty" yaml:"use_browser,omitempty" toml:"use_browser,omitempty" hcl:"use_browser,optional"`

	timeout time.Duration
}

// 📚 Config represents the complete configuration
type Config struct {
	ReplacementIndicator      string            `json:"replacement_indicator" yaml:"replacement_indicator" toml:"replacement_indicator" hcl:"replacement_indicator,optional" validate:"required"`
	ReplacementIndicatorRegex string            `json:"replacement_indicator_regex" yaml:"replacement_indicator_regex" toml:"replacement_indicator_regex" hcl:"replacement_indicator_regex,optional" validate:"required"`
	SourceDirectory           string            `json:"source_directory,omitempty" yaml:"source_directory,omitempty" toml:"source_directory,omitempty" hcl:"source_directory,optional"`
	OutputDirectory           string            `json:"output_directory,omitempty" yaml:"output_directory,omitempty" toml:"output_directory,omitempty" hcl:"output_directory,optional"`
	PluralOverrides           map[string]string `json:"plural_overrides,omitempty" yaml:"plural_overrides,omitempty" toml:"plural_overrides,omitempty" hcl:"plural_overrides,optional"`
	Fetch                     *FetchConfig      `json:"fetch,omitempty" yaml:"fetch,omitempty" toml:"fetch,omitempty" hcl:"fetch,block"`
	Rules                     []Rule            `json:"rules" yaml:"rules" toml:"rules" hcl:"rule,block" validate:"dive"`

	location    string
	indicatorRe *regexp.Regexp
}

// 🎯 Load loads the configuration from a file, applies environment overrides and validates it
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, errors.Errorf("applying environment: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("source_directory", cfg.SourceDirectory).
		Int("rules", len(cfg.Rules)).
		Msg("configuration loaded")

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their config key rather than the Go name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// 🔍 Validate checks if the configuration is valid, normalizes it and fills in defaults
func (cfg *Config) Validate() error {
	for i := range cfg.Rules {
		cfg.Rules[i].Word = norm.NFC.String(strings.TrimSpace(cfg.Rules[i].Word))
		cfg.Rules[i].Replacement = norm.NFC.String(strings.TrimSpace(cfg.Rules[i].Replacement))
	}

	// Check required fields
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.Errorf("%s is %s", fieldPath(verrs[0]), verrs[0].Tag())
		}
		return errors.Errorf("checking fields: %w", err)
	}

	re, err := regexp.Compile(cfg.ReplacementIndicatorRegex)
	if err != nil {
		return errors.Errorf("replacement_indicator_regex does not compile: %w", err)
	}
	if !re.MatchString(cfg.ReplacementIndicator) {
		return errors.Errorf("replacement_indicator_regex %q does not match replacement_indicator %q",
			cfg.ReplacementIndicatorRegex, cfg.ReplacementIndicator)
	}
	cfg.indicatorRe = re

	// Set defaults
	if cfg.Fetch == nil {
		cfg.Fetch = &FetchConfig{}
	}
	cfg.Fetch.timeout = DefaultFetchTimeout
	if cfg.Fetch.Timeout != "" {
		d, err := time.ParseDuration(cfg.Fetch.Timeout)
		if err != nil {
			return errors.Errorf("fetch.timeout: %w", err)
		}
		if d <= 0 {
			return errors.Errorf("fetch.timeout must be positive, got %s", d)
		}
		cfg.Fetch.timeout = d
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = DefaultUserAgent
	}

	// Clean up paths, relative ones are taken from the config file's directory
	if cfg.SourceDirectory == "" {
		cfg.SourceDirectory = "."
	}
	cfg.SourceDirectory = cfg.resolve(cfg.SourceDirectory)
	if cfg.OutputDirectory == "" {
		cfg.OutputDirectory = cfg.SourceDirectory
	} else {
		cfg.OutputDirectory = cfg.resolve(cfg.OutputDirectory)
	}

	return nil
}

func (cfg *Config) resolve(path string) string {
	if filepath.IsAbs(path) || cfg.location == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(filepath.Dir(cfg.location), path)
}

// fieldPath turns "Config.rules[0].word" into "rules[0].word"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// Location returns the path the configuration was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// IndicatorPattern returns the compiled replacement_indicator_regex. It is nil before Validate.
func (cfg *Config) IndicatorPattern() *regexp.Regexp {
	return cfg.indicatorRe
}

// FetchTimeout returns the parsed fetch.timeout
func (cfg *Config) FetchTimeout() time.Duration {
	if cfg.Fetch == nil || cfg.Fetch.timeout == 0 {
		return DefaultFetchTimeout
	}
	return cfg.Fetch.timeout
}

// SwapRules converts the configured rules for the swap engine, keeping their order
func (cfg *Config) SwapRules() []swap.Rule {
	rules := make([]swap.Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, swap.Rule{
			Word:            r.Word,
			Replacement:     r.Replacement,
			CanBePlural:     r.CanBePlural,
			CanBePossessive: r.CanBePossessive,
		})
	}
	return rules
}

// Swapper builds the swap engine for this configuration
func (cfg *Config) Swapper() *swap.Swapper {
	return swap.New(swap.Options{
		Indicator:        cfg.ReplacementIndicator,
		IndicatorPattern: cfg.indicatorRe,
		Pluralizer:       inflect.New(cfg.PluralOverrides),
	})
}

// Fetcher builds the page fetcher for this configuration
func (cfg *Config) Fetcher() fetch.Fetcher {
	opts := &fetch.Options{Timeout: cfg.FetchTimeout(), UserAgent: DefaultUserAgent}
	useBrowser := false
	if cfg.Fetch != nil {
		if cfg.Fetch.UserAgent != "" {
			opts.UserAgent = cfg.Fetch.UserAgent
		}
		useBrowser = cfg.Fetch.UseBrowser
	}
	return fetch.New(opts, useBrowser)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d rules, indicator %q, source %s -> output %s",
		len(cfg.Rules), cfg.ReplacementIndicator, cfg.SourceDirectory, cfg.OutputDirectory)
}
