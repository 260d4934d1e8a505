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

package main

import (
	"context"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/cmd/wordswap/commands"
	"github.com/walteh/wordswap/cmd/wordswap/opts"
	"github.com/walteh/wordswap/pkg/config"
	"github.com/walteh/wordswap/pkg/log"
)

// newRootCmd builds the command tree. The console is passed in so tests can drive it.
func newRootCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordswap",
		Short: "Swap words in a text file or web page",
		Long: `wordswap replaces configured words in a body of text, keeping capitalization
and handling plural and possessive forms. The text comes from a local file
(plain or HTML) or from a web page, and the result is saved next to the other outputs.

Run without a sub-command to be asked what to swap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setup(cmd.Context(), ro)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "interactive").Logger().WithContext(cmd.Context())
			return commands.RunInteractive(ctx, ro)
		},
	}

	addRootFlags(cmd, ro)

	cmd.AddCommand(
		commands.NewFileCmd(ro),
		commands.NewURLCmd(ro),
		newVersionCmd(),
	)

	return cmd
}

func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ro.ConfigFile, "config", "c", "wordswap.yaml", "config file path (.yaml, .json, .toml or .hcl)")
	cmd.PersistentFlags().StringVar(&ro.EnvFile, "env-file", ".env", "dotenv file with WORDSWAP_* overrides, ignored when missing")
	cmd.PersistentFlags().BoolVarP(&ro.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&ro.ShowDiff, "diff", false, "print a diff of the original and new text")
	cmd.PersistentFlags().BoolVar(&ro.NoPause, "no-pause", false, "do not wait for enter before exiting")
}

// setup wires logging, loads the env file and the configuration
func setup(ctx context.Context, ro *opts.RootOpts) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	zlog := newZerolog(ro.Debug)
	ctx = zlog.WithContext(ctx)

	ro.Logger = log.NewWithZerolog(ro.Out, zlog)
	ctx = log.NewContext(ctx, ro.Logger)

	if err := loadEnvFile(ro.EnvFile); err != nil {
		return ctx, errors.Errorf("loading env file: %w", err)
	}

	cfg, err := config.Load(ctx, ro.ConfigFile)
	if err != nil {
		return ctx, errors.Errorf("loading config: %w", err)
	}
	ro.Config = cfg
	zlog.Debug().Str("config", cfg.String()).Msg("configuration ready")

	if ro.Fetcher == nil {
		ro.Fetcher = cfg.Fetcher()
	}

	return ctx, nil
}

// newZerolog writes diagnostics to stderr. Console output mirrored from the
// user logger only shows up with --debug.
func newZerolog(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadEnvFile adds the variables in path to the environment without
// overriding ones already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// newRootOpts returns options bound to the process console
func newRootOpts(in io.Reader, out io.Writer) *opts.RootOpts {
	return &opts.RootOpts{In: in, Out: out}
}
