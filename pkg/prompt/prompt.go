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

// Package prompt asks the user what to swap. Every question loops until it gets a usable answer.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/wordswap/pkg/source"
)

// Mode is the kind of input the user chose
type Mode int

const (
	ModeFile Mode = iota + 1
	ModeURL
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeURL:
		return "url"
	}
	return "unknown"
}

const (
	msgInvalidMode   = "INVALID MODE SELECTION"
	msgFileNotFound  = "FILE NOT FOUND"
	msgInvalidURL    = "INVALID URL"
	msgUnqualified   = "PLEASE ENTER FULLY-QUALIFIED URL (i.e. beginning with http:// or https://)"
	maxListedChoices = 20
)

// 💬 Prompter reads answers from in and writes questions to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// 🏭 New creates a prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Mode asks whether to swap a local file or a web page. An empty answer picks the file mode.
func (p *Prompter) Mode(ctx context.Context) (Mode, error) {
	for {
		fmt.Fprintln(p.out, "Select a run option (Default is 1):")
		fmt.Fprintln(p.out, "   1 - Swap words in a local file")
		fmt.Fprintln(p.out, "   2 - Swap words from the text at a URL")

		answer, err := p.readLine(ctx)
		if err != nil {
			return 0, errors.Errorf("reading mode: %w", err)
		}

		switch answer {
		case "", "1":
			return ModeFile, nil
		case "2":
			return ModeURL, nil
		}

		zerolog.Ctx(ctx).Debug().Str("answer", answer).Msg("invalid mode selection")
		p.reject(msgInvalidMode)
	}
}

// FileName asks for a file in dir until exists reports it is there.
// Candidates, when given, are listed as hints.
func (p *Prompter) FileName(ctx context.Context, dir string, candidates []string, exists func(dir, name string) bool) (string, error) {
	for {
		fmt.Fprintln(p.out, "Enter the file name that you wish to swap:")
		fmt.Fprintf(p.out, "(File must be in %s)\n", dir)
		p.listCandidates(candidates)

		answer, err := p.readLine(ctx)
		if err != nil {
			return "", errors.Errorf("reading file name: %w", err)
		}

		if answer != "" && exists(dir, answer) {
			return answer, nil
		}

		zerolog.Ctx(ctx).Debug().Str("answer", answer).Str("dir", dir).Msg("file not found")
		p.reject(msgFileNotFound)
	}
}

// URL asks for a fully-qualified http or https URL
func (p *Prompter) URL(ctx context.Context) (string, error) {
	for {
		fmt.Fprintln(p.out, "Enter the URL for the page you wish to swap:")

		answer, err := p.readLine(ctx)
		if err != nil {
			return "", errors.Errorf("reading url: %w", err)
		}

		err = source.ValidateURL(answer)
		if err == nil {
			return answer, nil
		}

		zerolog.Ctx(ctx).Debug().Str("answer", answer).Err(err).Msg("url rejected")
		if errors.Is(err, source.ErrUnqualifiedURL) {
			p.reject(msgUnqualified)
		} else {
			p.reject(msgInvalidURL)
		}
	}
}

// Pause waits for the user to press enter. End of input counts as enter.
func (p *Prompter) Pause(ctx context.Context) error {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Press enter to exit")

	if _, err := p.readLine(ctx); err != nil && !errors.Is(err, io.EOF) {
		return errors.Errorf("waiting for enter: %w", err)
	}
	return nil
}

func (p *Prompter) listCandidates(candidates []string) {
	if len(candidates) == 0 {
		return
	}
	faint := color.New(color.Faint)
	shown := candidates
	if len(shown) > maxListedChoices {
		shown = shown[:maxListedChoices]
	}
	for _, c := range shown {
		fmt.Fprintln(p.out, faint.Sprint("   "+c))
	}
	if more := len(candidates) - len(shown); more > 0 {
		fmt.Fprintln(p.out, faint.Sprintf("   ... and %d more", more))
	}
}

func (p *Prompter) reject(msg string) {
	fmt.Fprintln(p.out, color.New(color.FgRed).Sprint(msg))
	fmt.Fprintln(p.out)
}

// readLine returns the next trimmed line. A final line without a newline is still returned.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
