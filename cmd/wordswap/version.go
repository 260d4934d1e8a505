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
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// textLibraries are the modules whose versions change how text is read and swapped
var textLibraries = []string{
	"github.com/jinzhu/inflection",
	"github.com/PuerkitoBio/goquery",
	"github.com/chromedp/chromedp",
	"golang.org/x/text",
}

// 🚀 BuildInfo describes the running wordswap binary
type BuildInfo struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit,omitempty"`
	Dirty     bool      `json:"dirty,omitempty"`
	BuiltAt   string    `json:"built_at,omitempty"`
	GoVersion string    `json:"go_version"`
	Platform  string    `json:"platform"`
	Libraries []Library `json:"libraries,omitempty"`
}

// Library is one text-handling dependency compiled into the binary
type Library struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// ReadBuildInfo collects the build info of the running binary
func ReadBuildInfo() *BuildInfo {
	bi, _ := debug.ReadBuildInfo()
	return buildInfoFrom(bi)
}

// buildInfoFrom reads bi, which is nil when the binary carries no module data
func buildInfoFrom(bi *debug.BuildInfo) *BuildInfo {
	info := &BuildInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	// go run and go test report "(devel)"
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Commit = setting.Value
		case "vcs.time":
			info.BuiltAt = setting.Value
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}

	for _, want := range textLibraries {
		for _, dep := range bi.Deps {
			if dep.Path != want {
				continue
			}
			if dep.Replace != nil {
				dep = dep.Replace
			}
			info.Libraries = append(info.Libraries, Library{Path: want, Version: dep.Version})
		}
	}

	return info
}

// FormatVersion renders info for the terminal
func FormatVersion(info *BuildInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🚀 wordswap %s (%s, %s)\n", info.Version, info.GoVersion, info.Platform)
	if info.Commit != "" {
		commit := info.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if info.Dirty {
			commit += "-dirty"
		}
		fmt.Fprintf(&b, "   commit  %s", commit)
		if info.BuiltAt != "" {
			fmt.Fprintf(&b, " at %s", info.BuiltAt)
		}
		b.WriteString("\n")
	}
	for _, lib := range info.Libraries {
		fmt.Fprintf(&b, "   %-32s %s\n", lib.Path, lib.Version)
	}

	return b.String()
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information and the text library versions",
		Args:  cobra.NoArgs,
		// no configuration needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			info := ReadBuildInfo()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), FormatVersion(info))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
