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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
replacement_indicator: "{{SWAPPED}}"
replacement_indicator_regex: '\{\{SWAPPED\}\}'
output_directory: out
rules:
  - word: cat
    replacement: dog
    can_be_plural: true
    can_be_possessive: true
  - word: dog
    replacement: cat
    can_be_plural: true
    can_be_possessive: true
`

func TestMain(m *testing.M) {
	color.NoColor = true
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// 🧪 testEnv is a directory holding a config and some input files
type testEnv struct {
	dir    string
	config string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wordswap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(testConfig), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "story.txt"), []byte("Cats chase dogs. The cat's bowl is empty."), 0644))
	return &testEnv{dir: dir, config: cfgPath}
}

func (e *testEnv) run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd(newRootOpts(strings.NewReader(input), out))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config", e.config, "--env-file", filepath.Join(e.dir, ".env")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *testEnv) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, rel))
	require.NoError(t, err)
	return string(data)
}

func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><nav>Home</nav><article><h1>Dogs</h1><p>The dog's cat.</p></article></body></html>`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFileCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "file", "story.txt")
	require.NoError(t, err)

	assert.Equal(t, "Dogs chase cats. The dog's bowl is empty.", env.read(t, filepath.Join("out", "story_Swapped.txt")))
	assert.Contains(t, out, "reading story.txt from "+env.dir)
	assert.Contains(t, out, "ORIGINAL TEXT:")
	assert.Contains(t, out, "NEW TEXT:")
	assert.Contains(t, out, "3 replacements")
	assert.Contains(t, out, "saved "+filepath.Join(env.dir, "out", "story_Swapped.txt"))
}

func TestFileCommand_Diff(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "--diff", "file", "story.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "CHANGES:")
	assert.Contains(t, out, "{+")
}

func TestFileCommand_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "file", "nope.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swapping file")
	assert.Contains(t, out, "could not swap nope.txt")
}

func TestFileCommand_NothingToSwap(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "plain.txt"), []byte("no pets here"), 0644))

	out, err := env.run(t, "", "file", "plain.txt")
	require.NoError(t, err)

	assert.Equal(t, "no pets here", env.read(t, filepath.Join("out", "plain_Swapped.txt")))
	assert.Contains(t, out, "no rule matched, "+filepath.Join(env.dir, "out", "plain_Swapped.txt")+" is an unchanged copy")
	assert.NotContains(t, out, "saved ")
}

func TestURLCommand(t *testing.T) {
	env := newTestEnv(t)
	server := newPageServer(t)

	out, err := env.run(t, "", "url", server.URL+"/pets")
	require.NoError(t, err)

	// 127.0.0.1:PORT/pets becomes 127_0_0_1_PORT_pets
	name := strings.NewReplacer("http://", "", ".", "_", ":", "_", "/", "_").Replace(server.URL+"/pets") + "_Swapped.txt"
	assert.Equal(t, "Cats\nThe cat's dog.", env.read(t, filepath.Join("out", name)))
	assert.Contains(t, out, "NEW TEXT:")
	assert.Contains(t, out, "fetching "+server.URL+"/pets")
}

func TestURLCommand_BadStatus(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := env.run(t, "", "url", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestInteractive(t *testing.T) {
	server := newPageServer(t)

	tests := []struct {
		name     string
		input    string
		args     []string
		wantFile string
		wantOut  []string
		wantErr  string
	}{
		{
			name:     "default_mode_is_file",
			input:    "\nstory.txt\n",
			args:     []string{"--no-pause"},
			wantFile: "story_Swapped.txt",
			wantOut:  []string{"Select a run option (Default is 1):", "Enter the file name that you wish to swap:", "story.txt"},
		},
		{
			name:     "file_after_retries",
			input:    "7\n1\nmissing.txt\nstory.txt\n\n",
			wantFile: "story_Swapped.txt",
			wantOut:  []string{"INVALID MODE SELECTION", "FILE NOT FOUND", "Press enter to exit"},
		},
		{
			name:    "url_mode",
			input:   "2\nexample.com\n" + server.URL + "\n",
			args:    []string{"--no-pause"},
			wantOut: []string{"Enter the URL for the page you wish to swap:", "PLEASE ENTER FULLY-QUALIFIED URL", "NEW TEXT:"},
		},
		{
			name:    "input_ends_early",
			input:   "1\n",
			wantErr: "selecting file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			out, err := env.run(t, tt.input, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
			if tt.wantFile != "" {
				assert.Equal(t, "Dogs chase cats. The dog's bowl is empty.", env.read(t, filepath.Join("out", tt.wantFile)))
			}
		})
	}
}

func TestEnvFileOverrides(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, ".env"), []byte("WORDSWAP_OUTPUT_DIRECTORY="+filepath.Join(env.dir, "from-env")+"\n"), 0644))

	// registers the restore, then clears it so the env file can set it
	t.Setenv("WORDSWAP_OUTPUT_DIRECTORY", "")
	require.NoError(t, os.Unsetenv("WORDSWAP_OUTPUT_DIRECTORY"))

	_, err := env.run(t, "", "file", "story.txt")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.dir, "from-env", "story_Swapped.txt"))
}

func TestMissingConfig(t *testing.T) {
	env := newTestEnv(t)
	env.config = filepath.Join(env.dir, "missing.yaml")

	_, err := env.run(t, "", "file", "story.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	// version never reads the config
	env.config = filepath.Join(env.dir, "missing.yaml")

	out, err := env.run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "🚀 wordswap ")
	assert.Contains(t, out, runtime.Version())

	out, err = env.run(t, "", "version", "--json")
	require.NoError(t, err)
	var info BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Version)
}

func TestBuildInfoFrom(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want *BuildInfo
	}{
		{
			name: "no_module_data",
			bi:   nil,
			want: &BuildInfo{Version: "dev"},
		},
		{
			name: "devel_build_keeps_dev",
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: &BuildInfo{Version: "dev"},
		},
		{
			name: "release_with_vcs_and_text_libraries",
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.3"},
				Deps: []*debug.Module{
					{Path: "github.com/spf13/cobra", Version: "v1.8.1"},
					{Path: "golang.org/x/text", Version: "v0.31.0"},
					{Path: "github.com/jinzhu/inflection", Version: "v1.0.0"},
					{Path: "github.com/PuerkitoBio/goquery", Version: "v1.11.0", Replace: &debug.Module{Path: "github.com/PuerkitoBio/goquery", Version: "v1.11.1"}},
				},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2025-01-01T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: &BuildInfo{
				Version: "v1.2.3",
				Commit:  "0123456789abcdef",
				Dirty:   true,
				BuiltAt: "2025-01-01T00:00:00Z",
				Libraries: []Library{
					{Path: "github.com/jinzhu/inflection", Version: "v1.0.0"},
					{Path: "github.com/PuerkitoBio/goquery", Version: "v1.11.1"},
					{Path: "golang.org/x/text", Version: "v0.31.0"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.GoVersion = runtime.Version()
			tt.want.Platform = runtime.GOOS + "/" + runtime.GOARCH
			assert.Equal(t, tt.want, buildInfoFrom(tt.bi))
		})
	}
}

func TestFormatVersion(t *testing.T) {
	got := FormatVersion(&BuildInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
		Commit:    "0123456789abcdef",
		BuiltAt:   "2025-01-01T00:00:00Z",
		Dirty:     true,
		Libraries: []Library{{Path: "github.com/jinzhu/inflection", Version: "v1.0.0"}},
	})

	assert.Equal(t, "🚀 wordswap v1.2.3 (go1.24.0, linux/amd64)\n"+
		"   commit  0123456789ab-dirty at 2025-01-01T00:00:00Z\n"+
		"   github.com/jinzhu/inflection     v1.0.0\n", got)

	assert.Equal(t, "🚀 wordswap dev (go1.24.0, linux/amd64)\n",
		FormatVersion(&BuildInfo{Version: "dev", GoVersion: "go1.24.0", Platform: "linux/amd64"}))
}
