/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(&app{})
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "normalized errors")
	assert.Contains(t, out, "normalize")
	assert.Contains(t, out, "resolve")
}

func TestNormalize_Stdin(t *testing.T) {
	out, err := execute(t, `{"error":{"code":"E1","message":"boom","domain":"billing"}}`, "normalize")
	require.NoError(t, err)
	assert.Equal(t, "boom [billing/E1]\n", out)
}

func TestNormalize_PlainText(t *testing.T) {
	out, err := execute(t, "connection reset", "normalize", "-")
	require.NoError(t, err)
	assert.Equal(t, "connection reset [unknown]\n", out)
}

func TestNormalize_TrimsTrailingLineBreaks(t *testing.T) {
	for _, in := range []string{"boom\n", "boom\r\n", "boom\n\n"} {
		out, err := execute(t, in, "normalize")
		require.NoError(t, err)
		assert.Equal(t, "boom [unknown]\n", out, "input %q", in)
	}
}

func TestNormalize_JSONAndStatus(t *testing.T) {
	out, err := execute(t, `{"code":"not_found","message":"gone"}`, "normalize", "--json", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, `"code":"not_found"`)
	assert.Contains(t, out, "http: source=default -> 404")
	assert.Contains(t, out, "grpc: source=default -> NotFound(5)")
}

func TestNormalize_Verbose(t *testing.T) {
	out, err := execute(t, `{"errors":[{"code":"A","message":"m1"},{"message":"no code"}]}`,
		"normalize", "--verbosity", "verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "m1 [A]")
	assert.Contains(t, out, "unknownCodeOrMessage")
}

func TestNormalize_File_WithConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	cfg := filepath.Join(dir, "errnorm.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`{"status":{"reason":"E9","text":"custom"}}`), 0o600))
	require.NoError(t, os.WriteFile(cfg, []byte("pathToCode: [status.reason]\npathToMessage: [status.text]\n"), 0o600))

	out, err := execute(t, "", "normalize", input, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "custom [E9]\n", out)
}

func TestNormalize_Errors(t *testing.T) {
	_, err := execute(t, "{}", "normalize", "--verbosity", "loud")
	assert.ErrorContains(t, err, "unknown verbosity")

	_, err = execute(t, "", "normalize", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read input")

	_, err = execute(t, "{}", "normalize", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config:")
}

func TestResolve(t *testing.T) {
	doc := `{"errors":[{"code":"A"},{"code":"B","meta":{"retry":true}}]}`

	out, err := execute(t, doc, "resolve", "errors[1].code")
	require.NoError(t, err)
	assert.Equal(t, "\"B\"\n", out)

	out, err = execute(t, doc, "resolve", "errors.1.meta")
	require.NoError(t, err)
	assert.Contains(t, out, `"retry"`)

	_, err = execute(t, doc, "resolve", "errors.5.code")
	assert.ErrorContains(t, err, "resolves to nothing")

	_, err = execute(t, "not json", "resolve", "a")
	assert.ErrorContains(t, err, "decode document")
}
