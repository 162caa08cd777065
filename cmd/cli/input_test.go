// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("This iS! aTe xt2 F0r T3sT!ng"), 0600))

	content, err := ResolveInput(path)
	require.NoError(t, err)
	assert.Equal(t, "This iS! aTe xt2 F0r T3sT!ng", content)
}

func TestResolveInputMissingFile(t *testing.T) {
	_, err := ResolveInput(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestResolveInputNoStdinNoFile(t *testing.T) {
	orig := stdinIsTTY
	stdinIsTTY = func() bool { return true }
	t.Cleanup(func() { stdinIsTTY = orig })

	_, err := ResolveInput("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoInput)
}

func TestResolveInputReadsPipedStdin(t *testing.T) {
	orig := stdinIsTTY
	stdinIsTTY = func() bool { return false }
	t.Cleanup(func() { stdinIsTTY = orig })

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = origStdin })

	_, err = w.WriteString("piped content")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := ResolveInput("")
	require.NoError(t, err)
	assert.Equal(t, "piped content", content)
}
