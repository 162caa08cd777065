// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// stdinIsTTY is swappable in tests.
var stdinIsTTY = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ResolveInput loads the document under test: from the given file when set,
// otherwise from piped stdin. An interactive stdin with no file is an error;
// there would be nothing to match against.
func ResolveInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %s: %w", path, err)
		}
		return string(data), nil
	}

	if stdinIsTTY() {
		return "", errNoInput
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
