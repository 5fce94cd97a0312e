package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Path returns the conventional input path for a puzzle id inside dir.
func Path(dir, id string) string {
	return filepath.Join(dir, id+".txt")
}

// ReadFile reads the whole input at path, or standard input when path is Stdin.
func ReadFile(path string) (string, error) {
	if path == Stdin {
		return Read(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return string(data), nil
}

// Read reads r until EOF.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}
