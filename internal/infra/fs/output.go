package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory the output file will land in.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// VerifyOutput checks the written file exists and is non-empty; an empty
// file is removed and reported as an error.
func VerifyOutput(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return 0, fmt.Errorf("output file %s is empty after encoding", path)
	}
	return info.Size(), nil
}
