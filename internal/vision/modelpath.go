package vision

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath finds a model or library file. Relative paths are tried as
// given, then next to the executable, then as a bare file name next to the
// executable.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("vision: empty path")
	}

	candidates := make([]string, 0, 3)
	candidates = append(candidates, path)

	if !filepath.IsAbs(path) {
		if exe, err := os.Executable(); err == nil {
			exeDir := filepath.Dir(exe)
			candidates = append(candidates, filepath.Join(exeDir, path))
			candidates = append(candidates, filepath.Join(exeDir, filepath.Base(path)))
		}
	}

	checked := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		checked = append(checked, abs)

		info, err := os.Stat(abs)
		if err == nil && !info.IsDir() {
			return abs, nil
		}
	}

	return "", fmt.Errorf("vision: %s not found, checked: %s", filepath.Base(path), strings.Join(checked, ", "))
}
