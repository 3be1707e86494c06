package recordfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DeleteAll removes every file in dir whose base name matches the glob
// pattern (filepath.Match syntax; "" matches everything). With recurse set,
// matching files in subdirectories are removed as well. Directories
// themselves are never deleted. A missing dir is an error.
func DeleteAll(dir, pattern string, recurse bool) error {
	if pattern == "" {
		pattern = "*"
	}
	// Surface a malformed pattern up front instead of silently matching
	// nothing file by file.
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return fmt.Errorf("pattern %q: %w", pattern, err)
	}

	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("recordfile: %s is not a directory", dir)
	}

	if recurse {
		return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if ok, _ := filepath.Match(pattern, d.Name()); ok {
				if err := os.Remove(path); err != nil {
					return fmt.Errorf("remove %s: %w", path, err)
				}
			}
			return nil
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove %s: %w", path, err)
			}
		}
	}
	return nil
}
