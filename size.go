package recordfile

import (
	"fmt"
	"os"
)

// Size returns the byte length of the file at path. A missing file is not an
// error and reports length 0; any other stat failure is propagated.
func Size(path string) (int64, error) {
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return st.Size(), nil
}

// SetSize truncates or zero-extends the file at path to exactly size bytes,
// creating it if absent. When the file already has the requested length the
// call leaves it untouched, so repeated calls are free of truncation
// artifacts.
func SetSize(path string, size int64) error {
	if size < 0 {
		return fmt.Errorf("recordfile: negative size %d", size)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Size() != size {
		if err := f.Truncate(size); err != nil {
			f.Close()
			return fmt.Errorf("resize %s to %d bytes: %w", path, size, err)
		}
	}
	return f.Close()
}
