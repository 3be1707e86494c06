package recordfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// readFileMapped reads the whole file through a private read-only mapping.
// The mapping is unmapped before returning, so the returned slice is an
// ordinary heap copy like os.ReadFile would produce.
func readFileMapped(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	size := st.Size()
	if size == 0 {
		return nil, nil
	}

	m, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer unix.Munmap(m)

	out := make([]byte, size)
	copy(out, m)
	return out, nil
}
