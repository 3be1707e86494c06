package recordfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// ReadAllText reads the whole file at path and returns its content as text.
// Unlike Size, a missing file is an error here.
func ReadAllText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// ReadAll decodes the whole file at path as a contiguous sequence of T
// records, in file order. A missing file is an error. Trailing bytes that do
// not fill a complete record are ignored; use ReadFirst/ReadLast when strict
// alignment checking is wanted.
func ReadAll[T any](path string, opts ...ReadOption) ([]T, error) {
	elem, err := sizeOf[T]()
	if err != nil {
		return nil, err
	}

	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var data []byte
	if cfg.useMmap {
		if data, err = readFileMapped(path); err != nil {
			return nil, err
		}
	} else {
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	count := len(data) / elem
	out := make([]T, count)
	if count == 0 {
		return out, nil
	}
	if err := binary.Read(bytes.NewReader(data[:count*elem]), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("decode %d records from %s: %w", count, path, err)
	}
	return out, nil
}

// ReadFirst returns the first record in the file, or the zero value of T if
// the file does not exist or is empty. Returns an *AlignmentError if the file
// length is not a multiple of the record size.
func ReadFirst[T any](path string) (T, error) {
	return readEdge[T](path, false)
}

// ReadLast returns the last complete record in the file, with the same
// missing/empty and alignment semantics as ReadFirst. A file holding exactly
// one record yields that record.
func ReadLast[T any](path string) (T, error) {
	return readEdge[T](path, true)
}

func readEdge[T any](path string, last bool) (T, error) {
	var zero T
	elem, err := sizeOf[T]()
	if err != nil {
		return zero, err
	}
	b, err := recordAt(path, elem, last)
	if err != nil || b == nil {
		return zero, err
	}
	return decode[T](b)
}
