package recordfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// sizeOf returns the encoded byte size of T, which must be fixed.
func sizeOf[T any]() (int, error) {
	var v T
	n := binary.Size(v)
	if n <= 0 {
		return 0, fmt.Errorf("recordfile: %T is not a fixed-size type", v)
	}
	return n, nil
}

// Count returns the number of complete records of elemSize bytes in the file
// at path. A missing file counts as empty. If the file length is not a
// multiple of elemSize, Count returns an *AlignmentError.
func Count(path string, elemSize int) (int64, error) {
	if elemSize <= 0 {
		return 0, fmt.Errorf("recordfile: element size must be positive, got %d", elemSize)
	}
	size, err := Size(path)
	if err != nil {
		return 0, err
	}
	if size%int64(elemSize) != 0 {
		return 0, &AlignmentError{Path: path, FileSize: size, ElementSize: elemSize}
	}
	return size / int64(elemSize), nil
}

// openAligned validates the alignment invariant and opens path read-only.
// A missing or empty file yields a nil handle and no error; the caller must
// close the handle when it is non-nil.
func openAligned(path string, elemSize int) (*os.File, int64, error) {
	total, err := Count(path, elemSize)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	return f, total, nil
}

// FirstRecord returns the raw bytes of the first elemSize-byte record in the
// file, or nil if the file is missing or empty. The file length must satisfy
// the alignment invariant.
func FirstRecord(path string, elemSize int) ([]byte, error) {
	return recordAt(path, elemSize, false)
}

// LastRecord returns the raw bytes of the last complete record, or nil if the
// file is missing or empty.
func LastRecord(path string, elemSize int) ([]byte, error) {
	return recordAt(path, elemSize, true)
}

func recordAt(path string, elemSize int, last bool) ([]byte, error) {
	f, total, err := openAligned(path, elemSize)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	var offset int64
	if last {
		offset = (total - 1) * int64(elemSize)
	}

	buf := make([]byte, elemSize)
	if _, err := f.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("read record at offset %d of %s: %w", offset, path, err)
	}
	return buf, nil
}

// decode decodes one record from exactly sizeof(T) bytes.
func decode[T any](b []byte) (T, error) {
	var v T
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &v); err != nil {
		return v, fmt.Errorf("decode %T: %w", v, err)
	}
	return v, nil
}
