package recordfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

const filePerm = 0o666

// WriteFirst overwrites the first record of the file at path with v, creating
// the file if it does not exist. Bytes beyond the first record are left
// untouched; the file is never truncated.
func WriteFirst[T any](path string, v T) error {
	elem, err := sizeOf[T]()
	if err != nil {
		return err
	}

	buf := bytes.NewBuffer(make([]byte, 0, elem))
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("encode %T: %w", v, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, filePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteAt(buf.Bytes(), 0); err != nil {
		f.Close()
		return fmt.Errorf("write first record of %s: %w", path, err)
	}
	return f.Close()
}

// Append opens the file at path write-only, creating it if absent, positioned
// at end-of-file. Ownership of the handle transfers to the caller, who must
// close it after writing.
func Append(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return nil, fmt.Errorf("open %s for append: %w", path, err)
	}
	return f, nil
}

// AppendAll encodes xs and appends the records to the file at path, creating
// it if absent. The handle is released before returning.
func AppendAll[T any](path string, xs []T) error {
	if _, err := sizeOf[T](); err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}

	f, err := Append(path)
	if err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, xs); err != nil {
		f.Close()
		return fmt.Errorf("append %d records to %s: %w", len(xs), path, err)
	}
	return f.Close()
}
