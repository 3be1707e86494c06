package recordfile

import "fmt"

// AlignmentError reports a record file whose byte length is not an exact
// multiple of the expected record size. It usually means the file was
// truncated mid-record or written with a different record layout.
type AlignmentError struct {
	Path        string // offending file
	FileSize    int64  // its byte length
	ElementSize int    // expected record size in bytes
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("recordfile: %s is %d bytes, not a multiple of the %d-byte record size",
		e.Path, e.FileSize, e.ElementSize)
}
