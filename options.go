package recordfile

// readConfig collects per-call read options.
type readConfig struct {
	useMmap bool
}

// ReadOption adjusts how a whole-file read is performed.
type ReadOption func(*readConfig)

// WithMmap makes ReadAll memory-map the file instead of issuing read
// syscalls. The mapping lives only for the duration of the call and is
// released before the function returns. Worthwhile for large files read in
// one go; for small files the plain read path is usually faster.
func WithMmap() ReadOption {
	return func(c *readConfig) { c.useMmap = true }
}
