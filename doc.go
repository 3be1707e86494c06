// Package recordfile provides alignment-safe access to flat binary files made
// of fixed-size records, plus small file and directory housekeeping helpers.
//
// A record file has no header and no framing: it is a plain file whose byte
// length must be an exact multiple of the record size. Records are encoded
// little-endian with encoding/binary, so any type with a fixed binary.Size
// (fixed-size integers, floats, arrays, and structs thereof) can be used as
// the record type.
//
// Every function opens its file, performs the operation, and releases the
// handle before returning; nothing is cached between calls. The package does
// no locking: concurrent writers and readers of the same path must be
// serialized by the caller.
//
// The library is organised into several files for clarity:
//
//	record.go  – record sizing, alignment validation, raw first/last access
//	read.go    – whole-file, first-record and last-record decoding
//	write.go   – first-record overwrite and append helpers
//	size.go    – file length query & resize
//	delete.go  – bulk delete by pattern
//	options.go – read options (mmap toggle)
//	mmap.go    – memory-mapped read path
//	errors.go  – alignment error type
//
// See the README for usage examples.
package recordfile
