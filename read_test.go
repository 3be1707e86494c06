package recordfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// point is the record type used throughout the tests: 12 bytes, fixed layout.
type point struct {
	X, Y int32
	Tag  [4]byte
}

const pointSize = 12

func samplePoints(n int) []point {
	xs := make([]point, n)
	for i := range xs {
		xs[i] = point{X: int32(i), Y: int32(-i), Tag: [4]byte{'p', 't', byte('0' + i%10), 0}}
	}
	return xs
}

func tmpPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "points.rec")
}

func TestReadAllRoundTrip(t *testing.T) {
	path := tmpPath(t)
	xs := samplePoints(5)

	require.NoError(t, AppendAll(path, xs))

	got, err := ReadAll[point](path)
	require.NoError(t, err)
	require.Equal(t, xs, got)
}

func TestReadAllMapped(t *testing.T) {
	path := tmpPath(t)
	xs := samplePoints(64)

	require.NoError(t, AppendAll(path, xs))

	got, err := ReadAll[point](path, WithMmap())
	require.NoError(t, err)
	require.Equal(t, xs, got)
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll[point](tmpPath(t))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAllEmptyFile(t *testing.T) {
	path := tmpPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o666))

	got, err := ReadAll[point](path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadAllIgnoresTrailingPartial(t *testing.T) {
	path := tmpPath(t)
	xs := samplePoints(2)
	require.NoError(t, AppendAll(path, xs))

	// Simulate a write torn mid-record.
	f, err := Append(path)
	require.NoError(t, err)
	_, err = f.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := ReadAll[point](path)
	require.NoError(t, err)
	require.Equal(t, xs, got)
}

func TestReadAllNonFixedType(t *testing.T) {
	_, err := ReadAll[string](tmpPath(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a fixed-size type")
}

func TestReadAllTextMissing(t *testing.T) {
	_, err := ReadAllText(tmpPath(t))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAllText(t *testing.T) {
	path := tmpPath(t)
	require.NoError(t, os.WriteFile(path, []byte("hello\nrecord\n"), 0o666))

	s, err := ReadAllText(path)
	require.NoError(t, err)
	require.Equal(t, "hello\nrecord\n", s)
}

func TestReadFirstMissingFile(t *testing.T) {
	path := tmpPath(t)

	v, err := ReadFirst[point](path)
	require.NoError(t, err)
	require.Equal(t, point{}, v)

	n, err := Size(path)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReadFirstEmptyFile(t *testing.T) {
	path := tmpPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o666))

	v, err := ReadFirst[point](path)
	require.NoError(t, err)
	require.Equal(t, point{}, v)
}

func TestReadFirstAndLast(t *testing.T) {
	path := tmpPath(t)
	xs := samplePoints(3)
	require.NoError(t, AppendAll(path, xs))

	first, err := ReadFirst[point](path)
	require.NoError(t, err)
	require.Equal(t, xs[0], first)

	last, err := ReadLast[point](path)
	require.NoError(t, err)
	require.Equal(t, xs[2], last)
}

func TestReadLastSingleRecord(t *testing.T) {
	path := tmpPath(t)
	xs := samplePoints(1)
	require.NoError(t, AppendAll(path, xs))

	last, err := ReadLast[point](path)
	require.NoError(t, err)
	require.Equal(t, xs[0], last)
}

func TestAlignmentViolation(t *testing.T) {
	path := tmpPath(t)
	// One full record plus two stray bytes.
	raw := make([]byte, pointSize+2)
	require.NoError(t, os.WriteFile(path, raw, 0o666))

	_, err := ReadFirst[point](path)
	var ae *AlignmentError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, pointSize, ae.ElementSize)
	require.Equal(t, int64(pointSize+2), ae.FileSize)
	require.Equal(t, path, ae.Path)

	_, err = ReadLast[point](path)
	require.ErrorAs(t, err, &ae)
}

func TestCount(t *testing.T) {
	path := tmpPath(t)

	n, err := Count(path, pointSize)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, AppendAll(path, samplePoints(4)))

	n, err = Count(path, pointSize)
	require.NoError(t, err)
	require.EqualValues(t, 4, n)

	_, err = Count(path, 5)
	var ae *AlignmentError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 5, ae.ElementSize)
}

func TestCountBadElementSize(t *testing.T) {
	_, err := Count(tmpPath(t), 0)
	require.Error(t, err)
}
