package fs

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileComparer = (*Comparer)(nil)

const compareBufSize = 8 * 1024

// Comparer compares files the shallow way: metadata first, contents only when needed.
type Comparer struct{}

// NewComparer creates a new Comparer.
func NewComparer() *Comparer {
	return &Comparer{}
}

// Equal reports whether src and dst hold the same bytes.
// Two regular files with the same size and modification time are equal without being read.
// A missing dst is not an error; it is simply not equal.
func (c *Comparer) Equal(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat destination"), "path", dst)
	}

	if !srcInfo.Mode().IsRegular() || !dstInfo.Mode().IsRegular() {
		return false, nil
	}
	if srcInfo.Size() == dstInfo.Size() && srcInfo.ModTime().Equal(dstInfo.ModTime()) {
		return true, nil
	}
	if srcInfo.Size() != dstInfo.Size() {
		return false, nil
	}

	return c.sameContent(src, dst)
}

func (c *Comparer) sameContent(src, dst string) (bool, error) {
	a, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer a.Close() //nolint:errcheck // Read-only file

	b, err := os.Open(dst) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open file"), "path", dst)
	}
	defer b.Close() //nolint:errcheck // Read-only file

	bufA := make([]byte, compareBufSize)
	bufB := make([]byte, compareBufSize)
	for {
		na, errA := io.ReadFull(a, bufA)
		nb, errB := io.ReadFull(b, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}

		doneA, err := readDone(errA, src)
		if err != nil {
			return false, err
		}
		doneB, err := readDone(errB, dst)
		if err != nil {
			return false, err
		}
		if doneA || doneB {
			return doneA == doneB, nil
		}
	}
}

// readDone reports whether a ReadFull result marks the end of the file.
func readDone(err error, path string) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return true, nil
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
}
