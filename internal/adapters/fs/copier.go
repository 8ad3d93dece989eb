package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetCopier = (*Copier)(nil)

// Copier copies plain assets when their destination is stale.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// CopyIfStale copies src to dst when dst is missing or its modification time is strictly
// older than src. Only the contents are copied; dst gets a fresh modification time.
func (c *Copier) CopyIfStale(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	dstInfo, err := os.Stat(dst)
	switch {
	case err == nil:
		if !srcInfo.ModTime().After(dstInfo.ModTime()) {
			return false, nil
		}
	case errors.Is(err, iofs.ErrNotExist):
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to stat destination"), "path", dst)
	}

	if err := copyContents(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

func copyContents(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	//nolint:gosec // Path is controlled by caller
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy asset"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination"), "path", dst)
	}
	return nil
}
