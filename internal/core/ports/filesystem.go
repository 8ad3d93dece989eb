package ports

import "iter"

// FileWalker enumerates the files of a source tree.
type FileWalker interface {
	// WalkFiles yields every file under root in lexical order, following symlinks to files.
	// Directories whose path equals a skip entry are not entered.
	// A walk error is yielded once and ends the iteration.
	WalkFiles(root string, skip []string) iter.Seq2[string, error]
}

// FileComparer decides whether a destination already mirrors its source.
type FileComparer interface {
	// Equal reports whether both files hold the same bytes.
	// Files with identical type, size and modification time are considered equal
	// without reading their contents.
	Equal(src, dst string) (bool, error)
}

// AssetCopier copies plain assets into the build tree.
type AssetCopier interface {
	// CopyIfStale copies src to dst when dst is missing or strictly older than src.
	// It reports whether a copy happened.
	CopyIfStale(src, dst string) (bool, error)
}

// Verifier defines the interface for verifying file existence.
type Verifier interface {
	// VerifyOutputs checks if all output files exist in the given root directory.
	VerifyOutputs(root string, outputs []string) (bool, error)
}
