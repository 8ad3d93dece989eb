package domain

import (
	"path/filepath"
	"strings"
)

// HandlingClass categorizes how an asset is processed during a pass.
type HandlingClass int

const (
	// ClassPlainAsset is copied byte-for-byte to the build tree.
	ClassPlainAsset HandlingClass = iota
	// ClassShaderSource is compiled to SPIR-V by the external shader compiler.
	ClassShaderSource
	// ClassIncludeOnly is shared shader text that is only compiled as part of other shaders.
	ClassIncludeOnly
)

// String returns the string representation of the HandlingClass.
func (c HandlingClass) String() string {
	switch c {
	case ClassShaderSource:
		return "shader"
	case ClassIncludeOnly:
		return "include"
	default:
		return "plain"
	}
}

// Asset is a file discovered under the source root.
type Asset struct {
	// SourcePath is the path of the file inside the source tree.
	SourcePath string
	// RelPath is SourcePath relative to the source root, using the host separator.
	RelPath string
	// DestPath is the mirrored location under the build root.
	DestPath string
	// Class is the handling class derived from the file extension.
	Class HandlingClass
}

// ExtensionTable maps file extensions (with leading dot) to handling classes.
// Extensions that are not present are plain assets.
type ExtensionTable map[string]HandlingClass

// Classify returns the handling class for the given path.
func (t ExtensionTable) Classify(path string) HandlingClass {
	if class, ok := t[Ext(path)]; ok {
		return class
	}
	return ClassPlainAsset
}

// Ext returns the extension of the base name of path, including the leading dot.
// Leading dots of the base name are not extension separators, so ".vert" has none.
func Ext(path string) string {
	return filepath.Ext(strings.TrimLeft(filepath.Base(path), "."))
}

// DefaultShaderExtensions are the pipeline stages compiled by default:
// raster and compute stages followed by the ray tracing stages.
var DefaultShaderExtensions = []string{
	".vert", ".frag", ".geom", ".comp",
	".rgen", ".rmiss", ".rchit", ".rahit", ".rint",
}

// DefaultIncludeExtensions hold shared shader code that is never compiled standalone.
var DefaultIncludeExtensions = []string{".glsl"}

// DefaultExtensionTable returns the extension table used when no pipeline file overrides it.
func DefaultExtensionTable() ExtensionTable {
	table := make(ExtensionTable, len(DefaultShaderExtensions)+len(DefaultIncludeExtensions))
	for _, ext := range DefaultShaderExtensions {
		table[ext] = ClassShaderSource
	}
	for _, ext := range DefaultIncludeExtensions {
		table[ext] = ClassIncludeOnly
	}
	return table
}
