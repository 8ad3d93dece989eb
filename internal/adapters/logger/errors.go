package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// messager is implemented by errors that can report their own message without the chain.
type messager interface {
	Message() string
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of zerr layers, outermost first.
// The first error that is not a zerr error ends the chain with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if z, ok := current.(*zerr.Error); ok && len(z.Metadata()) > 0 {
			entry.Metadata = make(map[string]any, len(z.Metadata()))
			for k, v := range z.Metadata() {
				entry.Metadata[k] = v
			}
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders a chain as a main error followed by an indented list of causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(metadata map[string]any, indent string) []string {
	keys := sortedKeys(metadata)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, metadata[k]))
	}
	return lines
}

type keyValue struct {
	key   string
	value any
}

// mergedMetadata flattens the metadata of all entries, the outermost value winning.
func mergedMetadata(entries []ErrorEntry) []keyValue {
	merged := make(map[string]any)
	for _, entry := range entries {
		for k, v := range entry.Metadata {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}

	keys := sortedKeys(merged)
	kvs := make([]keyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, keyValue{key: k, value: merged[k]})
	}
	return kvs
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
