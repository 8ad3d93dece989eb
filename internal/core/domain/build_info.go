package domain

import "time"

// ShaderRecord remembers the inputs of the last successful compilation of a shader.
type ShaderRecord struct {
	Path      string    `json:"path,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Output    string    `json:"output,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
