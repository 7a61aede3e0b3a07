// Package ingest loads and saves ir.Program[SourceAnnot] as JSON,
// standing in for the lowering collaborator that would otherwise hand
// the optimizer an in-memory IR straight out of a front end. This is
// the only concrete annotation type the CLI and the test suite use;
// optimize.Run itself stays generic over any annotation.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"chocopyopt/internal/ir"
)

// SourceAnnot is the payload every node in an ingested program carries:
// the static type the front end assigned it, plus its origin in the
// source text. The optimizer never reads these fields — it only copies
// them forward — but diagnostics and a downstream code generator would.
type SourceAnnot struct {
	Type   string `json:"type,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// Load reads and decodes a Program[SourceAnnot] from path.
func Load(path string) (ir.Program[SourceAnnot], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Program[SourceAnnot]{}, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a Program[SourceAnnot] from raw JSON bytes.
func Decode(data []byte) (ir.Program[SourceAnnot], error) {
	var prog ir.Program[SourceAnnot]
	if err := json.Unmarshal(data, &prog); err != nil {
		return ir.Program[SourceAnnot]{}, fmt.Errorf("ingest: decode: %w", err)
	}
	return prog, nil
}

// Save encodes prog as indented JSON and writes it to path.
func Save(path string, prog ir.Program[SourceAnnot]) error {
	data, err := Encode(prog)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ingest: write %s: %w", path, err)
	}
	return nil
}

// Encode renders prog as indented JSON.
func Encode(prog ir.Program[SourceAnnot]) ([]byte, error) {
	data, err := json.MarshalIndent(prog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ingest: encode: %w", err)
	}
	return data, nil
}
