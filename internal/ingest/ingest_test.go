package ingest_test

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"chocopyopt/internal/ingest"
	"chocopyopt/internal/ir"
)

func sampleProgram() ir.Program[ingest.SourceAnnot] {
	annot := ingest.SourceAnnot{Type: "int", Line: 3, Column: 5}
	return ir.Program[ingest.SourceAnnot]{
		Inits: []ir.VarInit[ingest.SourceAnnot]{
			{Name: "x", Value: ir.Num(big.NewInt(42), annot)},
		},
		Body: []ir.BasicBlock[ingest.SourceAnnot]{
			{Label: "entry", Stmts: []ir.Stmt[ingest.SourceAnnot]{
				ir.Return(ir.ID("x", annot), annot),
			}},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	prog := sampleProgram()

	data, err := ingest.Encode(prog)
	require.NoError(t, err, "Encode should not fail on a well-formed program")
	require.Contains(t, string(data), `"type"`, "SourceAnnot fields should be present in the JSON")
	require.Contains(t, string(data), `"int"`, "SourceAnnot fields should be present in the JSON")

	decoded, err := ingest.Decode(data)
	require.NoError(t, err, "Decode should round-trip Encode's output")
	require.Equal(t, prog.Inits[0].Name, decoded.Inits[0].Name)
	require.Equal(t, 0, prog.Inits[0].Value.Num.Cmp(decoded.Inits[0].Value.Num))
	require.Equal(t, "int", decoded.Inits[0].Value.Annot.Type)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	prog := sampleProgram()
	path := filepath.Join(t.TempDir(), "program.json")

	require.NoError(t, ingest.Save(path, prog), "Save should write the file")

	loaded, err := ingest.Load(path)
	require.NoError(t, err, "Load should read back what Save wrote")
	require.Equal(t, prog.Body[0].Label, loaded.Body[0].Label)
	require.Len(t, loaded.Body[0].Stmts, 1)
}

func TestDecodeRejectsMalformedKind(t *testing.T) {
	_, err := ingest.Decode([]byte(`{"Body":[{"Label":"entry","Stmts":[{"Kind":"bogus"}]}]}`))
	require.Error(t, err, "an unknown statement kind should fail to decode")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := ingest.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err, "loading a nonexistent file should return an error")
}
