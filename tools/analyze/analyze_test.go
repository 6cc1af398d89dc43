package analyze

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protein_analyzer_go/analyzer"
	common "protein_analyzer_go/utils"
)

func TestExecuteSequence(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Execute(Options{Sequence: "ACD"}, nil, &out))
	assert.Contains(t, out.String(), "289.32")
	assert.Contains(t, out.String(), "33.33")
}

func TestExecuteStdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Execute(Options{InFile: "-"}, strings.NewReader(">p\nWW\nWW\n"), &out))
	assert.Contains(t, out.String(), "744.88")
}

func TestExecuteInvalid(t *testing.T) {
	var out bytes.Buffer
	err := Execute(Options{Sequence: "acdz"}, nil, &out)
	assert.ErrorIs(t, err, analyzer.ErrInvalidSequence)
	assert.Empty(t, out.String())
}

func TestExecuteFileReports(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq.fa")
	require.NoError(t, os.WriteFile(in, []byte(">p\nMKVLA\n"), 0o644))
	prefix := filepath.Join(dir, "report")

	var out bytes.Buffer
	require.NoError(t, Execute(Options{InFile: in, OutFile: prefix, CSV: true, HTML: true}, nil, &out))

	csvData, err := os.ReadFile(prefix + ".csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csvData), "Length,MolecularWeight,HydrophobicRatio"))

	htmlData, err := os.ReadFile(prefix + ".html")
	require.NoError(t, err)
	assert.Contains(t, string(htmlData), "<svg")
	assert.Contains(t, out.String(), "Wrote HTML file")
}

func TestExecuteMultipleRecords(t *testing.T) {
	err := Execute(Options{InFile: "-"}, strings.NewReader(">a\nMK\n>b\nVL\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, common.ErrMultipleRecords)
}

func TestExecuteUnwritableOutput(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "missing", "report")

	for _, opts := range []Options{
		{Sequence: "MKV", OutFile: prefix, CSV: true},
		{Sequence: "MKV", OutFile: prefix, HTML: true},
	} {
		var err error
		require.NotPanics(t, func() {
			err = Execute(opts, nil, &bytes.Buffer{})
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create report")
	}
}
