package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"protein_analyzer_go/analyzer"
)

// WriteCSV writes a header row and a single value row. Every canonical
// residue gets a column so reports from different sequences line up.
func WriteCSV(w io.Writer, r *analyzer.Result) error {
	writer := csv.NewWriter(w)

	headers := []string{"Length", "MolecularWeight", "HydrophobicRatio"}
	values := []string{
		strconv.Itoa(r.Length),
		fmt.Sprintf("%.2f", r.MolecularWeight),
		fmt.Sprintf("%.2f", r.HydrophobicRatio),
	}
	for _, aa := range analyzer.CanonicalResidues() {
		headers = append(headers, string(aa))
		values = append(values, strconv.Itoa(r.Composition[aa]))
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.Write(values); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
