package report

import (
	"fmt"
	"strconv"

	"protein_analyzer_go/analyzer"
)

// Row is one labelled metric of a result, formatted for display.
type Row struct {
	Label string
	Value string
}

// Rows lists the headline metrics in display order.
func Rows(r *analyzer.Result) []Row {
	return []Row{
		{"Length", strconv.Itoa(r.Length)},
		{"Molecular Weight (Da)", fmt.Sprintf("%.2f", r.MolecularWeight)},
		{"Hydrophobic Ratio (%)", fmt.Sprintf("%.2f", r.HydrophobicRatio)},
	}
}

// CompositionRow is one residue of the composition table.
type CompositionRow struct {
	Residue string
	Count   int
	Percent string
}

// CompositionRows lists present residues in alphabetical order.
func CompositionRows(r *analyzer.Result) []CompositionRow {
	summary := analyzer.Summarize(r)
	rows := make([]CompositionRow, 0, len(r.Composition))
	for _, aa := range r.Residues() {
		rows = append(rows, CompositionRow{
			Residue: string(aa),
			Count:   r.Composition[aa],
			Percent: fmt.Sprintf("%.2f", summary.Percent(aa)),
		})
	}
	return rows
}
