package report

import (
	"fmt"
	"io"
	"strings"

	"protein_analyzer_go/analyzer"
	common "protein_analyzer_go/utils"
)

// WriteText writes a console summary of r
func WriteText(w io.Writer, seq string, r *analyzer.Result) error {
	var b strings.Builder

	fmt.Fprintln(&b, "Protein Sequence Report")
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	if seq != "" {
		b.WriteString(common.WrapSequence(strings.ToUpper(seq), 60))
		fmt.Fprintln(&b)
	}

	for _, row := range Rows(r) {
		fmt.Fprintf(&b, "%-24s%s\n", row.Label+":", row.Value)
	}

	if r.Length == 0 {
		fmt.Fprintln(&b, "\nEmpty sequence; no composition to report")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintln(&b, "\nAmino acid composition:")
	for _, row := range CompositionRows(r) {
		fmt.Fprintf(&b, "  %s: %4d (%s%%)\n", row.Residue, row.Count, row.Percent)
	}

	s := analyzer.Summarize(r)
	fmt.Fprintf(&b, "\nResidue class composition:\n")
	fmt.Fprintf(&b, "  Hydrophobic: %d\n", s.Hydrophobic)
	fmt.Fprintf(&b, "  Hydrophilic: %d\n", s.Hydrophilic)
	fmt.Fprintf(&b, "  Other:       %d\n", s.Other)

	fmt.Fprintf(&b, "\nCharged residues:\n")
	fmt.Fprintf(&b, "  Basic - Positive (R, H, K): %d\n", s.ChargedPositive)
	fmt.Fprintf(&b, "  Acidic - Negative (D, E):   %d\n", s.ChargedNegative)
	fmt.Fprintf(&b, "  Net charge:                 %+d\n", s.NetCharge)

	fmt.Fprintf(&b, "\nResidue abundance:\n")
	fmt.Fprintf(&b, "  Most common:  %c (%.2f%%)\n", s.MostCommon, s.Percent(s.MostCommon))
	fmt.Fprintf(&b, "  Least common: %c (%.2f%%)\n", s.LeastCommon, s.Percent(s.LeastCommon))
	fmt.Fprintf(&b, "  Shannon entropy: %.2f bits\n", s.Entropy)

	_, err := io.WriteString(w, b.String())
	return err
}
