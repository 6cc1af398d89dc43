package sanity_check

import (
	"fmt"
	"os"

	"protein_analyzer_go/analyzer"
	"protein_analyzer_go/config" // Version control file
)

// Run performs a simple sanity check to ensure the analyzer is running
// properly, printing a helpful message and version number.
func Run(args []string) {
	if err := Check(); err != nil {
		fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running Protein Analyzer! (%s)\n", config.Main_version)
}

// Check analyzes a known sequence and compares against fixed values.
func Check() error {
	res, err := analyzer.Analyze("acd")
	if err != nil {
		return err
	}
	if res.Length != 3 || res.MolecularWeight != 289.32 || res.HydrophobicRatio != 33.33 {
		return fmt.Errorf("unexpected result for ACD: %+v", *res)
	}
	if _, err := analyzer.Analyze("acdz"); err == nil {
		return fmt.Errorf("invalid sequence was accepted")
	}
	return nil
}
