package analyzer

// Residue weights in daltons for the 20 canonical amino acids.
// Any rune missing from this table makes a sequence invalid.
var aaWeights = map[rune]float64{
	'A': 71.08, 'R': 156.19, 'N': 114.11, 'D': 115.09, 'C': 103.15,
	'E': 129.12, 'Q': 128.14, 'G': 57.05, 'H': 137.14, 'I': 113.16,
	'L': 113.16, 'K': 128.18, 'M': 131.20, 'F': 147.18, 'P': 97.12,
	'S': 87.08, 'T': 101.11, 'W': 186.22, 'Y': 163.18, 'V': 99.13,
}

// Simplified binary hydrophobicity classification
var hydrophobic = map[rune]bool{'A': true, 'V': true, 'I': true, 'L': true, 'M': true, 'F': true, 'W': true, 'Y': true}
var hydrophilic = map[rune]bool{'R': true, 'N': true, 'D': true, 'Q': true, 'E': true, 'K': true, 'S': true, 'T': true, 'H': true}
var positiveCharged = map[rune]bool{'R': true, 'H': true, 'K': true}
var negativeCharged = map[rune]bool{'D': true, 'E': true}

const canonicalResidues = "ACDEFGHIKLMNPQRSTVWY"

// CanonicalResidues returns the one-letter codes in alphabetical order.
// Each call returns a fresh slice.
func CanonicalResidues() []rune {
	return []rune(canonicalResidues)
}

// Weight returns the residue weight of aa in daltons; ok is false for
// anything outside the canonical alphabet.
func Weight(aa rune) (weight float64, ok bool) {
	weight, ok = aaWeights[aa]
	return
}

// IsHydrophobic reports whether aa belongs to the hydrophobic set.
func IsHydrophobic(aa rune) bool {
	return hydrophobic[aa]
}
