package analyzer

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds derived residue class statistics for a Result
type Summary struct {
	Hydrophobic     int
	Hydrophilic     int
	Other           int
	ChargedPositive int
	ChargedNegative int
	NetCharge       int
	MostCommon      rune
	LeastCommon     rune
	Entropy         float64 // Shannon entropy of the composition, in bits

	total  int
	counts map[rune]int
}

// Summarize classifies the residues of r. An empty result gives a zero Summary.
func Summarize(r *Result) Summary {
	s := Summary{total: r.Length, counts: r.Composition}
	if r.Length == 0 {
		return s
	}

	mostCount, leastCount := -1, math.MaxInt
	freqs := make([]float64, 0, len(r.Composition))
	// Residues are sorted, so ties go to the earlier residue
	for _, aa := range r.Residues() {
		count := r.Composition[aa]
		switch {
		case hydrophobic[aa]:
			s.Hydrophobic += count
		case hydrophilic[aa]:
			s.Hydrophilic += count
		default:
			s.Other += count
		}
		if positiveCharged[aa] {
			s.ChargedPositive += count
		}
		if negativeCharged[aa] {
			s.ChargedNegative += count
		}
		if count > mostCount {
			s.MostCommon, mostCount = aa, count
		}
		if count < leastCount {
			s.LeastCommon, leastCount = aa, count
		}
		freqs = append(freqs, float64(count))
	}
	s.NetCharge = s.ChargedPositive - s.ChargedNegative

	floats.Scale(1/floats.Sum(freqs), freqs)
	s.Entropy = Round2(stat.Entropy(freqs) / math.Ln2)
	return s
}

// Percent returns the share of residue aa in the sequence, rounded to 2 decimals.
func (s Summary) Percent(aa rune) float64 {
	if s.total == 0 {
		return 0
	}
	return Round2(100 * float64(s.counts[aa]) / float64(s.total))
}
