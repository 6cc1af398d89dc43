// Package analyzer computes descriptive statistics for a single protein
// sequence: length, residue composition, molecular weight and hydrophobic
// ratio. All functions are pure and safe for concurrent use.
package analyzer

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSequence is matched by every *InvalidSequenceError via errors.Is.
var ErrInvalidSequence = errors.New("Invalid characters found in the sequence.")

// InvalidSequenceError is returned when a normalized sequence holds a rune
// outside the canonical alphabet. Invalid lists the offending runes, sorted
// and distinct.
type InvalidSequenceError struct {
	Invalid []rune
}

func (e *InvalidSequenceError) Error() string {
	return ErrInvalidSequence.Error()
}

func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// Result holds the statistics for one sequence.
type Result struct {
	Length           int
	Composition      map[rune]int
	MolecularWeight  float64
	HydrophobicRatio float64
}

// Analyze uppercases raw, validates it against the residue weight table and computes
// its statistics. Validation is all-or-nothing: a single unknown character
// fails the whole call and no Result is returned.
//
// An empty sequence is valid and yields a zero Result (ratio 0).
func Analyze(raw string) (*Result, error) {
	seq := strings.ToUpper(raw)

	if bad := invalidRunes(seq); len(bad) > 0 {
		return nil, &InvalidSequenceError{Invalid: bad}
	}

	res := &Result{Composition: make(map[rune]int)}
	var weight float64
	hydro := 0
	for _, aa := range seq {
		res.Length++
		res.Composition[aa]++
		weight += aaWeights[aa]
		if hydrophobic[aa] {
			hydro++
		}
	}

	res.MolecularWeight = Round2(weight)
	if res.Length > 0 {
		res.HydrophobicRatio = Round2(float64(hydro) / float64(res.Length) * 100)
	}
	return res, nil
}

// IsValid reports whether raw passes validation.
func IsValid(raw string) bool {
	return len(invalidRunes(strings.ToUpper(raw))) == 0
}

// Residues returns the residue codes present in the composition, sorted.
func (r *Result) Residues() []rune {
	keys := make([]rune, 0, len(r.Composition))
	for aa := range r.Composition {
		keys = append(keys, aa)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Round2 rounds v to 2 decimal places. Ties on the exact binary value go
// to the even digit, so 3.125 becomes 3.12 and 0.625 becomes 0.62.
func Round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

func invalidRunes(seq string) []rune {
	var bad []rune
	seen := make(map[rune]bool)
	for _, aa := range seq {
		if _, ok := aaWeights[aa]; ok || seen[aa] {
			continue
		}
		seen[aa] = true
		bad = append(bad, aa)
	}
	sort.Slice(bad, func(i, j int) bool {
		return bad[i] < bad[j]
	})
	return bad
}
