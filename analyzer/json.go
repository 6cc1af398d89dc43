package analyzer

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

type resultJSON struct {
	Length           int            `json:"length"`
	Composition      map[string]int `json:"composition"`
	MolecularWeight  float64        `json:"molecularWeight"`
	HydrophobicRatio float64        `json:"hydrophobicRatio"`
}

// MarshalJSON encodes composition keys as one-letter strings.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Length:           r.Length,
		Composition:      make(map[string]int, len(r.Composition)),
		MolecularWeight:  r.MolecularWeight,
		HydrophobicRatio: r.HydrophobicRatio,
	}
	for aa, count := range r.Composition {
		out.Composition[string(aa)] = count
	}
	return json.Marshal(out)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Length = in.Length
	r.MolecularWeight = in.MolecularWeight
	r.HydrophobicRatio = in.HydrophobicRatio
	r.Composition = make(map[rune]int, len(in.Composition))
	for key, count := range in.Composition {
		aa, size := utf8.DecodeRuneInString(key)
		if key == "" || size != len(key) {
			return fmt.Errorf("composition key %q is not a single residue code", key)
		}
		r.Composition[aa] = count
	}
	return nil
}
