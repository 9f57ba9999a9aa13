// Package hydropathy computes sliding-window hydropathy profiles.
package hydropathy

// Scale maps one-letter amino-acid codes to hydropathy values.
// It is a plain value: copies share nothing and there are no setters.
type Scale struct {
	name   string
	values [128]float64
	known  [128]bool
}

// KyteDoolittle returns the Kyte & Doolittle (1982) scale for the 20
// standard residues.
func KyteDoolittle() Scale {
	s := Scale{name: "Kyte-Doolittle"}
	for code, v := range map[byte]float64{
		'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5,
		'C': 2.5, 'Q': -3.5, 'E': -3.5, 'G': -0.4,
		'H': -3.2, 'I': 4.5, 'L': 3.8, 'K': -3.9,
		'M': 1.9, 'F': 2.8, 'P': -1.6, 'S': -0.8,
		'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
	} {
		s.values[code] = v
		s.known[code] = true
	}
	return s
}

// Name is the human-readable scale name.
func (s Scale) Name() string { return s.name }

// Value returns the score for residue r, or 0 when r is not in the scale.
// Lookup is case-sensitive.
func (s Scale) Value(r rune) float64 {
	if r < 0 || int(r) >= len(s.values) {
		return 0
	}
	return s.values[r]
}

// Has reports whether r is one of the scale's residues.
func (s Scale) Has(r rune) bool {
	return r >= 0 && int(r) < len(s.known) && s.known[r]
}
