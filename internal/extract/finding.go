package extract

import "github.com/kuandriy/symptom-gate/internal/similarity"

// Finding is a symptom attributed to a text, either inferred or matched
// literally.
type Finding struct {
	Symptom       string  `json:"symptom"`
	Confidence    float64 `json:"confidence"`
	IsDirectMatch bool    `json:"is_direct_match"`
}

// Merge combines inferred symptoms with direct matches. Inferred symptoms keep
// their order and score and are flagged when they also occur literally;
// direct matches not already present are appended with full confidence.
func Merge(extracted []similarity.Match, direct []string) []Finding {
	literal := make(map[string]bool, len(direct))
	for _, d := range direct {
		literal[d] = true
	}

	out := make([]Finding, 0, len(extracted)+len(direct))
	present := make(map[string]bool, len(extracted))
	for _, m := range extracted {
		out = append(out, Finding{
			Symptom:       m.Symptom,
			Confidence:    m.Score,
			IsDirectMatch: literal[m.Symptom],
		})
		present[m.Symptom] = true
	}
	for _, d := range direct {
		if present[d] {
			continue
		}
		present[d] = true
		out = append(out, Finding{Symptom: d, Confidence: 1.0, IsDirectMatch: true})
	}
	return out
}

// Symptoms returns the distinct symptom names of findings in order.
func Symptoms(fs []Finding) []string {
	out := make([]string, 0, len(fs))
	seen := make(map[string]bool, len(fs))
	for _, f := range fs {
		if seen[f.Symptom] {
			continue
		}
		seen[f.Symptom] = true
		out = append(out, f.Symptom)
	}
	return out
}
