package text

import "strings"

// irregular maps plural nouns that do not follow suffix rules to their lemma.
var irregular = map[string]string{
	"feet": "foot", "teeth": "tooth", "children": "child", "men": "man",
	"women": "woman", "mice": "mouse", "lice": "louse", "geese": "goose",
	"knives": "knife", "lives": "life", "leaves": "leaf", "halves": "half",
	"calves": "calf", "shelves": "shelf", "wolves": "wolf", "selves": "self",
	"people": "person", "oxen": "ox", "data": "datum", "bacteria": "bacterium",
	"fungi": "fungus", "stimuli": "stimulus", "nuclei": "nucleus",
	"vertebrae": "vertebra", "phenomena": "phenomenon", "criteria": "criterion",
}

// invariant lists words ending in "s" whose lemma is the word itself.
var invariant = map[string]bool{
	"diabetes": true, "herpes": true, "measles": true, "mumps": true,
	"rabies": true, "scabies": true, "rickets": true, "shingles": true,
	"hemorrhoids": true, "piles": true, "series": true, "species": true,
	"news": true, "lens": true, "always": true, "perhaps": true,
	"sometimes": true, "yes": true, "bias": true, "iris": true,
	"pancreas": true, "gas": true, "feces": true, "faeces": true,
	"genitals": true, "varicose": true, "mucus": true, "thesis": true,
}

// Lemmatize reduces an English noun to its dictionary form using plural
// suffix rules. Words are otherwise returned unchanged: verb and adjective
// inflections ("vomiting", "swelled") are left alone.
//
// Lemmatize expects lowercase input.
func Lemmatize(word string) string {
	if lemma, ok := irregular[word]; ok {
		return lemma
	}
	if len(word) < 4 {
		return word
	}
	if invariant[word] {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "shes"), strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zzes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ches") && len(word) > 4:
		// "patches" -> "patch", but "aches" -> "ache".
		if c := word[len(word)-5]; !isVowel(c) {
			return word[:len(word)-2]
		}
		return word[:len(word)-1]
	}

	if word[len(word)-1] != 's' {
		return word
	}
	for _, keep := range []string{"ss", "us", "is", "ous", "as"} {
		if strings.HasSuffix(word, keep) {
			return word
		}
	}
	return word[:len(word)-1]
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
