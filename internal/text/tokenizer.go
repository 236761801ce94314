package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords is the standard English stopword list used by the NLTK corpus.
var stopWords = map[string]bool{
	"i": true, "me": true, "my": true, "myself": true, "we": true, "our": true,
	"ours": true, "ourselves": true, "you": true, "you're": true, "you've": true,
	"you'll": true, "you'd": true, "your": true, "yours": true, "yourself": true,
	"yourselves": true, "he": true, "him": true, "his": true, "himself": true,
	"she": true, "she's": true, "her": true, "hers": true, "herself": true,
	"it": true, "it's": true, "its": true, "itself": true, "they": true,
	"them": true, "their": true, "theirs": true, "themselves": true, "what": true,
	"which": true, "who": true, "whom": true, "this": true, "that": true,
	"that'll": true, "these": true, "those": true, "am": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true, "a": true, "an": true,
	"the": true, "and": true, "but": true, "if": true, "or": true,
	"because": true, "as": true, "until": true, "while": true, "of": true,
	"at": true, "by": true, "for": true, "with": true, "about": true,
	"against": true, "between": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"to": true, "from": true, "up": true, "down": true, "in": true, "out": true,
	"on": true, "off": true, "over": true, "under": true, "again": true,
	"further": true, "then": true, "once": true, "here": true, "there": true,
	"when": true, "where": true, "why": true, "how": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "s": true, "t": true,
	"can": true, "will": true, "just": true, "don": true, "don't": true,
	"should": true, "should've": true, "now": true, "d": true, "ll": true,
	"m": true, "o": true, "re": true, "ve": true, "y": true, "ain": true,
	"aren": true, "aren't": true, "couldn": true, "couldn't": true,
	"didn": true, "didn't": true, "doesn": true, "doesn't": true, "hadn": true,
	"hadn't": true, "hasn": true, "hasn't": true, "haven": true,
	"haven't": true, "isn": true, "isn't": true, "ma": true, "mightn": true,
	"mightn't": true, "mustn": true, "mustn't": true, "needn": true,
	"needn't": true, "shan": true, "shan't": true, "shouldn": true,
	"shouldn't": true, "wasn": true, "wasn't": true, "weren": true,
	"weren't": true, "won": true, "won't": true, "wouldn": true,
	"wouldn't": true,
}

// wordPattern splits a sentence into word and punctuation tokens. Contractions
// stay attached to their word.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)?|[^\s\p{L}\p{N}]`)

// IsStopWord reports whether w is an English stopword. w must be lowercase.
func IsStopWord(w string) bool {
	return stopWords[w]
}

// Preprocess runs the text through the pipeline shared by symptom names and
// query text: lowercase, strip punctuation, split into words, drop stopwords,
// lemmatize. Underscores are treated as word separators.
func Preprocess(raw string) []string {
	if raw == "" {
		return nil
	}

	lower := strings.ToLower(strings.ReplaceAll(raw, "_", " "))
	stripped := StripPunctuation(lower)

	var tokens []string
	for _, w := range strings.FieldsFunc(stripped, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if stopWords[w] {
			continue
		}
		tokens = append(tokens, Lemmatize(w))
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Normalize returns the preprocessed form of raw rejoined with single spaces.
func Normalize(raw string) string {
	return strings.Join(Preprocess(raw), " ")
}

// StripPunctuation removes Unicode punctuation and symbol characters. Nothing
// is inserted in their place, so "short-ness" becomes "shortness".
func StripPunctuation(s string) string {
	t := runes.Remove(runes.Predicate(func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Words tokenizes a sentence into words and standalone punctuation marks,
// preserving the original case.
func Words(sentence string) []string {
	return wordPattern.FindAllString(sentence, -1)
}

// Canonical returns the canonical identity of a symptom cell: NFKC form,
// underscores replaced by spaces, surrounding whitespace trimmed, lowercase.
// Canonical is idempotent.
func Canonical(cell string) string {
	s := norm.NFKC.String(cell)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}

// CleanInput prepares free text received from a user: NFKC normalization,
// control characters removed, runs of whitespace collapsed.
func CleanInput(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// TermCounts returns raw occurrence counts for a token list.
func TermCounts(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}
