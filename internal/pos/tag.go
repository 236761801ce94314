// Package pos assigns coarse part-of-speech tags to sentence tokens and
// chunks the tagged sequence into candidate noun phrases.
package pos

import "strings"

// Tag is a Penn Treebank style part-of-speech label.
type Tag string

const (
	NN    Tag = "NN"  // noun
	NNS   Tag = "NNS" // plural noun
	JJ    Tag = "JJ"  // adjective
	JJR   Tag = "JJR" // comparative adjective
	JJS   Tag = "JJS" // superlative adjective
	VB    Tag = "VB"
	VBD   Tag = "VBD"
	VBG   Tag = "VBG"
	VBN   Tag = "VBN"
	VBZ   Tag = "VBZ"
	MD    Tag = "MD"
	RB    Tag = "RB"
	DT    Tag = "DT"
	IN    Tag = "IN"
	CC    Tag = "CC"
	CD    Tag = "CD"
	PRP   Tag = "PRP"
	PRPS  Tag = "PRP$"
	WDT   Tag = "WDT"
	UH    Tag = "UH"
	Punct Tag = "."
)

// IsNoun reports whether the tag is in the NN family.
func (t Tag) IsNoun() bool { return strings.HasPrefix(string(t), "NN") }

// IsAdjective reports whether the tag is in the JJ family.
func (t Tag) IsAdjective() bool { return strings.HasPrefix(string(t), "JJ") }

// Tagged is a token with its tag.
type Tagged struct {
	Word string
	Tag  Tag
}
