package pos

// closed holds function words and frequent verbs whose tag does not depend on
// suffix shape.
var closed = map[string]Tag{
	"a": DT, "an": DT, "the": DT, "this": DT, "that": DT, "these": DT, "those": DT,
	"some": DT, "any": DT, "every": DT, "each": DT, "no": DT, "all": DT, "both": DT,
	"another": DT,

	"i": PRP, "you": PRP, "he": PRP, "she": PRP, "it": PRP, "we": PRP, "they": PRP,
	"me": PRP, "him": PRP, "her": PRP, "us": PRP, "them": PRP, "myself": PRP,
	"my": PRPS, "your": PRPS, "his": PRPS, "its": PRPS, "our": PRPS, "their": PRPS,

	"in": IN, "on": IN, "at": IN, "by": IN, "with": IN, "without": IN, "of": IN,
	"from": IN, "to": IN, "into": IN, "about": IN, "after": IN, "before": IN,
	"during": IN, "since": IN, "for": IN, "over": IN, "under": IN, "around": IN,
	"through": IN, "across": IN, "near": IN, "behind": IN, "because": IN, "if": IN,
	"while": IN, "until": IN, "than": IN, "like": IN, "as": IN, "up": IN, "down": IN,

	"and": CC, "or": CC, "but": CC, "nor": CC, "yet": CC, "so": CC,

	"which": WDT, "what": WDT, "whose": WDT,

	"can": MD, "could": MD, "will": MD, "would": MD, "shall": MD, "should": MD,
	"may": MD, "might": MD, "must": MD,

	"be": VB, "have": VB, "do": VB, "feel": VB, "get": VB, "go": VB, "make": VB,
	"keep": VB, "seem": VB, "think": VB, "know": VB, "see": VB, "need": VB, "want": VB,
	"am": VBZ, "is": VBZ, "are": VBZ, "has": VBZ, "does": VBZ, "feels": VBZ,
	"gets": VBZ, "seems": VBZ, "keeps": VBZ,
	"was": VBD, "were": VBD, "had": VBD, "did": VBD, "felt": VBD, "got": VBD,
	"went": VBD, "began": VBD, "started": VBD, "woke": VBD, "ate": VBD, "came": VBD,
	"been": VBN, "gone": VBN, "done": VBN,
	"being": VBG, "having": VBG, "getting": VBG, "feeling": VBG,

	"not": RB, "very": RB, "too": RB, "also": RB, "just": RB, "really": RB,
	"always": RB, "often": RB, "sometimes": RB, "again": RB, "still": RB,
	"now": RB, "then": RB, "here": RB, "there": RB, "lately": RB, "recently": RB,
	"yesterday": RB, "today": RB, "quite": RB, "rather": RB, "almost": RB,
	"when": RB, "where": RB, "how": RB, "why": RB,

	"i'm": PRP, "i've": PRP, "i'd": PRP, "it's": PRP,
	"don't": VB, "doesn't": VBZ, "didn't": VBD, "can't": MD, "won't": MD,

	"oh": UH, "please": UH, "yes": UH, "hello": UH, "hi": UH, "thanks": UH,
}

// adjectives lists descriptive words common in symptom reports that carry no
// adjective suffix.
var adjectives = map[string]bool{
	"high": true, "low": true, "mild": true, "severe": true, "acute": true,
	"sharp": true, "dull": true, "bad": true, "worse": true, "sore": true,
	"stiff": true, "weak": true, "dry": true, "wet": true, "hot": true,
	"cold": true, "red": true, "yellow": true, "dark": true, "pale": true,
	"blurred": true, "swollen": true, "sudden": true, "constant": true,
	"frequent": true, "persistent": true, "intermittent": true, "intense": true,
	"moderate": true, "occasional": true, "slight": true, "heavy": true,
	"light": true, "fast": true, "slow": true, "irregular": true, "excessive": true,
	"continuous": true, "small": true, "large": true, "little": true, "new": true,
	"runny": true, "itchy": true, "dizzy": true, "tired": true, "sick": true,
	"lost": true, "loose": true, "painful": true, "chronic": true, "few": true,
	"many": true, "much": true, "more": true, "less": true, "other": true,
	"same": true, "whole": true, "left": true, "right": true, "upper": true,
	"lower": true,
}

// gerundNouns are -ing forms that name symptoms and should be treated as
// nouns.
var gerundNouns = map[string]bool{
	"itching": true, "vomiting": true, "sneezing": true, "bleeding": true,
	"swelling": true, "sweating": true, "shivering": true, "burning": true,
	"coughing": true, "wheezing": true, "fainting": true, "tingling": true,
	"bloating": true, "cramping": true, "peeling": true, "bruising": true,
	"blistering": true, "scurring": true, "spotting": true, "belching": true,
	"snoring": true, "numbing": true, "drooling": true, "palpitating": true,
}

// suffixRule tags an unknown word by its ending. Rules are tried in order.
type suffixRule struct {
	suffix string
	minLen int
	tag    Tag
}

var suffixRules = []suffixRule{
	{"ness", 6, NN},
	{"ment", 6, NN},
	{"tion", 6, NN},
	{"sion", 6, NN},
	{"ity", 5, NN},
	{"ly", 4, RB},
	{"ous", 5, JJ},
	{"ful", 5, JJ},
	{"ive", 5, JJ},
	{"able", 6, JJ},
	{"ible", 6, JJ},
	{"less", 6, JJ},
	{"ish", 5, JJ},
	{"ical", 6, JJ},
	{"inal", 6, JJ},
	{"al", 5, JJ},
	{"ic", 5, JJ},
	{"ing", 5, VBG},
	{"ed", 4, VBN},
	{"ss", 3, NN},
	{"us", 4, NN},
	{"is", 4, NN},
	{"s", 4, NNS},
}
