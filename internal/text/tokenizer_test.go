package text

import (
	"reflect"
	"testing"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "stop words only",
			input: "I have had it and the",
			want:  nil,
		},
		{
			name:  "basic sentence",
			input: "I have a severe headache and skin_rash!",
			want:  []string{"severe", "headache", "skin", "rash"},
		},
		{
			name:  "plurals lemmatized",
			input: "Joint pains in the knees",
			want:  []string{"joint", "pain", "knee"},
		},
		{
			name:  "hyphen removed without split",
			input: "short-ness of breath",
			want:  []string{"shortness", "breath"},
		},
		{
			name:  "verb forms untouched",
			input: "Vomiting and swelled ankles",
			want:  []string{"vomiting", "swelled", "ankle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preprocess(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Preprocess(%q)\n  got  %v\n  want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Burning_Micturition"); got != "burning micturition" {
		t.Errorf("Normalize = %q, want %q", got, "burning micturition")
	}
	if got := Normalize("the"); got != "" {
		t.Errorf("Normalize(stopword) = %q, want empty", got)
	}
}

func TestStripPunctuation(t *testing.T) {
	got := StripPunctuation("a-b, c! $5")
	if got != "ab c 5" {
		t.Errorf("StripPunctuation = %q, want %q", got, "ab c 5")
	}
}

func TestWords(t *testing.T) {
	got := Words("I have high fever, and chills.")
	want := []string{"I", "have", "high", "fever", ",", "and", "chills", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words\n  got  %v\n  want %v", got, want)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{" skin_rash", "skin rash"},
		{"High_Fever ", "high fever"},
		{"itching", "itching"},
		{"ＦＥＶＥＲ", "fever"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.input); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	for _, s := range []string{"skin rash", "high fever", "itching", "yellowish skin"} {
		if got := Canonical(s); got != s {
			t.Errorf("Canonical(%q) = %q, want unchanged", s, got)
		}
		once := Canonical("  " + s + "_ ")
		if twice := Canonical(once); twice != once {
			t.Errorf("Canonical not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestCleanInput(t *testing.T) {
	got := CleanInput("  fever\tand\x00 chills \n")
	if got != "fever and chills" {
		t.Errorf("CleanInput = %q, want %q", got, "fever and chills")
	}
}

func TestTermCounts(t *testing.T) {
	tf := TermCounts([]string{"pain", "joint", "pain"})
	if tf["pain"] != 2 {
		t.Errorf("tf[pain] = %f, want 2", tf["pain"])
	}
	if tf["joint"] != 1 {
		t.Errorf("tf[joint] = %f, want 1", tf["joint"])
	}
	if len(TermCounts(nil)) != 0 {
		t.Error("TermCounts(nil) should be empty")
	}
}
