package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  alei  ", want: "alei"},
		{name: "lowercase", input: "Alei Mtu", want: "alei mtu"},
		{name: "compress multiple spaces", input: "alei   mtu", want: "alei mtu"},
		{name: "apostrophes preserved", input: "Lame'g", want: "lame'g"},
		{name: "diacritics preserved", input: "Ma'qamigeg É", want: "ma'qamigeg é"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "alei", want: "alei"},
		{name: "uppercase", input: "Alei", want: "alei"},
		{name: "apostrophe", input: "lame'g", want: "lame_g"},
		{name: "space and hyphen", input: "ap-sa mtu", want: "ap_sa_mtu"},
		{name: "underscore kept", input: "a_b", want: "a_b"},
		{name: "digits kept", input: "Word2", want: "word2"},
		{name: "non-ascii letter", input: "ée", want: "_e"},
		{name: "asterisk", input: "*alei", want: "_alei"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
