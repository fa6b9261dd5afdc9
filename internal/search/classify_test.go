package search

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Mode
	}{
		{"plain name", "main", ModeSubstring},
		{"dotted name", "config.txt", ModeSubstring},
		{"name with spaces", "my report.doc", ModeSubstring},
		{"leading plus is a filename", "+page.tsx", ModeSubstring},
		{"empty query", "", ModeSubstring},
		{"lone brace pair without digits", "{notes}", ModeSubstring},

		{"star extension", "*.rs", ModeGlob},
		{"trailing star", "test_*", ModeGlob},
		{"single char wildcard", "file?.txt", ModeGlob},
		{"star both ends", "*config*", ModeGlob},

		{"escaped dot anchor", `\.toml$`, ModeRegex},
		{"caret anchor", "^test", ModeRegex},
		{"dollar anchor", "report$", ModeRegex},
		{"digit class", `\d+`, ModeRegex},
		{"word class", `\w`, ModeRegex},
		{"character class", "[abc].txt", ModeRegex},
		{"brace quantifier with digit", "a{2,4}", ModeRegex},
		{"alternation", "foo|bar", ModeRegex},
		{"group", "(foo)", ModeRegex},
		{"plus after first char", "ab+", ModeRegex},

		// Regex wins over glob when both could apply.
		{"wildcard with class", "*[0-9].txt", ModeRegex},
		{"wildcard with anchor", "^test*", ModeRegex},
		{"wildcard with alternation", "a*|b*", ModeRegex},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.query); got != tc.want {
				t.Fatalf("Classify(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	queries := []string{"main", "*.rs", "^test", `\.toml$`, "a+b", "file?.md"}
	for _, q := range queries {
		first := Classify(q)
		for i := 0; i < 3; i++ {
			if got := Classify(q); got != first {
				t.Fatalf("Classify(%q) changed between calls: %v then %v", q, first, got)
			}
		}
	}
}
