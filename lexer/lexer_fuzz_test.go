package lexer

import "testing"

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"nil true false",
		"{:a 1, :b [x y]}",
		"#{1 2}",
		`#:user{:name "x"}`,
		`#inst "2024-01-01"`,
		"; comment\nnil",
		`"a\nb"`,
		`\c \\ \ `,
		"3.14M 42N 1e-10 +2 -0.5",
		"trueish :k/v a/b ::x",
		"1.",
		"a/b/c",
		`"unterminated`,
		"@",
		"\r\nnil\r\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("tokenize panicked on %q: %v", input, r)
			}
		}()

		tokens, err := Tokenize([]byte(input), "fuzz.edn", WithLocations())

		// full-sequence-or-error: never both
		if err != nil && tokens != nil {
			t.Errorf("got %d tokens alongside error %q for %q", len(tokens), err, input)
		}
		if err == nil && tokens == nil {
			t.Errorf("got a nil sequence without an error for %q", input)
		}
	})
}
