package shellargs

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	vars := MapResolver{
		"foo":          "bar",
		"player":       "Steve",
		"empty":        "",
		"with_space":   "a b",
		"natives_path": "/tmp/natives",
	}

	tests := []struct {
		name   string
		input  string
		ignore []string
		mapped []string
	}{
		{
			name:   "plain words",
			input:  "--username Steve",
			ignore: []string{"--username", "Steve"},
			mapped: []string{"--username", "Steve"},
		},
		{
			name:   "whitespace is normalized",
			input:  "  --a \t  b\n ",
			ignore: []string{"--a", "b"},
			mapped: []string{"--a", "b"},
		},
		{
			name:   "single quotes",
			input:  "'hello world'",
			ignore: []string{"'hello world'"},
			mapped: []string{"hello world"},
		},
		{
			name:   "quotes inside a token",
			input:  "a'b c'd",
			ignore: []string{"a'b c'd"},
			mapped: []string{"ab cd"},
		},
		{
			name:   "no variables inside single quotes",
			input:  "'${foo}'",
			ignore: []string{"'${foo}'"},
			mapped: []string{"${foo}"},
		},
		{
			name:   "braced variable in double quotes",
			input:  `"${foo}"`,
			ignore: []string{`"${foo}"`},
			mapped: []string{"bar"},
		},
		{
			name:   "bare variable",
			input:  "--username $player",
			ignore: []string{"--username", "$player"},
			mapped: []string{"--username", "Steve"},
		},
		{
			name:   "bare variable ends at non identifier",
			input:  "$foo.jar",
			ignore: []string{"$foo.jar"},
			mapped: []string{"bar.jar"},
		},
		{
			name:   "variable value is not split",
			input:  "--x ${with_space}",
			ignore: []string{"--x", "${with_space}"},
			mapped: []string{"--x", "a b"},
		},
		{
			name:   "undefined variable is empty",
			input:  "--x ${nope} y",
			ignore: []string{"--x", "${nope}", "y"},
			mapped: []string{"--x", "", "y"},
		},
		{
			name:   "lonely dollar",
			input:  "a$ b",
			ignore: []string{"a$", "b"},
			mapped: []string{"a$", "b"},
		},
		{
			name:   "dollar followed by non identifier",
			input:  "$-x",
			ignore: []string{"$-x"},
			mapped: []string{"$-x"},
		},
		{
			name:   "escaped space",
			input:  `a\ b c`,
			ignore: []string{`a\ b`, "c"},
			mapped: []string{"a b", "c"},
		},
		{
			name:   "escaped quote in double quotes",
			input:  `"a\"b"`,
			ignore: []string{`"a\"b"`},
			mapped: []string{`a"b`},
		},
		{
			name:   "escaped dollar in double quotes",
			input:  `"\$foo"`,
			ignore: []string{`"\$foo"`},
			mapped: []string{"$foo"},
		},
		{
			name:   "other backslash in double quotes is literal",
			input:  `"a\nb"`,
			ignore: []string{`"a\nb"`},
			mapped: []string{`a\nb`},
		},
		{
			name:   "line continuation",
			input:  "a\\\nb",
			ignore: []string{"a\\\nb"},
			mapped: []string{"ab"},
		},
		{
			name:   "line continuation in double quotes",
			input:  "\"a\\\rb\"",
			ignore: []string{"\"a\\\rb\""},
			mapped: []string{"ab"},
		},
		{
			name:   "empty quotes are a token",
			input:  "--demo ''",
			ignore: []string{"--demo", "''"},
			mapped: []string{"--demo", ""},
		},
		{
			name:   "empty input",
			input:  "",
			ignore: []string{},
			mapped: []string{},
		},
		{
			name:   "only whitespace",
			input:  "   \t",
			ignore: []string{},
			mapped: []string{},
		},
		{
			name:   "legacy launch arguments",
			input:  "--username ${player} --assetsDir ${empty} --tweakClass net.minecraftforge.fml.common.launcher.FMLTweaker",
			ignore: []string{"--username", "${player}", "--assetsDir", "${empty}", "--tweakClass", "net.minecraftforge.fml.common.launcher.FMLTweaker"},
			mapped: []string{"--username", "Steve", "--assetsDir", "", "--tweakClass", "net.minecraftforge.fml.common.launcher.FMLTweaker"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input, Ignore())
			if err != nil {
				t.Fatalf("Split(Ignore) error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.ignore) {
				t.Errorf("Split(Ignore) = %q, want %q", got, tt.ignore)
			}

			got, err = Split(tt.input, Map(vars))
			if err != nil {
				t.Fatalf("Split(Map) error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.mapped) {
				t.Errorf("Split(Map) = %q, want %q", got, tt.mapped)
			}
		})
	}
}

func TestSplit_errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIgnore bool
		wantMap    bool
		offset     int
	}{
		{"unterminated single quote", "a 'bc", true, true, 2},
		{"unterminated double quote", `x "bc`, true, true, 2},
		{"backslash at end", `abc\`, true, true, 3},
		{"backslash at end of double quote", `"abc\`, true, true, 0},
		{"unterminated brace", "--x ${abc", false, true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input, Ignore())
			if (err != nil) != tt.wantIgnore {
				t.Errorf("Split(Ignore) error = %v, want error %v", err, tt.wantIgnore)
			}

			_, err = Split(tt.input, Map(nil))
			if (err != nil) != tt.wantMap {
				t.Fatalf("Split(Map) error = %v, want error %v", err, tt.wantMap)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrTemplateParse) {
				t.Errorf("expected error to match ErrTemplateParse, got %v", err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) || parseErr.Offset != tt.offset {
				t.Errorf("expected ParseError at offset %d, got %v", tt.offset, err)
			}
		})
	}
}

func TestTokenizer_Next(t *testing.T) {
	calls := 0
	resolver := ResolverFunc(func(name string) (string, bool) {
		calls++
		return "<" + name + ">", true
	})

	tok := New("a ${b} 'c' ", Map(resolver))
	want := []string{"a", "<b>", "c"}
	for _, w := range want {
		got, ok, err := tok.Next()
		if err != nil || !ok {
			t.Fatalf("Next() = %q, %v, %v", got, ok, err)
		}
		if got != w {
			t.Errorf("Next() = %q, want %q", got, w)
		}
	}
	for i := 0; i < 2; i++ {
		if got, ok, err := tok.Next(); ok || err != nil || got != "" {
			t.Fatalf("expected exhausted tokenizer, got %q, %v, %v", got, ok, err)
		}
	}
	if calls != 1 {
		t.Errorf("expected resolver to be called once, got %d", calls)
	}

	// a new tokenizer starts from the beginning again
	first, _, _ := New("a ${b} 'c' ", Map(resolver)).Next()
	if first != "a" {
		t.Errorf("expected restart at the beginning, got %q", first)
	}
}

func TestTokenizer_stickyError(t *testing.T) {
	tok := New("ok 'broken", Ignore())
	if got, ok, err := tok.Next(); got != "ok" || !ok || err != nil {
		t.Fatalf("Next() = %q, %v, %v", got, ok, err)
	}
	_, _, err := tok.Next()
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, _, again := tok.Next(); again != err {
		t.Errorf("expected the same error again, got %v", again)
	}
}

func TestFirst(t *testing.T) {
	vars := MapResolver{"natives_directory": "/n", "resolution_width": "854"}

	got, err := First("-Djava.library.path=${natives_directory}", Map(vars))
	if err != nil || got != "-Djava.library.path=/n" {
		t.Errorf("First() = %q, %v", got, err)
	}
	got, _ = First("${resolution_width}", Map(vars))
	if got != "854" {
		t.Errorf("First() = %q, want 854", got)
	}
	got, _ = First("  ", Map(vars))
	if got != "  " {
		t.Errorf("First() should return the input without tokens, got %q", got)
	}
	if _, err := First("'x", Map(vars)); !errors.Is(err, ErrTemplateParse) {
		t.Errorf("First() error = %v", err)
	}
}
