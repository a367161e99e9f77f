package rewrite

import (
	"reflect"
	"testing"
)

const sampleImage = `P3
# a comment
2 2
255
255 0 0  0 255 0
0 0 255  255 255 255
`

const sampleOutput = `P3
# a comment
2
2
255
255
0
0
0
255
0
0
0
255
255
255
255
`

func TestRewriteSample(t *testing.T) {
	t.Parallel()

	got := string(Rewrite(sampleImage))
	if got != sampleOutput {
		t.Fatalf("Rewrite() =\n%s\nwant\n%s", got, sampleOutput)
	}
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only blank lines", input: "\n   \n\t\n", want: ""},
		{name: "blank lines and comments", input: "\n# one\n\n  # two  \n\n", want: "# one\n# two\n"},
		{name: "comment keeps inner spacing", input: "  #  spaced   out\t comment \n", want: "#  spaced   out\t comment\n"},
		{name: "hash inside data line is a token", input: "1 #2 3\n", want: "1\n#2\n3\n"},
		{name: "no trailing newline", input: "P3 1 1 255", want: "P3\n1\n1\n255\n"},
		{name: "crlf line endings", input: "P3\r\n1 1\r\n255\r\n", want: "P3\n1\n1\n255\n"},
		{name: "bare carriage returns", input: "P3\r# c\r1 1", want: "P3\n# c\n1\n1\n"},
		{name: "mixed whitespace runs", input: "1\t\t2 \v 3\f4", want: "1\n2\n3\n4\n"},
		{name: "ascii separators split tokens", input: "P3\x1c2\x1f3\n", want: "P3\n2\n3\n"},
		{name: "ascii separators only is blank", input: "  \x1d  \n# c\n", want: "# c\n"},
		{name: "ascii separators trimmed from comment", input: "\x1e# c\x1f\n", want: "# c\n"},
		{name: "already one per line", input: sampleOutput, want: sampleOutput},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := string(Rewrite(tt.input))
			if got != tt.want {
				t.Fatalf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHeaderCounter(t *testing.T) {
	t.Parallel()

	doc := Parse(sampleImage)

	if doc.HeaderTokens != 3 {
		t.Fatalf("HeaderTokens = %d, want 3", doc.HeaderTokens)
	}

	var headers []string
	for _, entry := range doc.Entries {
		if entry.Header {
			headers = append(headers, entry.Text)
		}
	}
	if want := []string{"P3", "2", "2"}; !reflect.DeepEqual(headers, want) {
		t.Fatalf("header tokens = %v, want %v", headers, want)
	}
}

func TestParseHeaderCounterAddsWholeLine(t *testing.T) {
	t.Parallel()

	doc := Parse("P3 4 4 255 1 2 3\n9 9\n")

	if doc.HeaderTokens != 7 {
		t.Fatalf("HeaderTokens = %d, want 7", doc.HeaderTokens)
	}
	for _, entry := range doc.Entries {
		if wantHeader := entry.Line == 1; entry.Header != wantHeader {
			t.Fatalf("entry %q on line %d Header = %v, want %v", entry.Text, entry.Line, entry.Header, wantHeader)
		}
	}
}

func TestParseEntries(t *testing.T) {
	t.Parallel()

	doc := Parse("\n# c\nP3 2\n\n2\n")

	want := []Entry{
		{Text: "# c", Kind: Comment, Line: 2},
		{Text: "P3", Kind: Token, Header: true, Line: 3},
		{Text: "2", Kind: Token, Header: true, Line: 3},
		{Text: "2", Kind: Token, Header: true, Line: 5},
	}
	if !reflect.DeepEqual(doc.Entries, want) {
		t.Fatalf("Entries = %+v, want %+v", doc.Entries, want)
	}
	if doc.BlankLines != 2 {
		t.Fatalf("BlankLines = %d, want 2", doc.BlankLines)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	got := Parse(sampleImage).Stats()
	want := Stats{Comments: 1, Tokens: 16, HeaderTokens: 3, BlankLines: 0}
	if got != want {
		t.Fatalf("Stats() = %+v, want %+v", got, want)
	}
}

func TestRenderAnnotated(t *testing.T) {
	t.Parallel()

	got := string(Parse("P3\n# c\n1 1\n255\n7 8 9\n").RenderAnnotated())
	want := "H P3\nC # c\nH 1\nH 1\nD 255\nD 7\nD 8\nD 9\n"
	if got != want {
		t.Fatalf("RenderAnnotated() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if Token.String() != "token" || Comment.String() != "comment" || Kind(9).String() != "unknown" {
		t.Fatalf("unexpected Kind strings: %s %s %s", Token, Comment, Kind(9))
	}
}
