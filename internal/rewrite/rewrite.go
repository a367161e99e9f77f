// Package rewrite splits plain PPM text into one token or comment per line.
package rewrite

import (
	"bytes"
	"strings"
	"unicode"
)

// headerFields is the number of header tokens (magic, width, height) after
// which data lines stop being counted as header lines.
const headerFields = 3

// Kind classifies an output entry.
type Kind int

const (
	Token Kind = iota
	Comment
)

func (k Kind) String() string {
	switch k {
	case Token:
		return "token"
	case Comment:
		return "comment"
	default:
		return "unknown"
	}
}

// Entry is a single output line with its source metadata.
type Entry struct {
	Text string
	Kind Kind
	// Header is set for tokens read while fewer than three header tokens
	// had been counted. It never changes rendering.
	Header bool
	Line   int
}

// Document is the ordered result of tokenizing one input.
type Document struct {
	Entries      []Entry
	HeaderTokens int
	BlankLines   int
}

// Stats summarizes a document.
type Stats struct {
	Comments     int
	Tokens       int
	HeaderTokens int
	BlankLines   int
}

// Parse tokenizes content. Lines end at "\n", "\r\n" or "\r".
func Parse(content string) Document {
	var doc Document

	for index, raw := range splitLines(content) {
		line := strings.TrimFunc(raw, isSpace)
		if line == "" {
			doc.BlankLines++
			continue
		}

		if strings.HasPrefix(line, "#") {
			doc.Entries = append(doc.Entries, Entry{
				Text: line,
				Kind: Comment,
				Line: index + 1,
			})
			continue
		}

		values := strings.FieldsFunc(line, isSpace)
		header := doc.HeaderTokens < headerFields
		for _, value := range values {
			doc.Entries = append(doc.Entries, Entry{
				Text:   value,
				Kind:   Token,
				Header: header,
				Line:   index + 1,
			})
		}
		if header {
			doc.HeaderTokens += len(values)
		}
	}

	return doc
}

// Render writes every entry on its own line. Header and pixel tokens are
// emitted identically.
func (d Document) Render() []byte {
	var buf bytes.Buffer
	buf.Grow(d.size(0))

	for _, entry := range d.Entries {
		buf.WriteString(entry.Text)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// RenderAnnotated is Render with a two character prefix per line:
// "C " for comments, "H " for header tokens and "D " for pixel data.
func (d Document) RenderAnnotated() []byte {
	var buf bytes.Buffer
	buf.Grow(d.size(2))

	for _, entry := range d.Entries {
		switch {
		case entry.Kind == Comment:
			buf.WriteString("C ")
		case entry.Header:
			buf.WriteString("H ")
		default:
			buf.WriteString("D ")
		}
		buf.WriteString(entry.Text)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Stats counts the entries of d.
func (d Document) Stats() Stats {
	stats := Stats{
		HeaderTokens: d.HeaderTokens,
		BlankLines:   d.BlankLines,
	}

	for _, entry := range d.Entries {
		if entry.Kind == Comment {
			stats.Comments++
		} else {
			stats.Tokens++
		}
	}

	return stats
}

// Rewrite returns content with one token or comment per line.
func Rewrite(content string) []byte {
	return Parse(content).Render()
}

func (d Document) size(prefix int) int {
	n := 0
	for _, entry := range d.Entries {
		n += len(entry.Text) + prefix + 1
	}
	return n
}

// isSpace is unicode.IsSpace plus the ASCII separators 0x1C-0x1F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// splitLines splits on universal newlines. A trailing terminator does not
// produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(content, "\n")+1)
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}

	return lines
}
