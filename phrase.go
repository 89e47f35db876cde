package padezh

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopSymbols start a quoted or otherwise opaque tail that is never declined.
const stopSymbols = `'"«`

// Token is one word of a parsed phrase.
type Token struct {
	// Text is the raw word; Key its normalized form.
	Text string
	Key  string
	// Sep is the whitespace (or "-" for compound parts) that follows Text.
	Sep string

	Attrs    Attrs
	WordType WordType
	// Own marks tokens whose attributes were resolved individually
	// (name parts, hyphen compound parts) and must not take phrase defaults.
	Own          bool
	Indeclinable bool
	Record       *Record
}

// Phrase is a tokenized phrase with the attributes of its subject.
type Phrase struct {
	Leading  string
	Trailing string
	Tokens   []*Token

	Attrs Attrs
	// genderLocked is set once a modifier, name or caller fixed the gender.
	genderLocked bool
}

// Tokenize splits s on whitespace runs, keeping every run as the separator
// of the preceding token so String reproduces s exactly. From the first stop
// symbol on, the rest of the text is one indeclinable token.
func Tokenize(s string) *Phrase {
	p := &Phrase{}
	body := strings.TrimLeftFunc(s, unicode.IsSpace)
	p.Leading = s[:len(s)-len(body)]
	trimmed := strings.TrimRightFunc(body, unicode.IsSpace)
	p.Trailing = body[len(trimmed):]
	body = trimmed

	start := 0 // start of the current word, or -1 inside a separator
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		switch {
		case strings.ContainsRune(stopSymbols, r):
			if start >= 0 && start < i {
				p.Tokens = append(p.Tokens, newToken(body[start:i]))
			}
			tail := newToken(body[i:])
			tail.Indeclinable = true
			p.Tokens = append(p.Tokens, tail)
			return p
		case unicode.IsSpace(r):
			if start >= 0 {
				p.Tokens = append(p.Tokens, newToken(body[start:i]))
				start = -1
			}
			last := p.Tokens[len(p.Tokens)-1]
			last.Sep += string(r)
		default:
			if start < 0 {
				start = i
			}
		}
		i += size
	}
	if start >= 0 && start < len(body) {
		p.Tokens = append(p.Tokens, newToken(body[start:]))
	}
	return p
}

func newToken(text string) *Token {
	return &Token{Text: text, Key: NormalizeKey(text), WordType: Generic}
}

// String reassembles the phrase with its original spacing.
func (p *Phrase) String() string {
	var b strings.Builder
	b.WriteString(p.Leading)
	for _, t := range p.Tokens {
		b.WriteString(t.Text)
		b.WriteString(t.Sep)
	}
	b.WriteString(p.Trailing)
	return b.String()
}

// splice replaces the token at i with parts. The last part inherits the
// separator of the replaced token.
func (p *Phrase) splice(i int, parts []*Token) {
	if len(parts) == 0 {
		return
	}
	parts[len(parts)-1].Sep = p.Tokens[i].Sep
	p.Tokens = slices.Replace(p.Tokens, i, i+1, parts...)
}

// mixedCase reports whether the phrase contains lowercase letters, which
// makes fully uppercase words stand out as abbreviations.
func (p *Phrase) mixedCase() bool {
	for _, t := range p.Tokens {
		if hasLower(t.Text) {
			return true
		}
	}
	return false
}
