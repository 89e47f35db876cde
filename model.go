package padezh

import (
	"fmt"
	"strings"
)

// Case is a Russian grammatical case. Nominative comes first; every other
// case maps to a 0-based index into a rule's modifier array.
type Case uint8

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional
)

// CaseCount is the number of grammatical cases.
const CaseCount = 6

// modCount is the length of every modifier array (all cases but nominative).
const modCount = CaseCount - 1

var caseNames = [CaseCount]string{
	"nominative", "genitive", "dative", "accusative", "instrumental", "prepositional",
}

// caseAliases maps short and Russian names to cases.
var caseAliases = map[string]Case{
	"nom": Nominative, "gen": Genitive, "dat": Dative,
	"acc": Accusative, "ins": Instrumental, "inst": Instrumental,
	"pre": Prepositional, "prep": Prepositional,
	"именительный": Nominative, "родительный": Genitive, "дательный": Dative,
	"винительный": Accusative, "творительный": Instrumental, "предложный": Prepositional,
	"им": Nominative, "род": Genitive, "дат": Dative, "вин": Accusative, "тв": Instrumental, "пр": Prepositional,
}

func (c Case) String() string {
	if int(c) < len(caseNames) {
		return caseNames[c]
	}
	return fmt.Sprintf("Case(%d)", c)
}

// Valid reports whether c is one of the six cases.
func (c Case) Valid() bool { return c < CaseCount }

// modIndex returns the modifier-array index of a non-nominative case.
func (c Case) modIndex() int { return int(c) - 1 }

// ParseCase parses an English or Russian case name ("genitive", "gen", "родительный").
func ParseCase(s string) (Case, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range caseNames {
		if name == s {
			return Case(i), nil
		}
	}
	if c, ok := caseAliases[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: unknown case %q", ErrInvalidArgument, s)
}

// Gender is a grammatical gender. Inside rule matching Neuter doubles as a
// wildcard that matches any requested gender. The zero value means "not
// specified" and only appears in requests, never in rules.
type Gender uint8

const (
	GenderUnset Gender = iota
	Male
	Female
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	case Neuter:
		return "neuter"
	default:
		return "unset"
	}
}

// ParseGender accepts male/female/neuter, the rule-table spelling
// "androgynous", single letters (m, f, n) and the empty string (unset).
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnset, nil
	case "male", "m", "м", "муж":
		return Male, nil
	case "female", "f", "ж", "жен":
		return Female, nil
	case "neuter", "androgynous", "n", "с", "ср":
		return Neuter, nil
	}
	return GenderUnset, fmt.Errorf("%w: unknown gender %q", ErrInvalidArgument, s)
}

// orMale returns g, or Male when g is unset.
func (g Gender) orMale() Gender {
	if g == GenderUnset {
		return Male
	}
	return g
}

// WordType selects the rule table used for a word.
type WordType uint8

const (
	FirstName WordType = iota
	PatronymicName
	FamilyName
	Numeral
	Generic
)

const wordTypeCount = 5

var wordTypeNames = [wordTypeCount]string{
	"first_name", "patronymic_name", "family_name", "numeral", "generic",
}

func (t WordType) String() string {
	if int(t) < len(wordTypeNames) {
		return wordTypeNames[t]
	}
	return fmt.Sprintf("WordType(%d)", t)
}

// ParseWordType parses the rule-table key of a word type ("family_name", "generic", ...).
func ParseWordType(s string) (WordType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range wordTypeNames {
		if name == s {
			return WordType(i), nil
		}
	}
	switch s {
	case "first", "firstname":
		return FirstName, nil
	case "patronymic", "middlename":
		return PatronymicName, nil
	case "surname", "lastname", "family":
		return FamilyName, nil
	}
	return 0, fmt.Errorf("%w: unknown word type %q", ErrInvalidArgument, s)
}

// PartOfSpeech is an optional rule filter. Zero means "any".
type PartOfSpeech rune

const (
	POSAny         PartOfSpeech = 0
	POSNoun        PartOfSpeech = 'n'
	POSAdjective   PartOfSpeech = 'a'
	POSPreposition PartOfSpeech = 'r'
)

func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSAdjective:
		return "adjective"
	case POSPreposition:
		return "preposition"
	default:
		return "any"
	}
}

func parsePartOfSpeech(s string) (PartOfSpeech, error) {
	switch s {
	case "":
		return POSAny, nil
	case "noun":
		return POSNoun, nil
	case "adjective":
		return POSAdjective, nil
	case "preposition":
		return POSPreposition, nil
	}
	return POSAny, fmt.Errorf("unknown part of speech %q", s)
}

// Ternary is an optional boolean: unset, yes or no.
type Ternary uint8

const (
	Unset Ternary = iota
	Yes
	No
)

// TernaryOf converts a bool to Yes or No.
func TernaryOf(b bool) Ternary {
	if b {
		return Yes
	}
	return No
}

// IsSet reports whether t is Yes or No.
func (t Ternary) IsSet() bool { return t == Yes || t == No }

// True reports whether t is Yes.
func (t Ternary) True() bool { return t == Yes }

// or returns t, or def when t is unset.
func (t Ternary) or(def Ternary) Ternary {
	if t == Unset {
		return def
	}
	return t
}

func (t Ternary) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unset"
	}
}

// ParseTernary parses "", "true"/"false", "yes"/"no", "1"/"0".
func ParseTernary(s string) (Ternary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unset, nil
	case "true", "yes", "1", "y":
		return Yes, nil
	case "false", "no", "0", "n":
		return No, nil
	}
	return Unset, fmt.Errorf("%w: %q is not a boolean", ErrInvalidArgument, s)
}

// Attrs are the grammatical attributes of an inflection request. Every field
// is optional.
type Attrs struct {
	Gender       Gender
	Animate      Ternary
	Plural       Ternary
	PartOfSpeech PartOfSpeech
}

// Rule is one entry of a rule table: the word endings it applies to and
// the modifier that produces each non-nominative case.
type Rule struct {
	// Gender is required; Neuter matches any requested gender.
	Gender Gender
	// PartOfSpeech, Animate and Plural are optional filters.
	PartOfSpeech PartOfSpeech
	Animate      Ternary
	Plural       Ternary
	// Test holds lowercase suffixes, in table order.
	Test []string
	// Mods holds one modifier per non-nominative case.
	Mods [modCount]string
}

// matches reports whether word (already lowercase) ends with one of r's test suffixes.
func (r *Rule) matches(word string) bool {
	for _, suf := range r.Test {
		if strings.HasSuffix(word, suf) {
			return true
		}
	}
	return false
}

// RuleTable holds the ordered exception and suffix rules of one word type.
// Tables are built once by the loader and never mutated.
type RuleTable struct {
	Exceptions []*Rule
	Suffixes   []*Rule
}

// RuleSet maps every word type to its table.
type RuleSet [wordTypeCount]*RuleTable

// Table returns the rule table for t, or nil if t is out of range.
func (s *RuleSet) Table(t WordType) *RuleTable {
	if int(t) >= len(s) {
		return nil
	}
	return s[t]
}
