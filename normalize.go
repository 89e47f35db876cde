package padezh

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey returns the lookup key of a word: trimmed, NFC-composed and
// lowercased. Composition turns a decomposed "й" (и + U+0306) or "ё" into
// the single code point the tables use.
func NormalizeKey(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// restoreCase reimposes the letter casing of original onto result.
// Characters equal (ignoring case) to the original are copied verbatim up to
// the first difference; from there on every result character takes the
// casing of the first diverging original character, or of the last one when
// the result is longer.
func restoreCase(original, result string) string {
	orig := []rune(original)
	res := []rune(result)
	out := make([]rune, 0, len(res))

	i := 0
	for ; i < len(res) && i < len(orig); i++ {
		if unicode.ToLower(orig[i]) != unicode.ToLower(res[i]) {
			break
		}
		out = append(out, orig[i])
	}
	if i == len(res) {
		return string(out)
	}

	var ref rune
	switch {
	case i < len(orig):
		ref = orig[i]
	case len(orig) > 0:
		ref = orig[len(orig)-1]
	}
	upper := unicode.IsUpper(ref)
	for ; i < len(res); i++ {
		if upper {
			out = append(out, unicode.ToUpper(res[i]))
		} else {
			out = append(out, unicode.ToLower(res[i]))
		}
	}
	return string(out)
}

const vowels = "аеёиоуыэюя"

func isVowel(r rune) bool { return strings.ContainsRune(vowels, unicode.ToLower(r)) }

// isCyrillic reports whether every letter of w is Cyrillic. Hyphens are
// allowed between letters; digits, Latin letters and punctuation are not.
func isCyrillic(w string) bool {
	seen := false
	for _, r := range w {
		switch {
		case r == '-':
		case unicode.Is(unicode.Cyrillic, r):
			seen = true
		default:
			return false
		}
	}
	return seen
}

// allConsonants reports whether w has no vowel (and at least one letter).
func allConsonants(w string) bool {
	n := 0
	for _, r := range w {
		if isVowel(r) {
			return false
		}
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n > 0
}

// allVowels reports whether every letter of w is a vowel.
func allVowels(w string) bool {
	n := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			continue
		}
		if !isVowel(r) {
			return false
		}
		n++
	}
	return n > 0
}

// isUpperWord reports whether w has letters and all of them are uppercase.
func isUpperWord(w string) bool {
	n := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		n++
	}
	return n > 0
}

// isCapitalized reports whether the first letter of w is uppercase.
func isCapitalized(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// lastRune returns the final rune of s, or 0.
func lastRune(s string) rune {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1]
}

// trimRunes drops the last n runes of s.
func trimRunes(s string, n int) string {
	rs := []rune(s)
	if n > len(rs) {
		n = len(rs)
	}
	return string(rs[:len(rs)-n])
}

// hushing reports whether r is a velar or sibilant after which Russian
// writes "и" instead of "ы".
func hushing(r rune) bool { return strings.ContainsRune("гкхжшчщ", r) }

// pluralize guesses the nominative plural of a singular noun key.
// It is an approximation: stress, fleeting vowels and irregular plurals
// are left to the dictionary.
func pluralize(key string) string {
	switch {
	case key == "":
		return key
	case strings.HasSuffix(key, "ый"), strings.HasSuffix(key, "ой"):
		if hushing(lastRune(trimRunes(key, 2))) {
			return trimRunes(key, 2) + "ие"
		}
		return trimRunes(key, 2) + "ые"
	case strings.HasSuffix(key, "ий"):
		return trimRunes(key, 2) + "ие"
	case strings.HasSuffix(key, "ие"):
		return trimRunes(key, 1) + "я"
	case strings.HasSuffix(key, "мя"):
		return trimRunes(key, 1) + "ена"
	}
	stem := trimRunes(key, 1)
	switch lastRune(key) {
	case 'а':
		if hushing(lastRune(stem)) {
			return stem + "и"
		}
		return stem + "ы"
	case 'я', 'ь', 'й':
		return stem + "и"
	case 'о':
		return stem + "а"
	case 'е':
		return stem + "я"
	}
	if hushing(lastRune(key)) {
		return key + "и"
	}
	if isVowel(lastRune(key)) {
		return key
	}
	return key + "ы"
}

// singularForms lists candidate nominative singulars of a plural noun key,
// most likely first.
func singularForms(key string) []string {
	switch {
	case strings.HasSuffix(key, "ые"):
		return []string{trimRunes(key, 2) + "ый", trimRunes(key, 2) + "ой"}
	case strings.HasSuffix(key, "ие"):
		return []string{trimRunes(key, 2) + "ий", trimRunes(key, 2) + "ой"}
	case strings.HasSuffix(key, "ена"):
		return []string{trimRunes(key, 3) + "я"}
	}
	stem := trimRunes(key, 1)
	switch lastRune(key) {
	case 'ы':
		return []string{stem, stem + "а"}
	case 'и':
		return []string{stem, stem + "а", stem + "я", stem + "ь", stem + "й"}
	case 'а':
		return []string{stem + "о"}
	case 'я':
		return []string{stem + "е", stem + "ь"}
	}
	return nil
}

// genderEndings maps word endings to non-masculine genders, longest first.
var genderEndings = []struct {
	suffix string
	gender Gender
}{
	{"ость", Female},
	{"жь", Female},
	{"шь", Female},
	{"чь", Female},
	{"щь", Female},
	{"знь", Female},
	{"вь", Female},
	{"мя", Neuter},
	{"ие", Neuter},
	{"а", Female},
	{"я", Female},
	{"о", Neuter},
	{"е", Neuter},
	{"ё", Neuter},
}

// genderByEnding guesses the gender of a noun key from its ending.
// Anything not listed is masculine.
func genderByEnding(key string) Gender {
	for _, e := range genderEndings {
		if strings.HasSuffix(key, e.suffix) {
			return e.gender
		}
	}
	return Male
}
