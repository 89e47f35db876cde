package padezh

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Inflect declines a single word of type wt into case c. Nominative returns
// word unchanged. A word no dictionary entry or rule covers is returned as
// is; that is not an error.
func (in *Inflector) Inflect(word string, wt WordType, c Case, a Attrs) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", fmt.Errorf("%w: empty word", ErrInvalidArgument)
	}
	if !c.Valid() {
		return "", fmt.Errorf("%w: case %d", ErrInvalidArgument, c)
	}
	if int(wt) >= wordTypeCount {
		return "", fmt.Errorf("%w: word type %d", ErrInvalidArgument, wt)
	}
	if c == Nominative {
		return word, nil
	}
	return in.inflectWord(word, wt, c, a)
}

// inflectWord is Inflect without argument checks.
func (in *Inflector) inflectWord(word string, wt WordType, c Case, a Attrs) (string, error) {
	word = norm.NFC.String(strings.TrimSpace(word))

	// Double first names and surnames decline part by part.
	if (wt == FirstName || wt == FamilyName) && strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, p := range parts {
			if p == "" {
				continue
			}
			s, err := in.inflectWord(p, wt, c, a)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, "-"), nil
	}

	key := strings.ToLower(word)
	if wt == Generic && a.PartOfSpeech != POSAdjective {
		if form, ok := in.dictionaryForm(key, c, a); ok {
			return restoreCase(word, form), nil
		}
	}

	a.Gender = a.Gender.orMale()
	a.Animate = a.Animate.or(No)
	a.Plural = a.Plural.or(No)
	if wt == Generic && a.PartOfSpeech == POSAny {
		a.PartOfSpeech = POSNoun
		if _, _, ok := adjectiveGender(key); ok {
			a.PartOfSpeech = POSAdjective
		}
	}
	r, err := in.rules.Table(wt).Find(key, a)
	if err != nil {
		return "", err
	}
	if r == nil {
		in.log.Debug("no rule", "word", word, "type", wt)
		return word, nil
	}
	return restoreCase(word, r.Apply(c, key)), nil
}

// dictionaryForm returns the dictionary form of key for case c. When a
// plural is wanted and key is unknown, the guessed plural of key is tried
// once.
func (in *Inflector) dictionaryForm(key string, c Case, a Attrs) (string, bool) {
	if in.dict == nil {
		return "", false
	}
	hit, ok := in.dict.Lookup(key, a)
	if !ok && a.Plural == Yes {
		if pk := pluralize(key); pk != key {
			hit, ok = in.dict.Lookup(pk, a)
		}
	}
	if !ok {
		return "", false
	}
	if hit.Record.Indeclinable {
		return key, true
	}
	form := hit.Record.Form(c, hit.Plural)
	return form, form != ""
}
