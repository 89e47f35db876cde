package padezh

import (
	"fmt"
	"strings"
)

// adjectiveEndings are the nominative singular adjective endings by gender.
var adjectiveEndings = []struct {
	suffix string
	gender Gender
}{
	{"ый", Male},
	{"ий", Male},
	{"ой", Male},
	{"ая", Female},
	{"яя", Female},
	{"ое", Neuter},
	{"ее", Neuter},
}

// adjectiveFalsePositives lists three-letter endings of nouns that look like
// adjectives: санаторий, критерий, Клавдий.
var adjectiveFalsePositives = map[Gender][]string{
	Male: {"рий", "лий", "дий", "вий", "мий", "зий", "сий", "пий", "бий", "фий"},
}

// pluralAdjectiveEndings are nominative plural adjective endings. Plain
// "ние" is left out: it is far more often a noun (здание).
var pluralAdjectiveEndings = []string{"ые", "кие", "гие", "хие", "жие", "шие", "чие", "щие"}

// adjectiveGender classifies key as a nominative adjective. For plural
// forms gender is unset and plural is Yes.
func adjectiveGender(key string) (g Gender, plural Ternary, ok bool) {
	rs := []rune(key)
	if len(rs) < 4 {
		return GenderUnset, Unset, false
	}
	for _, e := range pluralAdjectiveEndings {
		if strings.HasSuffix(key, e) {
			return GenderUnset, Yes, true
		}
	}
	last3 := string(rs[len(rs)-3:])
	for _, e := range adjectiveEndings {
		if !strings.HasSuffix(key, e.suffix) {
			continue
		}
		for _, fp := range adjectiveFalsePositives[e.gender] {
			if last3 == fp {
				return GenderUnset, Unset, false
			}
		}
		return e.gender, No, true
	}
	return GenderUnset, Unset, false
}

// agreesAsAdjective reports whether key looks like an adjective agreeing
// with a.
func agreesAsAdjective(key string, a Attrs) bool {
	g, plural, ok := adjectiveGender(key)
	if !ok {
		return false
	}
	if a.Plural == Yes {
		return plural == Yes
	}
	return plural != Yes && g == a.Gender
}

// InflectPhrase declines a free-text phrase. It finds the subject noun,
// infers gender, animacy and number from it, and declines the subject with
// its leading modifiers. Everything after the subject group stays as is.
// Attributes set in a override the inferred ones.
func (in *Inflector) InflectPhrase(phrase string, c Case, a Attrs) (string, error) {
	if strings.TrimSpace(phrase) == "" {
		return "", fmt.Errorf("%w: empty phrase", ErrInvalidArgument)
	}
	if !c.Valid() {
		return "", fmt.Errorf("%w: case %d", ErrInvalidArgument, c)
	}
	if c == Nominative {
		return phrase, nil
	}

	key := cacheKey{text: phrase, c: c, a: a}
	if in.cache != nil {
		if s, ok := in.cache.Get(key); ok {
			return s, nil
		}
	}

	p := in.Analyze(phrase, a)
	out, err := in.render(p, c)
	if err != nil {
		return "", err
	}
	if in.cache != nil {
		in.cache.Add(key, out)
	}
	return out, nil
}

// Analyze tokenizes phrase and decides which tokens decline and with which
// attributes. Tokens left declinable have their Attrs and WordType set.
func (in *Inflector) Analyze(phrase string, a Attrs) *Phrase {
	p := Tokenize(phrase)
	p.Attrs = a
	p.genderLocked = a.Gender != GenderUnset

	subject, end, isName := in.scan(p, a)
	if subject < 0 {
		for _, t := range p.Tokens {
			t.Indeclinable = true
		}
		return p
	}

	st := p.Tokens[subject]
	if !isName && !st.Indeclinable {
		end += in.resolveSubject(p, subject, a)
	}
	if p.Attrs.Gender == GenderUnset {
		p.Attrs.Gender = Male
	}
	p.Attrs.Animate = p.Attrs.Animate.or(No)
	p.Attrs.Plural = p.Attrs.Plural.or(No)

	last := end
	if !st.Indeclinable {
		last = in.extend(p, end)
	}
	for j, t := range p.Tokens {
		switch {
		case j > last:
			t.Indeclinable = true
		case t.Indeclinable, t.Own:
		default:
			pos := t.Attrs.PartOfSpeech
			t.Attrs = p.Attrs
			t.Attrs.PartOfSpeech = pos
		}
	}
	in.log.Debug("phrase analyzed", "phrase", phrase, "subject", st.Text,
		"gender", p.Attrs.Gender, "animate", p.Attrs.Animate, "plural", p.Attrs.Plural,
		"declinable_to", last)
	return p
}

// scan walks the tokens left to right and returns the subject span
// [subject, end]. isName is set when the span is a personal name.
// subject is -1 when nothing in the phrase declines.
func (in *Inflector) scan(p *Phrase, a Attrs) (subject, end int, isName bool) {
	mixed := p.mixedCase()
	lastModifier := -1

	for i := 0; i < len(p.Tokens); i++ {
		t := p.Tokens[i]
		if t.Indeclinable {
			break
		}
		if !isCyrillic(t.Text) {
			t.Indeclinable = true
			continue
		}

		if in.isAbbreviation(t, mixed) {
			t.Indeclinable = true
			if in.abbreviations[t.Key] && a.Animate != No && i+1 < len(p.Tokens) &&
				in.looksLikeSurname(p.Tokens[i+1]) {
				if n := in.matchName(p, i+1); n > 0 {
					return i + 1, i + n, true
				}
			}
			return i, i, false
		}

		if a.Animate != No {
			if n := in.matchName(p, i); n > 0 {
				return i, i + n - 1, true
			}
		}

		beforePreposition := i+1 < len(p.Tokens) && in.isPreposition(p.Tokens[i+1])

		// An adjective right before a preposition heads the phrase on its
		// own, as in "дежурный по станции".
		if g, plural, ok := adjectiveGender(t.Key); ok {
			t.Attrs.PartOfSpeech = POSAdjective
			if !p.genderLocked && g != GenderUnset {
				p.Attrs.Gender = g
				p.genderLocked = true
			}
			if !p.Attrs.Plural.IsSet() && plural == Yes {
				p.Attrs.Plural = Yes
			}
			if beforePreposition || in.substantives[t.Key] == substAdjective {
				return i, i, false
			}
			lastModifier = i
			continue
		}

		t.Attrs.PartOfSpeech = POSNoun
		return i, i, false
	}

	if lastModifier >= 0 {
		return lastModifier, lastModifier, false
	}
	return -1, -1, false
}

// isAbbreviation reports whether t is a known abbreviation, is spelled
// with consonants or vowels only, or is shouted inside a mixed-case phrase.
func (in *Inflector) isAbbreviation(t *Token, mixed bool) bool {
	if _, ok := in.abbreviations[t.Key]; ok {
		return true
	}
	if len([]rune(t.Key)) < 2 || strings.Contains(t.Key, "-") {
		return false
	}
	if allConsonants(t.Key) || allVowels(t.Key) {
		return true
	}
	return mixed && isUpperWord(t.Text)
}

func (in *Inflector) isPreposition(t *Token) bool {
	_, ok := in.prepositions[t.Key]
	return ok
}

// resolveSubject fills the phrase attributes from the subject at index i:
// dictionary first, then its guessed singular, then its ending. A hyphen
// compound that the dictionary does not know is split into parts. It
// returns how many tokens the split added.
func (in *Inflector) resolveSubject(p *Phrase, i int, a Attrs) int {
	st := p.Tokens[i]
	query := Attrs{Animate: a.Animate, Plural: a.Plural}
	if p.genderLocked {
		query.Gender = p.Attrs.Gender
	}

	hit, ok := in.dict.Lookup(st.Key, query)
	if !ok && a.Plural != No {
		sq := query
		sq.Plural = No
		for _, sg := range singularForms(st.Key) {
			if hit, ok = in.dict.Lookup(sg, sq); ok {
				hit.Plural = true
				break
			}
		}
	}

	if ok {
		rec := hit.Record
		st.Record = rec
		st.Indeclinable = rec.Indeclinable
		if a.Gender == GenderUnset {
			p.Attrs.Gender = rec.Gender
		}
		if !a.Animate.IsSet() {
			p.Attrs.Animate = TernaryOf(rec.Animate)
		}
		if !a.Plural.IsSet() {
			p.Attrs.Plural = TernaryOf(hit.Plural)
		}
		return 0
	}

	kind := in.substantives[st.Key]
	if kind == substAdjective && !a.Animate.IsSet() {
		p.Attrs.Animate = Yes
	}
	if !p.genderLocked {
		if kind == substFeminine && len(p.Tokens) == 1 {
			p.Attrs.Gender = Female
		} else {
			p.Attrs.Gender = genderByEnding(st.Key)
		}
	}

	if !strings.Contains(strings.Trim(st.Key, "-"), "-") {
		return 0
	}
	parts := in.splitCompound(st, p.Attrs)
	if a.Gender == GenderUnset && !p.genderLocked {
		p.Attrs.Gender = parts[0].Attrs.Gender
	}
	if !a.Animate.IsSet() && parts[0].Record != nil {
		p.Attrs.Animate = parts[0].Attrs.Animate
	}
	p.splice(i, parts)
	return len(parts) - 1
}

// splitCompound resolves each part of a hyphenated noun on its own.
// A later part the dictionary does not know declines as masculine:
// сестра-анестезист → сестры-анестезиста.
func (in *Inflector) splitCompound(st *Token, phrase Attrs) []*Token {
	texts := strings.Split(st.Text, "-")
	parts := make([]*Token, 0, len(texts))
	for j, text := range texts {
		pt := newToken(text)
		pt.Sep = "-"
		pt.Own = true
		pt.Attrs = Attrs{Animate: phrase.Animate, Plural: phrase.Plural, PartOfSpeech: POSNoun}
		if text == "" {
			pt.Indeclinable = true
			parts = append(parts, pt)
			continue
		}
		if hit, ok := in.dict.Lookup(pt.Key, Attrs{}); ok {
			pt.Record = hit.Record
			pt.Indeclinable = hit.Record.Indeclinable
			pt.Attrs.Gender = hit.Record.Gender
			pt.Attrs.Animate = TernaryOf(hit.Record.Animate)
			if hit.Plural {
				pt.Attrs.Plural = Yes
			}
		} else if j > 0 {
			pt.Attrs.Gender = Male
		} else {
			pt.Attrs.Gender = genderByEnding(pt.Key)
		}
		parts = append(parts, pt)
	}
	return parts
}

// extend grows the declinable span past end over trailing adjectives that
// agree with the phrase ("директор исполнительный"). The extension only
// counts when it reaches the end of the phrase.
func (in *Inflector) extend(p *Phrase, end int) int {
	last := end
	for j := end + 1; j < len(p.Tokens); j++ {
		t := p.Tokens[j]
		if t.Indeclinable || !isCyrillic(t.Text) || !agreesAsAdjective(t.Key, p.Attrs) {
			break
		}
		t.Attrs.PartOfSpeech = POSAdjective
		last = j
	}
	if last != len(p.Tokens)-1 {
		return end
	}
	return last
}

// render declines every declinable token and reassembles the phrase.
func (in *Inflector) render(p *Phrase, c Case) (string, error) {
	for _, t := range p.Tokens {
		if t.Indeclinable {
			continue
		}
		if t.Record != nil && t.WordType == Generic {
			if form := t.Record.Form(c, t.Attrs.Plural == Yes); form != "" {
				t.Text = restoreCase(t.Text, form)
				continue
			}
		}
		s, err := in.inflectWord(t.Text, t.WordType, c, t.Attrs)
		if err != nil {
			return "", err
		}
		t.Text = s
	}
	return p.String(), nil
}
