package padezh

import (
	"fmt"
	"strings"
)

// surnameSuffixes are endings typical of Russian, Ukrainian, Belarusian
// and Caucasian surnames.
var surnameSuffixes = []string{
	"ов", "ев", "ёв", "ин", "ын", "ова", "ева", "ёва", "ина", "ына",
	"ский", "цкий", "ской", "цкой", "ская", "цкая",
	"ых", "их", "ко", "ук", "юк", "дзе", "швили", "ян", "янц",
}

// patronymicSuffixes end every patronymic, with the Turkic particles.
var patronymicSuffixes = []string{"вич", "ич", "вна", "ична", "инична", "оглы", "кызы", "улы", "уулу"}

// turkicParticles follow the father's name in Turkic patronymics.
var turkicParticles = map[string]Gender{
	"оглы": Male, "улы": Male, "уулу": Male, "кызы": Female,
}

// femaleSurnameSuffixes mark surnames declined as feminine.
var femaleSurnameSuffixes = []string{"ова", "ева", "ёва", "ина", "ына", "ская", "цкая", "ая", "яя"}

func hasAnySuffix(key string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(key, s) {
			return true
		}
	}
	return false
}

func isPatronymic(key string) bool { return hasAnySuffix(key, patronymicSuffixes) }

// patronymicGender infers gender from a patronymic ending.
func patronymicGender(key string) Gender {
	switch {
	case strings.HasSuffix(key, "на"), strings.HasSuffix(key, "кызы"):
		return Female
	case isPatronymic(key):
		return Male
	}
	return GenderUnset
}

// surnameGender infers gender from a surname ending; unknown endings are
// masculine.
func surnameGender(key string) Gender {
	if hasAnySuffix(key, femaleSurnameSuffixes) {
		return Female
	}
	return Male
}

// isFirstName reports whether key is a listed first name. A hyphenated
// key qualifies when every part is listed: анна-мария.
func (in *Inflector) isFirstName(key string) bool {
	if _, ok := in.firstNames[key]; ok {
		return true
	}
	if !strings.Contains(key, "-") {
		return false
	}
	for _, part := range strings.Split(key, "-") {
		if _, ok := in.firstNames[part]; !ok {
			return false
		}
	}
	return true
}

// listedGender is the listed gender of a first name, or of the first part
// of a hyphenated one. It is GenderUnset for names not in the list.
func (in *Inflector) listedGender(key string) Gender {
	if g := in.firstNames[key]; g != GenderUnset {
		return g
	}
	if first, _, ok := strings.Cut(key, "-"); ok {
		return in.firstNames[first]
	}
	return GenderUnset
}

// firstNameGender returns the listed gender of a first name, falling back
// to the ending: -а/-я names are feminine.
func (in *Inflector) firstNameGender(key string) Gender {
	if g := in.listedGender(key); g != GenderUnset {
		return g
	}
	switch lastRune(key) {
	case 'а', 'я':
		return Female
	}
	return Male
}

// looksLikeSurname accepts a Cyrillic word with a surname ending, or a
// capitalized word that is neither a first name nor a preposition.
func (in *Inflector) looksLikeSurname(t *Token) bool {
	if t.Indeclinable || !isCyrillic(t.Text) {
		return false
	}
	if hasAnySuffix(t.Key, surnameSuffixes) {
		return true
	}
	return isCapitalized(t.Text) && !in.isFirstName(t.Key) && !in.isPreposition(t)
}

// matchName recognizes a personal name starting at token i in one of the
// orders Surname First [Patronymic], First Patronymic [Surname] or
// First Surname. On a match it tags the tokens, sets the phrase gender and
// animacy, and returns the number of tokens in the name; otherwise 0.
func (in *Inflector) matchName(p *Phrase, i int) int {
	word := func(j int) *Token {
		if i+j >= len(p.Tokens) {
			return nil
		}
		t := p.Tokens[i+j]
		if t.Indeclinable || !isCyrillic(t.Text) {
			return nil
		}
		return t
	}
	t0, t1, t2 := word(0), word(1), word(2)
	if t0 == nil || t1 == nil {
		return 0
	}

	var roles []WordType
	switch {
	case hasAnySuffix(t0.Key, surnameSuffixes) && in.isFirstName(t1.Key):
		roles = []WordType{FamilyName, FirstName}
		if t2 != nil && isPatronymic(t2.Key) {
			roles = append(roles, PatronymicName)
		}
	case in.isFirstName(t0.Key) && isPatronymic(t1.Key):
		roles = []WordType{FirstName, PatronymicName}
		if t2 != nil && in.looksLikeSurname(t2) {
			roles = append(roles, FamilyName)
		}
	case in.isFirstName(t0.Key) && in.looksLikeSurname(t1):
		roles = []WordType{FirstName, FamilyName}
	default:
		return 0
	}

	group := p.Tokens[i : i+len(roles)]
	g := p.Attrs.Gender
	if g == GenderUnset {
		g = in.nameGender(group, roles)
	}
	for j, t := range group {
		t.WordType = roles[j]
		t.Own = true
		t.Attrs = Attrs{Gender: g, Animate: Yes, Plural: No}
	}
	p.Attrs.Gender = g
	p.genderLocked = true
	if !p.Attrs.Animate.IsSet() {
		p.Attrs.Animate = Yes
	}
	return len(roles)
}

// nameGender infers the gender of a name from the first name, then the
// patronymic, then the surname.
func (in *Inflector) nameGender(group []*Token, roles []WordType) Gender {
	find := func(wt WordType) *Token {
		for j, r := range roles {
			if r == wt {
				return group[j]
			}
		}
		return nil
	}
	if t := find(FirstName); t != nil {
		if g := in.listedGender(t.Key); g != GenderUnset {
			return g
		}
	}
	if t := find(PatronymicName); t != nil {
		if g := patronymicGender(t.Key); g != GenderUnset {
			return g
		}
	}
	if t := find(FamilyName); t != nil {
		return surnameGender(t.Key)
	}
	return Male
}

// InflectFirstname declines a first name. An unset gender is inferred from
// the name.
func (in *Inflector) InflectFirstname(name string, c Case, g Gender) (string, error) {
	if g == GenderUnset {
		g = in.firstNameGender(NormalizeKey(name))
	}
	return in.Inflect(name, FirstName, c, Attrs{Gender: g, Animate: Yes})
}

// InflectPatronymic declines a patronymic. An unset gender is inferred from
// the ending.
func (in *Inflector) InflectPatronymic(name string, c Case, g Gender) (string, error) {
	if g == GenderUnset {
		g = patronymicGender(NormalizeKey(name)).orMale()
	}
	return in.Inflect(name, PatronymicName, c, Attrs{Gender: g, Animate: Yes})
}

// InflectSurname declines a surname. An unset gender is inferred from the
// ending.
func (in *Inflector) InflectSurname(name string, c Case, g Gender) (string, error) {
	if g == GenderUnset {
		g = surnameGender(NormalizeKey(name))
	}
	return in.Inflect(name, FamilyName, c, Attrs{Gender: g, Animate: Yes})
}

// InflectFullname declines "Surname Firstname Patronymic". Either trailing
// part may be missing. A Turkic patronymic ("Гусейн оглы") is kept as is.
func (in *Inflector) InflectFullname(name string, c Case) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidArgument)
	}
	if !c.Valid() {
		return "", fmt.Errorf("%w: case %d", ErrInvalidArgument, c)
	}
	if c == Nominative {
		return name, nil
	}

	p := Tokenize(name)
	roles := []WordType{FamilyName, FirstName, PatronymicName}
	var particle Gender
	switch n := len(p.Tokens); {
	case n == 4:
		g, ok := turkicParticles[p.Tokens[3].Key]
		if !ok {
			return "", fmt.Errorf("%w: %q has more than three parts", ErrInvalidArgument, name)
		}
		particle = g
		p.Tokens[2].Indeclinable = true
		p.Tokens[3].Indeclinable = true
	case n > 4:
		return "", fmt.Errorf("%w: %q has more than three parts", ErrInvalidArgument, name)
	default:
		roles = roles[:n]
	}

	var g Gender
	if len(roles) > 1 {
		g = in.listedGender(p.Tokens[1].Key)
	}
	if g == GenderUnset && len(p.Tokens) == 3 {
		g = patronymicGender(p.Tokens[2].Key)
	}
	if g == GenderUnset {
		g = particle
	}
	if g == GenderUnset {
		g = surnameGender(p.Tokens[0].Key)
	}

	for j, t := range p.Tokens {
		if j >= len(roles) || t.Indeclinable {
			continue
		}
		s, err := in.inflectWord(t.Text, roles[j], c, Attrs{Gender: g, Animate: Yes})
		if err != nil {
			return "", err
		}
		t.Text = s
	}
	return p.String(), nil
}

// looksLikeFullName reports whether phrase reads as Surname Firstname
// [Patronymic] or a Turkic four-part name.
func (in *Inflector) looksLikeFullName(phrase string) bool {
	p := Tokenize(phrase)
	n := len(p.Tokens)
	if n < 2 || n > 4 {
		return false
	}
	for _, t := range p.Tokens {
		if t.Indeclinable || !isCyrillic(t.Text) {
			return false
		}
	}
	if n == 4 {
		if _, ok := turkicParticles[p.Tokens[3].Key]; !ok {
			return false
		}
	}
	if !hasAnySuffix(p.Tokens[0].Key, surnameSuffixes) || !in.isFirstName(p.Tokens[1].Key) {
		return false
	}
	return n < 3 || n == 4 || isPatronymic(p.Tokens[2].Key)
}
