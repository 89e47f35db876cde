package padezh

import "fmt"

// Find selects the rule of t that inflects word. word must already be a
// normalized key. A nil rule with a nil error means the word is not covered
// by the table and should be left as is.
//
// Exceptions and suffixes are matched independently. A list result whose
// gender equals the requested one wins over a wildcard result, and the
// exceptions list wins ties.
func (t *RuleTable) Find(word string, a Attrs) (*Rule, error) {
	if t == nil {
		return nil, nil
	}
	a.Gender = a.Gender.orMale()

	exc, err := pick(t.Exceptions, word, a)
	if err != nil {
		return nil, err
	}
	suf, err := pick(t.Suffixes, word, a)
	if err != nil {
		return nil, err
	}

	switch {
	case exc != nil && exc.Gender == a.Gender:
		return exc, nil
	case suf != nil && suf.Gender == a.Gender:
		return suf, nil
	case exc != nil:
		return exc, nil
	default:
		return suf, nil
	}
}

// pick runs one rule list: collect every rule with a matching suffix, keep
// the ones whose gender fits, then break ties by animacy, number and part
// of speech before falling back to table order.
func pick(rules []*Rule, word string, a Attrs) (*Rule, error) {
	var candidates []*Rule
	for _, r := range rules {
		if r.matches(word) {
			candidates = append(candidates, r)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	}

	filtered := candidates[:0:0]
	for _, r := range candidates {
		if r.Gender == a.Gender || r.Gender == Neuter {
			filtered = append(filtered, r)
		}
	}
	switch len(filtered) {
	case 0:
		return nil, fmt.Errorf("%w: %d rules match %q but none fits gender %s",
			ErrRuleTable, len(candidates), word, a.Gender)
	case 1:
		return filtered[0], nil
	}

	if !a.Animate.IsSet() && !a.Plural.IsSet() && a.PartOfSpeech == POSAny {
		return filtered[0], nil
	}

	if a.Animate.IsSet() {
		for _, r := range filtered {
			if r.Animate == a.Animate && compatible(r, a) {
				return r, nil
			}
		}
	}
	if a.Plural.IsSet() {
		for _, r := range filtered {
			if r.Plural == a.Plural && compatible(r, a) {
				return r, nil
			}
		}
	}
	if a.PartOfSpeech != POSAny {
		for _, r := range filtered {
			if r.PartOfSpeech == a.PartOfSpeech && compatible(r, a) {
				return r, nil
			}
		}
	}
	for _, r := range filtered {
		if compatible(r, a) {
			return r, nil
		}
	}
	return filtered[0], nil
}

// compatible reports whether every attribute r states agrees with the request.
// Attributes left unstated on either side always agree.
func compatible(r *Rule, a Attrs) bool {
	if a.Animate.IsSet() && r.Animate.IsSet() && r.Animate != a.Animate {
		return false
	}
	if a.Plural.IsSet() && r.Plural.IsSet() && r.Plural != a.Plural {
		return false
	}
	if a.PartOfSpeech != POSAny && r.PartOfSpeech != POSAny && r.PartOfSpeech != a.PartOfSpeech {
		return false
	}
	return true
}

// Apply returns word transformed for case c. Nominative is always the
// identity.
func (r *Rule) Apply(c Case, word string) string {
	if c == Nominative || !c.Valid() {
		return word
	}
	return applyMod(r.Mods[c.modIndex()], word)
}

// applyMod interprets one modifier: "." keeps the word, each leading '-'
// strips one trailing character, and the rest is appended.
func applyMod(mod, word string) string {
	if mod == "." {
		return word
	}
	rs := []rune(word)
	i := 0
	for i < len(mod) && mod[i] == '-' {
		if len(rs) > 0 {
			rs = rs[:len(rs)-1]
		}
		i++
	}
	return string(rs) + mod[i:]
}
