package padezh

import "strings"

// Dictionary answers exact-match lookups of nouns with known case forms.
// Implementations must be safe for concurrent use.
type Dictionary interface {
	// Lookup finds the record whose nominative form equals key.
	// a.Gender and a.Animate filter the candidates when set; a.Plural
	// chooses which nominative (singular or plural) key is matched against.
	Lookup(key string, a Attrs) (Hit, bool)
}

// Hit is a dictionary match.
type Hit struct {
	Record *Record
	// Plural is true when the plural forms of Record apply.
	Plural bool
}

// Record is a dictionary entry. A form cell may hold several
// comma-separated alternatives.
type Record struct {
	Gender       Gender
	Animate      bool
	Indeclinable bool
	// Singular and Plural are the nominative forms.
	Singular string
	Plural   string
	// SingularForms and PluralForms hold genitive..prepositional.
	SingularForms [modCount]string
	PluralForms   [modCount]string
}

// Form returns the form of r for case c, choosing the longest alternative
// when a cell lists several. It returns "" when the cell is empty.
func (r *Record) Form(c Case, plural bool) string {
	if c == Nominative {
		if plural {
			return longest(r.Plural)
		}
		return longest(r.Singular)
	}
	if !c.Valid() {
		return ""
	}
	if plural {
		return longest(r.PluralForms[c.modIndex()])
	}
	return longest(r.SingularForms[c.modIndex()])
}

// longest picks the longest comma-separated alternative of cell; the first
// one wins ties.
func longest(cell string) string {
	best := ""
	for _, f := range strings.Split(cell, ",") {
		f = strings.TrimSpace(f)
		if len([]rune(f)) > len([]rune(best)) {
			best = f
		}
	}
	return best
}

// MemoryDictionary is an immutable in-memory Dictionary indexed by both
// nominative forms.
type MemoryDictionary struct {
	singular map[string][]*Record
	plural   map[string][]*Record
}

// NewMemoryDictionary indexes records by their lowercase nominative forms.
func NewMemoryDictionary(records []*Record) *MemoryDictionary {
	d := &MemoryDictionary{
		singular: make(map[string][]*Record, len(records)),
		plural:   make(map[string][]*Record, len(records)),
	}
	for _, r := range records {
		if k := NormalizeKey(r.Singular); k != "" {
			d.singular[k] = append(d.singular[k], r)
		}
		for _, alt := range strings.Split(r.Plural, ",") {
			if k := NormalizeKey(alt); k != "" {
				d.plural[k] = append(d.plural[k], r)
			}
		}
	}
	return d
}

// Len returns the number of distinct singular keys.
func (d *MemoryDictionary) Len() int { return len(d.singular) }

// Lookup implements Dictionary. With a.Plural set to Yes the plural index is
// searched first and a singular-key match still returns the plural forms;
// with No only singular keys match; unset tries singular then plural.
func (d *MemoryDictionary) Lookup(key string, a Attrs) (Hit, bool) {
	switch a.Plural {
	case Yes:
		if r := d.filter(d.plural[key], a); r != nil {
			return Hit{Record: r, Plural: true}, true
		}
		if r := d.filter(d.singular[key], a); r != nil {
			return Hit{Record: r, Plural: true}, true
		}
	case No:
		if r := d.filter(d.singular[key], a); r != nil {
			return Hit{Record: r}, true
		}
	default:
		if r := d.filter(d.singular[key], a); r != nil {
			return Hit{Record: r}, true
		}
		if r := d.filter(d.plural[key], a); r != nil {
			return Hit{Record: r, Plural: true}, true
		}
	}
	return Hit{}, false
}

// filter returns the first record agreeing with the gender and animacy of a.
func (d *MemoryDictionary) filter(records []*Record, a Attrs) *Record {
	for _, r := range records {
		if a.Gender != GenderUnset && r.Gender != a.Gender {
			continue
		}
		if a.Animate.IsSet() && r.Animate != a.Animate.True() {
			continue
		}
		return r
	}
	return nil
}
