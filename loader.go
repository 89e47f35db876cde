package padezh

import (
	"bufio"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*
var embedded embed.FS

// Data file names, relative to the data file system root.
const (
	rulesFile         = "rules.yaml"
	dictionaryFile    = "dictionary.csv"
	firstNamesFile    = "first_names.txt"
	prepositionsFile  = "prepositions.txt"
	abbreviationsFile = "abbreviations.txt"
	substantivesFile  = "substantives.txt"
)

// DataFS returns the bundled data files. Its layout is the one expected by
// WithFS, so a directory with edited copies can replace it.
func DataFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// ruleRecord is the on-disk shape of a rule.
type ruleRecord struct {
	Gender       string   `yaml:"gender"`
	PartOfSpeech string   `yaml:"part_of_speech"`
	Animate      *bool    `yaml:"animate"`
	Plural       *bool    `yaml:"plural"`
	Test         []string `yaml:"test"`
	Mods         []string `yaml:"mods"`
}

type tableRecord struct {
	Exceptions []ruleRecord `yaml:"exceptions"`
	Suffixes   []ruleRecord `yaml:"suffixes"`
}

// loadRules reads rules.yaml: one top-level key per word type, each with
// "exceptions" and "suffixes" lists.
func loadRules(fsys fs.FS) (*RuleSet, error) {
	b, err := fs.ReadFile(fsys, rulesFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", rulesFile, err)
	}
	var raw map[string]tableRecord
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", rulesFile, err)
	}

	set := new(RuleSet)
	for name, tr := range raw {
		wt, err := ParseWordType(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rulesFile, err)
		}
		t := &RuleTable{}
		if t.Exceptions, err = buildRules(tr.Exceptions); err != nil {
			return nil, fmt.Errorf("%s: %s exceptions: %w", rulesFile, name, err)
		}
		if t.Suffixes, err = buildRules(tr.Suffixes); err != nil {
			return nil, fmt.Errorf("%s: %s suffixes: %w", rulesFile, name, err)
		}
		set[wt] = t
	}
	return set, nil
}

func buildRules(records []ruleRecord) ([]*Rule, error) {
	rules := make([]*Rule, 0, len(records))
	for i, rec := range records {
		r, err := rec.rule()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// rule validates rec and converts it to a Rule.
func (rec ruleRecord) rule() (*Rule, error) {
	g, err := ParseGender(rec.Gender)
	if err != nil {
		return nil, err
	}
	if g == GenderUnset {
		return nil, errors.New("missing gender")
	}
	pos, err := parsePartOfSpeech(rec.PartOfSpeech)
	if err != nil {
		return nil, err
	}
	if len(rec.Test) == 0 {
		return nil, errors.New("empty test list")
	}
	if len(rec.Mods) != modCount {
		return nil, fmt.Errorf("want %d mods, got %d", modCount, len(rec.Mods))
	}

	r := &Rule{Gender: g, PartOfSpeech: pos}
	if rec.Animate != nil {
		r.Animate = TernaryOf(*rec.Animate)
	}
	if rec.Plural != nil {
		r.Plural = TernaryOf(*rec.Plural)
	}
	for _, t := range rec.Test {
		r.Test = append(r.Test, NormalizeKey(t))
	}
	copy(r.Mods[:], rec.Mods)
	return r, nil
}

// dictionary.csv columns, pipe separated.
const (
	colGender = iota
	colAnimate
	colIndeclinable
	colSingular // nominative singular, then genitive..prepositional
	colPlural   = colSingular + CaseCount
	colCount    = colPlural + CaseCount
)

// loadDictionary reads dictionary.csv. Lines starting with '!' are comments.
func loadDictionary(fsys fs.FS) ([]*Record, error) {
	f, err := fsys.Open(dictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dictionaryFile, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = '|'
	cr.Comment = '!'
	cr.FieldsPerRecord = colCount
	cr.TrimLeadingSpace = true

	var records []*Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dictionaryFile, err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", dictionaryFile, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string) (*Record, error) {
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}
	g, err := ParseGender(row[colGender])
	if err != nil {
		return nil, err
	}
	if g == GenderUnset {
		return nil, errors.New("missing gender")
	}
	rec := &Record{
		Gender:       g,
		Animate:      row[colAnimate] == "1",
		Indeclinable: row[colIndeclinable] == "1",
		Singular:     row[colSingular],
		Plural:       row[colPlural],
	}
	if rec.Singular == "" {
		return nil, errors.New("missing nominative singular")
	}
	copy(rec.SingularForms[:], row[colSingular+1:colPlural])
	copy(rec.PluralForms[:], row[colPlural+1:colCount])
	return rec, nil
}

// readLines calls fn for every non-blank line of name that does not start
// with '!'.
func readLines(fsys fs.FS, name string, fn func(line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
	}
	return sc.Err()
}

// loadFirstNames reads "name:gender" lines. An empty gender marks a name
// used by both sexes (Саша, Женя).
func loadFirstNames(fsys fs.FS) (map[string]Gender, error) {
	names := make(map[string]Gender)
	err := readLines(fsys, firstNamesFile, func(line string) error {
		name, gs, _ := strings.Cut(line, ":")
		g, err := ParseGender(gs)
		if err != nil {
			return err
		}
		names[NormalizeKey(name)] = g
		return nil
	})
	return names, err
}

// loadWordSet reads one word per line.
func loadWordSet(fsys fs.FS, name string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	err := readLines(fsys, name, func(line string) error {
		set[NormalizeKey(line)] = struct{}{}
		return nil
	})
	return set, err
}

// loadAbbreviations reads abbreviations; a ":person" suffix marks a
// human or sole-trader marker such as "ИП".
func loadAbbreviations(fsys fs.FS) (map[string]bool, error) {
	abbrs := make(map[string]bool)
	err := readLines(fsys, abbreviationsFile, func(line string) error {
		word, kind, _ := strings.Cut(line, ":")
		switch kind {
		case "", "person":
		default:
			return fmt.Errorf("unknown abbreviation kind %q", kind)
		}
		abbrs[NormalizeKey(word)] = kind == "person"
		return nil
	})
	return abbrs, err
}

// substantive kinds in substantives.txt.
type substantive uint8

const (
	substAdjective substantive = iota + 1 // adjective used as a noun: заведующий
	substFeminine                         // feminine noun with an ambiguous ending: мать
)

// loadSubstantives reads "word:adjective" and "word:feminine" lines.
func loadSubstantives(fsys fs.FS) (map[string]substantive, error) {
	words := make(map[string]substantive)
	err := readLines(fsys, substantivesFile, func(line string) error {
		word, kind, _ := strings.Cut(line, ":")
		switch kind {
		case "adjective":
			words[NormalizeKey(word)] = substAdjective
		case "feminine":
			words[NormalizeKey(word)] = substFeminine
		default:
			return fmt.Errorf("unknown substantive kind %q", kind)
		}
		return nil
	})
	return words, err
}
