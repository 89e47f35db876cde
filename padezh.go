// Package padezh declines Russian words, personal names, free-text phrases
// and numerals into the six grammatical cases, and spells numbers as words.
//
// Rule tables, the noun dictionary and the word lists ship embedded in the
// package; an Inflector loads them once and is safe for concurrent use.
package padezh

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize is the number of phrase results an Inflector keeps.
const DefaultCacheSize = 4096

// Inflector holds the loaded tables and provides the public API.
type Inflector struct {
	// rules maps word type → rule table.
	rules *RuleSet

	// dict resolves generic nouns before rules are tried.
	dict Dictionary

	// firstNames maps first name → gender (unset for unisex names).
	firstNames map[string]Gender

	// prepositions holds non-derivative prepositions.
	prepositions map[string]struct{}

	// abbreviations maps abbreviation → whether it marks a person (ИП).
	abbreviations map[string]bool

	// substantives lists substantivized adjectives and feminine nouns.
	substantives map[string]substantive

	log   *slog.Logger
	cache *lru.Cache[cacheKey, string]
}

// cacheKey identifies one phrase request.
type cacheKey struct {
	text string
	c    Case
	a    Attrs
}

type options struct {
	fsys      fs.FS
	dict      Dictionary
	logger    *slog.Logger
	cacheSize int
}

// Option configures New.
type Option func(*options)

// WithFS loads data files from fsys instead of the embedded copies.
// fsys must have the layout of DataFS.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithDictionary replaces the bundled noun dictionary.
func WithDictionary(d Dictionary) Option {
	return func(o *options) { o.dict = d }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCacheSize sets the phrase result cache size; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// New loads rule tables, dictionary and word lists and returns a ready
// Inflector.
func New(opts ...Option) (*Inflector, error) {
	o := options{fsys: DataFS(), cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	in := &Inflector{log: o.logger}
	if in.log == nil {
		in.log = slog.New(slog.DiscardHandler)
	}

	var (
		g       errgroup.Group
		records []*Record
	)
	g.Go(func() (err error) {
		in.rules, err = loadRules(o.fsys)
		return err
	})
	if o.dict == nil {
		g.Go(func() (err error) {
			records, err = loadDictionary(o.fsys)
			return err
		})
	}
	g.Go(func() (err error) {
		in.firstNames, err = loadFirstNames(o.fsys)
		return err
	})
	g.Go(func() (err error) {
		in.prepositions, err = loadWordSet(o.fsys, prepositionsFile)
		return err
	})
	g.Go(func() (err error) {
		in.abbreviations, err = loadAbbreviations(o.fsys)
		return err
	})
	g.Go(func() (err error) {
		in.substantives, err = loadSubstantives(o.fsys)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if o.dict != nil {
		in.dict = o.dict
	} else {
		in.dict = NewMemoryDictionary(records)
	}
	if o.cacheSize > 0 {
		c, err := lru.New[cacheKey, string](o.cacheSize)
		if err != nil {
			return nil, err
		}
		in.cache = c
	}

	for wt := WordType(0); wt < wordTypeCount; wt++ {
		if t := in.rules.Table(wt); t != nil {
			in.log.Debug("rule table loaded", "type", wt,
				"exceptions", len(t.Exceptions), "suffixes", len(t.Suffixes))
		}
	}
	in.log.Debug("word lists loaded",
		"dictionary", len(records),
		"first_names", len(in.firstNames),
		"prepositions", len(in.prepositions),
		"abbreviations", len(in.abbreviations))
	return in, nil
}

var (
	defaultOnce      sync.Once
	defaultInflector *Inflector
	defaultErr       error
)

// Default returns a shared Inflector built from the embedded data.
// It is created on first use.
func Default() (*Inflector, error) {
	defaultOnce.Do(func() {
		defaultInflector, defaultErr = New()
	})
	return defaultInflector, defaultErr
}

// Rules returns the loaded rule tables.
func (in *Inflector) Rules() *RuleSet { return in.rules }

// InflectNameOfProfession declines a job title. Professions name people,
// so the phrase is treated as animate.
func (in *Inflector) InflectNameOfProfession(phrase string, c Case) (string, error) {
	return in.InflectPhrase(phrase, c, Attrs{Animate: Yes})
}

// InflectNameOfOrganization declines an organization name. Quoted legal
// names and abbreviations stay as they are.
func (in *Inflector) InflectNameOfOrganization(phrase string, c Case) (string, error) {
	return in.InflectPhrase(phrase, c, Attrs{})
}

// InflectRegularTerm declines an ordinary noun phrase.
func (in *Inflector) InflectRegularTerm(phrase string, c Case, animate Ternary) (string, error) {
	return in.InflectPhrase(phrase, c, Attrs{Animate: animate})
}

// InflectAny declines phrase as a full name when it looks like one
// (Surname Firstname [Patronymic]) and as a regular term otherwise.
func (in *Inflector) InflectAny(phrase string, c Case) (string, error) {
	if in.looksLikeFullName(phrase) {
		return in.InflectFullname(phrase, c)
	}
	return in.InflectRegularTerm(phrase, c, Unset)
}

// Paradigm returns phrase in all six cases, nominative first.
func (in *Inflector) Paradigm(phrase string) ([CaseCount]string, error) {
	var out [CaseCount]string
	if strings.TrimSpace(phrase) == "" {
		return out, fmt.Errorf("%w: empty phrase", ErrInvalidArgument)
	}
	for c := Nominative; c < CaseCount; c++ {
		s, err := in.InflectAny(phrase, c)
		if err != nil {
			return out, err
		}
		out[c] = s
	}
	return out, nil
}
