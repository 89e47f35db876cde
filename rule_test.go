package padezh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(g Gender, mods [modCount]string, test ...string) *Rule {
	return &Rule{Gender: g, Test: test, Mods: mods}
}

var keepMods = [modCount]string{".", ".", ".", ".", "."}

func TestApplyMod(t *testing.T) {
	tests := []struct {
		mod, word, want string
	}{
		{".", "стол", "стол"},
		{"а", "стол", "стола"},
		{"-ы", "сестра", "сестры"},
		{"--ого", "новый", "нового"},
		{"-", "тысячи", "тысяч"},
		{"-----", "кот", ""},
	}
	for _, tt := range tests {
		t.Run(tt.mod+" "+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, applyMod(tt.mod, tt.word))
		})
	}
}

func TestRule_Apply(t *testing.T) {
	r := rule(Male, [modCount]string{"а", "у", ".", "ом", "е"}, "л")
	assert.Equal(t, "стол", r.Apply(Nominative, "стол"))
	assert.Equal(t, "стола", r.Apply(Genitive, "стол"))
	assert.Equal(t, "столу", r.Apply(Dative, "стол"))
	assert.Equal(t, "стол", r.Apply(Accusative, "стол"))
	assert.Equal(t, "столом", r.Apply(Instrumental, "стол"))
	assert.Equal(t, "столе", r.Apply(Prepositional, "стол"))
}

func TestRuleTable_Find(t *testing.T) {
	maleExc := rule(Male, keepMods, "ов")
	anyExc := rule(Neuter, keepMods, "ов")
	maleSuf := rule(Male, [modCount]string{"а", "у", "а", "ым", "е"}, "ов")
	femaleSuf := rule(Female, keepMods, "в")
	catchAll := rule(Neuter, keepMods, "в", "л")

	t.Run("no match", func(t *testing.T) {
		tbl := &RuleTable{Suffixes: []*Rule{maleSuf}}
		r, err := tbl.Find("smith", Attrs{})
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("nil table", func(t *testing.T) {
		var tbl *RuleTable
		r, err := tbl.Find("стол", Attrs{})
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("exact exception wins", func(t *testing.T) {
		tbl := &RuleTable{Exceptions: []*Rule{maleExc}, Suffixes: []*Rule{maleSuf}}
		r, err := tbl.Find("иванов", Attrs{Gender: Male})
		require.NoError(t, err)
		assert.Same(t, maleExc, r)
	})

	t.Run("exact suffix beats wildcard exception", func(t *testing.T) {
		tbl := &RuleTable{Exceptions: []*Rule{anyExc}, Suffixes: []*Rule{maleSuf}}
		r, err := tbl.Find("иванов", Attrs{Gender: Male})
		require.NoError(t, err)
		assert.Same(t, maleSuf, r)
	})

	t.Run("wildcard exception beats wildcard suffix", func(t *testing.T) {
		tbl := &RuleTable{Exceptions: []*Rule{anyExc}, Suffixes: []*Rule{catchAll}}
		r, err := tbl.Find("иванов", Attrs{Gender: Female})
		require.NoError(t, err)
		assert.Same(t, anyExc, r)
	})

	t.Run("gender filter", func(t *testing.T) {
		tbl := &RuleTable{Suffixes: []*Rule{femaleSuf, maleSuf, catchAll}}
		r, err := tbl.Find("иванов", Attrs{Gender: Male})
		require.NoError(t, err)
		assert.Same(t, maleSuf, r)

		r, err = tbl.Find("иванов", Attrs{Gender: Female})
		require.NoError(t, err)
		assert.Same(t, femaleSuf, r)
	})

	t.Run("unset gender is male", func(t *testing.T) {
		tbl := &RuleTable{Suffixes: []*Rule{femaleSuf, maleSuf}}
		r, err := tbl.Find("иванов", Attrs{})
		require.NoError(t, err)
		assert.Same(t, maleSuf, r)
	})

	t.Run("gender filter empties the set", func(t *testing.T) {
		tbl := &RuleTable{Suffixes: []*Rule{maleSuf, rule(Male, keepMods, "в")}}
		_, err := tbl.Find("иванов", Attrs{Gender: Female})
		assert.ErrorIs(t, err, ErrRuleTable)
	})

	t.Run("single candidate skips the filter", func(t *testing.T) {
		tbl := &RuleTable{Suffixes: []*Rule{maleSuf}}
		r, err := tbl.Find("иванов", Attrs{Gender: Female})
		require.NoError(t, err)
		assert.Same(t, maleSuf, r)
	})
}

func TestRuleTable_FindRanking(t *testing.T) {
	animate := &Rule{Gender: Male, Animate: Yes, PartOfSpeech: POSNoun, Test: []string{"т"}, Mods: keepMods}
	inanimate := &Rule{Gender: Male, Animate: No, PartOfSpeech: POSNoun, Test: []string{"т"}, Mods: keepMods}
	plural := &Rule{Gender: Neuter, Plural: Yes, PartOfSpeech: POSNoun, Test: []string{"т"}, Mods: keepMods}
	adjective := &Rule{Gender: Neuter, PartOfSpeech: POSAdjective, Test: []string{"т"}, Mods: keepMods}
	plain := &Rule{Gender: Neuter, Test: []string{"т"}, Mods: keepMods}
	tbl := &RuleTable{Suffixes: []*Rule{plural, adjective, animate, inanimate, plain}}

	tests := []struct {
		name string
		a    Attrs
		want *Rule
	}{
		{"no attributes takes table order", Attrs{Gender: Male}, plural},
		{"animate", Attrs{Gender: Male, Animate: Yes}, animate},
		{"inanimate", Attrs{Gender: Male, Animate: No}, inanimate},
		{"inanimate noun", Attrs{Gender: Male, Animate: No, PartOfSpeech: POSNoun}, inanimate},
		{"plural", Attrs{Gender: Male, Plural: Yes}, plural},
		{"adjective", Attrs{Gender: Male, PartOfSpeech: POSAdjective}, adjective},
		{"singular falls back to first compatible", Attrs{Gender: Male, Plural: No}, adjective},
		{"singular noun", Attrs{Gender: Male, Plural: No, PartOfSpeech: POSNoun}, animate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tbl.Find("кот", tt.a)
			require.NoError(t, err)
			assert.Same(t, tt.want, r)
		})
	}
}
