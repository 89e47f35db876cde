package padezh

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataCopy returns the embedded data files as a mutable MapFS.
func dataCopy(t *testing.T) fstest.MapFS {
	t.Helper()
	m := fstest.MapFS{}
	err := fs.WalkDir(DataFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(DataFS(), path)
		if err != nil {
			return err
		}
		m[path] = &fstest.MapFile{Data: b}
		return nil
	})
	require.NoError(t, err)
	return m
}

func TestLoadRules_Embedded(t *testing.T) {
	set, err := loadRules(DataFS())
	require.NoError(t, err)

	for wt := WordType(0); wt < wordTypeCount; wt++ {
		t.Run(wt.String(), func(t *testing.T) {
			table := set.Table(wt)
			require.NotNil(t, table)
			require.NotEmpty(t, table.Suffixes)

			// Every table ends with a rule that matches any Cyrillic letter.
			last := table.Suffixes[len(table.Suffixes)-1]
			assert.Equal(t, Neuter, last.Gender)
			assert.Len(t, last.Test, 33)
			for _, r := range append(table.Exceptions, table.Suffixes...) {
				assert.NotEmpty(t, r.Test)
			}
		})
	}
}

func TestLoadRules_NeverAmbiguous(t *testing.T) {
	set, err := loadRules(DataFS())
	require.NoError(t, err)

	samples := map[WordType][]string{
		FirstName:      {"иван", "пётр", "анна", "мария", "игорь", "любовь", "никита", "катрин", "алексей", "илья", "кузьма"},
		PatronymicName: {"иванович", "ивановна", "ильич", "оглы", "кызы"},
		FamilyName:     {"иванов", "иванова", "толстой", "толстая", "шевченко", "черных", "гоголь", "дюма", "берия", "цой"},
		Numeral:        {"один", "две", "пять", "восемь", "сорок", "сто", "восемьсот", "тысяча", "миллион", "миллиардов"},
		Generic:        {"стол", "книга", "окно", "ночь", "словарь", "музей", "здание", "время", "новый", "синяя", "столы", "книги", "кофе"},
	}
	for wt, words := range samples {
		table := set.Table(wt)
		for _, w := range words {
			for _, g := range []Gender{Male, Female} {
				for _, an := range []Ternary{Yes, No} {
					a := Attrs{Gender: g, Animate: an, Plural: No}
					_, err := table.Find(w, a)
					assert.NoError(t, err, "%s %s %+v", wt, w, a)
				}
			}
		}
	}
}

func TestNew_BrokenData(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "mods count",
			file:    rulesFile,
			content: "generic:\n  suffixes:\n    - gender: male\n      test: [а]\n      mods: [а]\n",
			wantErr: "rules.yaml: generic suffixes: rule 1: want 5 mods",
		},
		{
			name:    "missing gender",
			file:    rulesFile,
			content: "generic:\n  suffixes:\n    - test: [а]\n      mods: [., ., ., ., .]\n",
			wantErr: "missing gender",
		},
		{
			name:    "unknown word type",
			file:    rulesFile,
			content: "verb:\n  suffixes: []\n",
			wantErr: "unknown word type",
		},
		{
			name:    "not yaml",
			file:    rulesFile,
			content: "generic: [",
			wantErr: "parse rules.yaml",
		},
		{
			name:    "short dictionary row",
			file:    dictionaryFile,
			content: "m|0|0|стол|стола\n",
			wantErr: "dictionary.csv",
		},
		{
			name:    "dictionary without gender",
			file:    dictionaryFile,
			content: "! comment\n|0|0|стол|стола|столу|стол|столом|столе|столы|столов|столам|столы|столами|столах\n",
			wantErr: "dictionary.csv:2: missing gender",
		},
		{
			name:    "abbreviation kind",
			file:    abbreviationsFile,
			content: "ооо\nип:human\n",
			wantErr: "abbreviations.txt:2: unknown abbreviation kind",
		},
		{
			name:    "substantive kind",
			file:    substantivesFile,
			content: "мать:noun\n",
			wantErr: "substantives.txt:1",
		},
		{
			name:    "first name gender",
			file:    firstNamesFile,
			content: "иван:x\n",
			wantErr: "first_names.txt:1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := dataCopy(t)
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.content)}
			_, err := New(WithFS(fsys))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	fsys := dataCopy(t)
	delete(fsys, prepositionsFile)
	_, err := New(WithFS(fsys))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open prepositions.txt")
}

func TestLoadWordLists(t *testing.T) {
	names, err := loadFirstNames(DataFS())
	require.NoError(t, err)
	assert.Equal(t, Male, names["иван"])
	assert.Equal(t, Female, names["анна"])
	g, ok := names["саша"]
	assert.True(t, ok)
	assert.Equal(t, GenderUnset, g)

	abbrs, err := loadAbbreviations(DataFS())
	require.NoError(t, err)
	assert.True(t, abbrs["ип"])
	person, ok := abbrs["ооо"]
	assert.True(t, ok)
	assert.False(t, person)

	subst, err := loadSubstantives(DataFS())
	require.NoError(t, err)
	assert.Equal(t, substAdjective, subst["заведующий"])
	assert.Equal(t, substFeminine, subst["мать"])

	records, err := loadDictionary(DataFS())
	require.NoError(t, err)
	d := NewMemoryDictionary(records)
	hit, ok := d.Lookup("директор", Attrs{})
	require.True(t, ok)
	assert.Equal(t, "директору", hit.Record.Form(Dative, false))
	hit, ok = d.Lookup("кофе", Attrs{})
	require.True(t, ok)
	assert.True(t, hit.Record.Indeclinable)
}
