package padezh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("spacing", func(t *testing.T) {
		s := "  a  b\tc "
		p := Tokenize(s)
		require.Len(t, p.Tokens, 3)
		assert.Equal(t, "  ", p.Leading)
		assert.Equal(t, " ", p.Trailing)
		assert.Equal(t, "  ", p.Tokens[0].Sep)
		assert.Equal(t, "\t", p.Tokens[1].Sep)
		assert.Equal(t, "", p.Tokens[2].Sep)
		assert.Equal(t, s, p.String())
	})

	t.Run("stop symbol", func(t *testing.T) {
		p := Tokenize(`ООО «Ромашка и партнёры»`)
		require.Len(t, p.Tokens, 2)
		assert.Equal(t, "ООО", p.Tokens[0].Text)
		assert.False(t, p.Tokens[0].Indeclinable)
		assert.Equal(t, "«Ромашка и партнёры»", p.Tokens[1].Text)
		assert.True(t, p.Tokens[1].Indeclinable)
	})

	t.Run("stop symbol inside word", func(t *testing.T) {
		p := Tokenize(`кафе"Уют"`)
		require.Len(t, p.Tokens, 2)
		assert.Equal(t, "кафе", p.Tokens[0].Text)
		assert.Equal(t, `"Уют"`, p.Tokens[1].Text)
	})

	t.Run("keys", func(t *testing.T) {
		p := Tokenize("Главный БУХГАЛТЕР")
		assert.Equal(t, "главный", p.Tokens[0].Key)
		assert.Equal(t, "бухгалтер", p.Tokens[1].Key)
		assert.True(t, p.mixedCase())
		assert.False(t, Tokenize("ООО ЗАО").mixedCase())
	})

	t.Run("empty", func(t *testing.T) {
		p := Tokenize("   ")
		assert.Empty(t, p.Tokens)
		assert.Equal(t, "   ", p.String())
	})
}

func TestInflectPhrase(t *testing.T) {
	in := newInflector(t)

	tests := []struct {
		phrase string
		c      Case
		a      Attrs
		want   string
	}{
		{"Генеральный директор", Genitive, Attrs{}, "Генерального директора"},
		{"Генеральный директор", Dative, Attrs{}, "Генеральному директору"},
		{"Генеральный директор", Instrumental, Attrs{}, "Генеральным директором"},
		{"Главный бухгалтер", Accusative, Attrs{Animate: Yes}, "Главного бухгалтера"},
		{"Уважаемый Иван Иванович", Dative, Attrs{}, "Уважаемому Ивану Ивановичу"},
		{"Общество с ограниченной ответственностью", Genitive, Attrs{}, "Общества с ограниченной ответственностью"},
		{"ИП Иванов Иван Иванович", Genitive, Attrs{}, "ИП Иванова Ивана Ивановича"},
		{"Заведующий отделом", Genitive, Attrs{}, "Заведующего отделом"},
		{"Новые сотрудники", Dative, Attrs{}, "Новым сотрудникам"},
		{"Директор исполнительный", Genitive, Attrs{}, "Директора исполнительного"},
		{"Директор департамента", Genitive, Attrs{}, "Директора департамента"},
		{"  Генеральный   директор ", Genitive, Attrs{}, "  Генерального   директора "},
		{"Горячий кофе", Genitive, Attrs{}, "Горячего кофе"},
		{"Новый стол", Genitive, Attrs{}, "Нового стола"},
		{"Новый стол", Nominative, Attrs{}, "Новый стол"},
		{"ООО «Ромашка»", Genitive, Attrs{}, "ООО «Ромашка»"},
		{"Дежурный по станции", Genitive, Attrs{Animate: Yes}, "Дежурного по станции"},
		{"Дежурный по станции", Dative, Attrs{Animate: Yes}, "Дежурному по станции"},
		{"Дежурный по станции", Instrumental, Attrs{Animate: Yes}, "Дежурным по станции"},
		{"Заведующий по хозяйству", Genitive, Attrs{Animate: Yes}, "Заведующего по хозяйству"},
		{"Дежурная по этажу", Genitive, Attrs{Animate: Yes}, "Дежурной по этажу"},
		{"Анна-Мария Петрова", Genitive, Attrs{}, "Анны-Марии Петровой"},
	}
	for _, tt := range tests {
		t.Run(tt.phrase+"/"+tt.c.String(), func(t *testing.T) {
			got, err := in.InflectPhrase(tt.phrase, tt.c, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := in.InflectPhrase(" ", Genitive, Attrs{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = in.InflectPhrase("стол", Case(7), Attrs{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAnalyze(t *testing.T) {
	in := newInflector(t)

	t.Run("dictionary subject", func(t *testing.T) {
		p := in.Analyze("Главная сестра", Attrs{})
		assert.Equal(t, Female, p.Attrs.Gender)
		assert.Equal(t, Yes, p.Attrs.Animate)
		assert.Equal(t, No, p.Attrs.Plural)
		assert.Equal(t, POSAdjective, p.Tokens[0].Attrs.PartOfSpeech)
		assert.NotNil(t, p.Tokens[1].Record)
	})

	t.Run("name", func(t *testing.T) {
		p := in.Analyze("Иванова Анна Сергеевна", Attrs{})
		assert.Equal(t, Female, p.Attrs.Gender)
		assert.Equal(t, []WordType{FamilyName, FirstName, PatronymicName},
			[]WordType{p.Tokens[0].WordType, p.Tokens[1].WordType, p.Tokens[2].WordType})
	})

	t.Run("adjective before preposition", func(t *testing.T) {
		p := in.Analyze("Дежурная по этажу", Attrs{Animate: Yes})
		assert.Equal(t, Female, p.Attrs.Gender)
		assert.Equal(t, POSAdjective, p.Tokens[0].Attrs.PartOfSpeech)
		assert.True(t, p.Tokens[1].Indeclinable)
		assert.True(t, p.Tokens[2].Indeclinable)
	})

	t.Run("hyphenated first name", func(t *testing.T) {
		p := in.Analyze("Анна-Мария Петрова", Attrs{})
		require.Len(t, p.Tokens, 2)
		assert.Equal(t, Female, p.Attrs.Gender)
		assert.Equal(t, []WordType{FirstName, FamilyName},
			[]WordType{p.Tokens[0].WordType, p.Tokens[1].WordType})
	})

	t.Run("hyphen compound", func(t *testing.T) {
		p := in.Analyze("сестра-анестезист", Attrs{Animate: Yes})
		require.Len(t, p.Tokens, 2)
		assert.Equal(t, "сестра", p.Tokens[0].Text)
		assert.Equal(t, "-", p.Tokens[0].Sep)
		assert.Equal(t, Female, p.Attrs.Gender)
		assert.Equal(t, Male, p.Tokens[1].Attrs.Gender)
	})

	t.Run("nothing declines", func(t *testing.T) {
		p := in.Analyze("Hello world", Attrs{})
		for _, tok := range p.Tokens {
			assert.True(t, tok.Indeclinable)
		}
	})

	t.Run("caller gender wins", func(t *testing.T) {
		p := in.Analyze("стол", Attrs{Gender: Female})
		assert.Equal(t, Female, p.Attrs.Gender)
	})
}

func TestAdjectiveGender(t *testing.T) {
	tests := []struct {
		key    string
		g      Gender
		plural Ternary
		ok     bool
	}{
		{"новый", Male, No, true},
		{"синий", Male, No, true},
		{"большой", Male, No, true},
		{"новая", Female, No, true},
		{"синяя", Female, No, true},
		{"новое", Neuter, No, true},
		{"новые", GenderUnset, Yes, true},
		{"русские", GenderUnset, Yes, true},
		{"санаторий", GenderUnset, Unset, false},
		{"здание", GenderUnset, Unset, false},
		{"стол", GenderUnset, Unset, false},
		{"ой", GenderUnset, Unset, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			g, plural, ok := adjectiveGender(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.g, g)
			assert.Equal(t, tt.plural, plural)
		})
	}
}
