package padezh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflectNameOfProfession(t *testing.T) {
	in := newInflector(t)

	tests := []struct {
		phrase string
		c      Case
		want   string
	}{
		{"Термист по обработке слюды", Genitive, "Термиста по обработке слюды"},
		{"Термист по обработке слюды", Dative, "Термисту по обработке слюды"},
		{"Главный бухгалтер", Accusative, "Главного бухгалтера"},
		{"сестра-анестезист", Genitive, "сестры-анестезиста"},
	}
	for _, tt := range tests {
		t.Run(tt.phrase+"/"+tt.c.String(), func(t *testing.T) {
			got, err := in.InflectNameOfProfession(tt.phrase, tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInflectNameOfProfession_PrepositionalTail(t *testing.T) {
	in := newInflector(t)

	tests := []struct {
		phrase string
		head   string
		tail   string
	}{
		{"Термист по обработке слюды", "Термист", " по обработке слюды"},
		{"Дежурный по станции", "Дежурный", " по станции"},
		{"Заведующая по учебной работе", "Заведующая", " по учебной работе"},
	}
	for _, tt := range tests {
		for c := Genitive; c < CaseCount; c++ {
			t.Run(tt.phrase+"/"+c.String(), func(t *testing.T) {
				got, err := in.InflectNameOfProfession(tt.phrase, c)
				require.NoError(t, err)
				head, ok := strings.CutSuffix(got, tt.tail)
				require.True(t, ok, "tail changed: %q", got)
				assert.NotEqual(t, tt.head, head)
				assert.NotContains(t, head, " ")
			})
		}
	}
}

func TestInflectNameOfOrganization(t *testing.T) {
	in := newInflector(t)

	got, err := in.InflectNameOfOrganization("ООО «Ромашка»", Genitive)
	require.NoError(t, err)
	assert.Equal(t, "ООО «Ромашка»", got)

	got, err = in.InflectNameOfOrganization("Общество с ограниченной ответственностью", Genitive)
	require.NoError(t, err)
	assert.Equal(t, "Общества с ограниченной ответственностью", got)
}

func TestInflectAny(t *testing.T) {
	in := newInflector(t)

	got, err := in.InflectAny("Иванов Иван", Dative)
	require.NoError(t, err)
	assert.Equal(t, "Иванову Ивану", got)

	got, err = in.InflectAny("Новый стол", Genitive)
	require.NoError(t, err)
	assert.Equal(t, "Нового стола", got)
}

func TestParadigm(t *testing.T) {
	in := newInflector(t)

	forms, err := in.Paradigm("Генеральный директор")
	require.NoError(t, err)
	assert.Equal(t, [CaseCount]string{
		"Генеральный директор",
		"Генерального директора",
		"Генеральному директору",
		"Генерального директора",
		"Генеральным директором",
		"Генеральном директоре",
	}, forms)

	_, err = in.Paradigm("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCache(t *testing.T) {
	in := newInflector(t, WithCacheSize(8))
	require.NotNil(t, in.cache)

	for range 2 {
		got, err := in.InflectPhrase("Новый стол", Genitive, Attrs{})
		require.NoError(t, err)
		assert.Equal(t, "Нового стола", got)
	}
	assert.Equal(t, 1, in.cache.Len())

	// Nominative bypasses the cache.
	_, err := in.InflectPhrase("Новый стол", Nominative, Attrs{})
	require.NoError(t, err)
	assert.Equal(t, 1, in.cache.Len())

	off := newInflector(t, WithCacheSize(0))
	assert.Nil(t, off.cache)
}

func TestDefault(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.NotNil(t, a.Rules().Table(Generic))
}

func TestWithDictionary(t *testing.T) {
	d := NewMemoryDictionary([]*Record{{
		Gender: Male, Singular: "стол", Plural: "столы",
		SingularForms: [modCount]string{"столика", "столику", "столик", "столиком", "столике"},
		PluralForms:   [modCount]string{"столиков", "столикам", "столики", "столиками", "столиках"},
	}})
	in := newInflector(t, WithDictionary(d))

	got, err := in.Inflect("стол", Generic, Genitive, Attrs{})
	require.NoError(t, err)
	assert.Equal(t, "столика", got)

	// The bundled dictionary is not loaded.
	got, err = in.Inflect("человек", Generic, Genitive, Attrs{Plural: Yes})
	require.NoError(t, err)
	assert.NotEqual(t, "людей", got)
}
