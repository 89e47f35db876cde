package padezh

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpellOrdinal(t *testing.T) {
	tests := []struct {
		n    int64
		g    Gender
		want string
	}{
		{0, Female, "нулевая"},
		{0, Male, "нулевой"},
		{0, Neuter, "нулевое"},
		{1, Male, "первый"},
		{3, Female, "третья"},
		{40, Male, "сороковой"},
		{100, Male, "сотый"},
		{300, Male, "трёхсотый"},
		{1000, Male, "тысячный"},
		{21, Female, "двадцать первая"},
		{115, Neuter, "сто пятнадцатое"},
		{42000, Male, "сорокадвухтысячный"},
		{2000000, Male, "двухмиллионный"},
		{1000000000, Female, "миллиардная"},
		{2000001002, Male, "два миллиарда одна тысяча второй"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := SpellOrdinal(big.NewInt(tt.n), tt.g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpellOrdinal_Errors(t *testing.T) {
	_, err := SpellOrdinal(big.NewInt(-1), Male)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SpellOrdinal(nil, Male)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	huge, ok := new(big.Int).SetString("1"+strings.Repeat("0", 66), 10)
	require.True(t, ok)
	_, err = SpellOrdinal(huge, Male)
	assert.ErrorIs(t, err, ErrNumberTooBig)
}
