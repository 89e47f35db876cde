package padezh

import (
	"fmt"
	"math/big"
	"strings"
)

// ordinal is an ordinal adjective stem with its ending class.
type ordinal struct {
	stem  string
	class ordinalClass
}

type ordinalClass uint8

const (
	hardStressless ordinalClass = iota // первый, первая, первое
	hardStressed                       // второй, вторая, второе
	soft                               // третий, третья, третье
)

var ordinalEndings = [...][3]string{
	hardStressless: {"ый", "ая", "ое"},
	hardStressed:   {"ой", "ая", "ое"},
	soft:           {"ий", "ья", "ье"},
}

// word returns the ordinal in gender g; unset and neuter map as expected,
// Male is the default.
func (o ordinal) word(g Gender) string {
	e := ordinalEndings[o.class]
	switch g {
	case Female:
		return o.stem + e[1]
	case Neuter:
		return o.stem + e[2]
	}
	return o.stem + e[0]
}

var (
	zeroOrdinal = ordinal{"нулев", hardStressed}

	unitOrdinals = [10]ordinal{
		{}, {"перв", hardStressless}, {"втор", hardStressed}, {"трет", soft},
		{"четвёрт", hardStressless}, {"пят", hardStressless}, {"шест", hardStressed},
		{"седьм", hardStressed}, {"восьм", hardStressed}, {"девят", hardStressless},
	}
	teenOrdinals = [10]ordinal{
		{"десят", hardStressless}, {"одиннадцат", hardStressless}, {"двенадцат", hardStressless},
		{"тринадцат", hardStressless}, {"четырнадцат", hardStressless}, {"пятнадцат", hardStressless},
		{"шестнадцат", hardStressless}, {"семнадцат", hardStressless}, {"восемнадцат", hardStressless},
		{"девятнадцат", hardStressless},
	}
	tenOrdinals = [10]ordinal{
		{}, {}, {"двадцат", hardStressless}, {"тридцат", hardStressless}, {"сороков", hardStressed},
		{"пятидесят", hardStressless}, {"шестидесят", hardStressless}, {"семидесят", hardStressless},
		{"восьмидесят", hardStressless}, {"девяност", hardStressless},
	}
	hundredOrdinals = [10]ordinal{
		{}, {"сот", hardStressless}, {"двухсот", hardStressless}, {"трёхсот", hardStressless},
		{"четырёхсот", hardStressless}, {"пятисот", hardStressless}, {"шестисот", hardStressless},
		{"семисот", hardStressless}, {"восьмисот", hardStressless}, {"девятисот", hardStressless},
	}
)

// Genitive stems that fuse with a magnitude into one word:
// двухтысячный, сорокадвухтысячный, стамиллионный.
var (
	unitPrefixes    = [10]string{"", "одно", "двух", "трёх", "четырёх", "пяти", "шести", "семи", "восьми", "девяти"}
	teenPrefixes    = [10]string{"десяти", "одиннадцати", "двенадцати", "тринадцати", "четырнадцати", "пятнадцати", "шестнадцати", "семнадцати", "восемнадцати", "девятнадцати"}
	tenPrefixes     = [10]string{"", "", "двадцати", "тридцати", "сорока", "пятидесяти", "шестидесяти", "семидесяти", "восьмидесяти", "девяноста"}
	hundredPrefixes = [10]string{"", "сто", "двухсот", "трёхсот", "четырёхсот", "пятисот", "шестисот", "семисот", "восьмисот", "девятисот"}
)

// SpellOrdinal returns the ordinal words of n agreeing with g in the
// nominative: "сорокадвухтысячный", "два миллиарда одна тысяча второй".
// Only the last word is ordinal.
func SpellOrdinal(n *big.Int, g Gender) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", fmt.Errorf("%w: ordinal of a negative number", ErrInvalidArgument)
	}
	if n.Sign() == 0 {
		return zeroOrdinal.word(g), nil
	}

	groups := triples(n.String())
	if len(groups) > MaxTriples {
		return "", fmt.Errorf("%w: %d digit groups, at most %d supported", ErrNumberTooBig, len(groups), MaxTriples)
	}

	low := len(groups) - 1
	for groups[low] == 0 {
		low--
	}
	rank := len(groups) - 1 - low

	w := integerWords(groups[:low], rank+1, false)
	if rank == 0 {
		w = append(w, tripleOrdinal(groups[low], g)...)
	} else {
		w = append(w, fusedPrefix(groups[low])+ordinal{magnitudes[rank-1].ordinal, hardStressless}.word(g))
	}
	return strings.Join(w, " "), nil
}

// tripleOrdinal spells 1..999 with only its last nonzero part ordinal.
func tripleOrdinal(n int, g Gender) []string {
	h, t, u := n/100, n/10%10, n%10
	var w []string
	switch {
	case t == 1:
		if h > 0 {
			w = append(w, hundredWords[h])
		}
		return append(w, teenOrdinals[u].word(g))
	case u > 0:
		if h > 0 {
			w = append(w, hundredWords[h])
		}
		if t > 1 {
			w = append(w, tenWords[t])
		}
		return append(w, unitOrdinals[u].word(g))
	case t > 1:
		if h > 0 {
			w = append(w, hundredWords[h])
		}
		return append(w, tenOrdinals[t].word(g))
	}
	return append(w, hundredOrdinals[h].word(g))
}

// fusedPrefix returns the genitive stem of 1..999 that precedes a fused
// magnitude ordinal. A bare 1 has none: тысячный, миллионный.
func fusedPrefix(n int) string {
	if n == 1 {
		return ""
	}
	h, t, u := n/100, n/10%10, n%10
	var b strings.Builder
	b.WriteString(hundredPrefixes[h])
	if t == 1 {
		b.WriteString(teenPrefixes[u])
		return b.String()
	}
	b.WriteString(tenPrefixes[t])
	b.WriteString(unitPrefixes[u])
	return b.String()
}
