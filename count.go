package padezh

import (
	"fmt"
	"math/big"
	"strings"
)

// neuterOne replaces "один" before a neuter unit.
const neuterOne = "одно"

// InflectNumeral spells n and declines it with the counted unit into case
// c: "две копейки", "двадцати одному рублю", "пяти тысячам рублей". unit
// is a nominative singular noun phrase; an empty unit declines the numeral
// alone. The numeral agrees with the gender of the unit.
func (in *Inflector) InflectNumeral(n int64, unit string, c Case) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("%w: case %d", ErrInvalidArgument, c)
	}
	unit = strings.TrimSpace(unit)

	var ua Attrs
	if unit != "" {
		ua = in.Analyze(unit, Attrs{Plural: No}).Attrs
	}
	g := ua.Gender.orMale()

	abs := new(big.Int).Abs(big.NewInt(n))
	groups := triples(abs.String())
	last := groups[len(groups)-1]

	// Animate accusative of 1 (masculine) and 2..4 takes the genitive:
	// "вижу двух котов", but "вижу пять котов".
	nc := c
	if c == Accusative && ua.Animate == Yes && len(groups) == 1 &&
		(last >= 2 && last <= 4 || last == 1 && g == Male) {
		nc = Genitive
	}

	var words []string
	if abs.Sign() == 0 {
		words = []string{zeroWord}
	} else {
		words = integerWords(groups, 0, g == Female)
		if g == Neuter && words[len(words)-1] == unitWords[1] {
			words[len(words)-1] = neuterOne
		}
	}
	if nc != Nominative {
		for i, w := range words {
			s, err := in.inflectWord(w, Numeral, nc, Attrs{Gender: g})
			if err != nil {
				return "", err
			}
			words[i] = s
		}
	}
	if n < 0 {
		words = append([]string{minusWord}, words...)
	}
	out := strings.Join(words, " ")
	if unit == "" {
		return out, nil
	}

	uc, plural := unitCase(nc, last)
	if uc == Nominative && !plural {
		return out + " " + unit, nil
	}
	u, err := in.InflectPhrase(unit, uc, Attrs{Plural: TernaryOf(plural)})
	if err != nil {
		return "", err
	}
	return out + " " + u, nil
}

// unitCase returns the case and number of a unit counted by a numeral
// whose lowest base-1000 group is last. Round numbers (ноль, тысяча,
// миллион) always govern the genitive plural.
func unitCase(c Case, last int) (Case, bool) {
	if last == 0 {
		return Genitive, true
	}
	cls := classify(last)
	if c == Nominative || c == Accusative {
		switch cls {
		case countOne:
			return c, false
		case countFew:
			return Genitive, false
		}
		return Genitive, true
	}
	return c, cls != countOne
}
