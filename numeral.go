package padezh

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an arbitrary-precision decimal number kept as its digit
// strings, so the scale the caller wrote ("0.50") is preserved.
type Decimal struct {
	neg  bool
	intg string // integer digits without leading zeros; "" for zero
	frac string // fractional digits as written
}

// ParseDecimal parses an optionally signed decimal number. Both "." and ","
// separate the fraction; spaces and underscores between digit groups are
// ignored.
func ParseDecimal(s string) (Decimal, error) {
	var d Decimal
	t := strings.TrimSpace(s)
	t = strings.NewReplacer(" ", "", "_", "", " ", "").Replace(t)
	switch {
	case strings.HasPrefix(t, "-"):
		d.neg = true
		t = t[1:]
	case strings.HasPrefix(t, "+"):
		t = t[1:]
	}
	intg, frac, hasFrac := strings.Cut(strings.Replace(t, ",", ".", 1), ".")
	if intg == "" && frac == "" || hasFrac && frac == "" {
		return Decimal{}, fmt.Errorf("%w: malformed number %q", ErrInvalidArgument, s)
	}
	for _, part := range []string{intg, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return Decimal{}, fmt.Errorf("%w: malformed number %q", ErrInvalidArgument, s)
			}
		}
	}
	d.intg = strings.TrimLeft(intg, "0")
	d.frac = frac
	return d, nil
}

// MustParseDecimal is ParseDecimal for constants; it panics on error.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimal returns the integer n as a Decimal.
func NewDecimal(n int64) Decimal {
	return DecimalFromBig(big.NewInt(n))
}

// DecimalFromBig returns the integer n as a Decimal.
func DecimalFromBig(n *big.Int) Decimal {
	s := n.String()
	d := Decimal{}
	if strings.HasPrefix(s, "-") {
		d.neg = true
		s = s[1:]
	}
	d.intg = strings.TrimLeft(s, "0")
	return d
}

// IsZero reports whether d equals zero.
func (d Decimal) IsZero() bool {
	return d.intg == "" && strings.Trim(d.frac, "0") == ""
}

func (d Decimal) String() string {
	var b strings.Builder
	if d.neg && !d.IsZero() {
		b.WriteByte('-')
	}
	if d.intg == "" {
		b.WriteByte('0')
	}
	b.WriteString(d.intg)
	if d.frac != "" {
		b.WriteByte('.')
		b.WriteString(d.frac)
	}
	return b.String()
}

// Cardinal number words.
var (
	unitWords     = [10]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	unitWordsFem  = [10]string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teenWords     = [10]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	tenWords      = [10]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundredWords  = [10]string{"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"}
	zeroWord      = "ноль"
	minusWord     = "минус"
	wholeSingular = "целая"
	wholePlural   = "целых"
)

// magnitude is a short-scale word in its three counting forms.
type magnitude struct {
	one, few, many string
	// ordinal is the stem of the ordinal adjective: "тысячн", "миллионн".
	ordinal string
}

func illion(stem string) magnitude {
	return magnitude{one: stem, few: stem + "а", many: stem + "ов", ordinal: stem + "н"}
}

// magnitudes[k] names 1000^(k+1).
var magnitudes = [...]magnitude{
	{one: "тысяча", few: "тысячи", many: "тысяч", ordinal: "тысячн"},
	illion("миллион"),
	illion("миллиард"),
	illion("триллион"),
	illion("квадриллион"),
	illion("квинтиллион"),
	illion("секстиллион"),
	illion("септиллион"),
	illion("октиллион"),
	illion("нониллион"),
	illion("дециллион"),
	illion("ундециллион"),
	illion("дуодециллион"),
	illion("тредециллион"),
	illion("кваттордециллион"),
	illion("квиндециллион"),
	illion("седециллион"),
	illion("септендециллион"),
	illion("октодециллион"),
	illion("новемдециллион"),
	illion("вигинтиллион"),
}

// MaxTriples is the largest number of base-1000 groups an integer part may
// have.
const MaxTriples = 1 + len(magnitudes)

// MaxFractionDigits is the deepest supported fractional scale.
const MaxFractionDigits = 3*len(magnitudes) + 2

// plural classes of Russian counting.
type countClass uint8

const (
	countOne countClass = iota
	countFew
	countMany
)

// classify returns the counting class of n by its last two digits.
func classify(n int) countClass {
	if t := n % 100; t >= 11 && t <= 14 {
		return countMany
	}
	switch n % 10 {
	case 1:
		return countOne
	case 2, 3, 4:
		return countFew
	}
	return countMany
}

func (m magnitude) form(n int) string {
	switch classify(n) {
	case countOne:
		return m.one
	case countFew:
		return m.few
	}
	return m.many
}

// triples splits a decimal digit string into base-1000 groups, most
// significant first.
func triples(digits string) []int {
	if digits == "" {
		return nil
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var out []int
	for i, j := 0, head; i < len(digits); i, j = j, j+3 {
		n, _ := strconv.Atoi(digits[i:j])
		out = append(out, n)
	}
	return out
}

// tripleWords spells 1..999. feminine selects "одна"/"две".
func tripleWords(n int, feminine bool) []string {
	var w []string
	h, t, u := n/100, n/10%10, n%10
	if h > 0 {
		w = append(w, hundredWords[h])
	}
	switch {
	case t == 1:
		w = append(w, teenWords[u])
		return w
	case t > 1:
		w = append(w, tenWords[t])
	}
	if u > 0 {
		if feminine {
			w = append(w, unitWordsFem[u])
		} else {
			w = append(w, unitWords[u])
		}
	}
	return w
}

// integerWords spells base-1000 groups whose last group has rank lowRank
// (0 for units, 1 for thousands...). Units agree with тысяча, which is
// feminine; lowFeminine sets the gender of a rank-0 group.
func integerWords(groups []int, lowRank int, lowFeminine bool) []string {
	var w []string
	for i, n := range groups {
		if n == 0 {
			continue
		}
		rank := lowRank + len(groups) - 1 - i
		if rank == 0 {
			w = append(w, tripleWords(n, lowFeminine)...)
			continue
		}
		w = append(w, tripleWords(n, rank == 1)...)
		w = append(w, magnitudes[rank-1].form(n))
	}
	return w
}

// fractionWord names the denominator of a fraction with the given number
// of digits: десят-, сот-, тысячн-, десятитысячн-, стотысячн-, миллионн-...
func fractionWord(digits int, singular bool) string {
	rank, rem := digits/3, digits%3
	var stem string
	if rank == 0 {
		stem = [3]string{"", "десят", "сот"}[rem]
	} else {
		stem = [3]string{"", "десяти", "сто"}[rem] + magnitudes[rank-1].ordinal
	}
	if singular {
		return stem + "ая"
	}
	return stem + "ых"
}

// Speller spells decimal numbers as Russian cardinal words.
type Speller struct {
	// TrimFraction truncates fractions deeper than MaxFractionDigits when
	// the number has an integer part, instead of failing.
	TrimFraction bool
}

var defaultSpeller = Speller{TrimFraction: true}

// Spell spells d with fraction trimming enabled.
func Spell(d Decimal) (string, error) { return defaultSpeller.Spell(d) }

// Spell returns the cardinal words of d: "минус сорок два",
// "одна целая двадцать пять сотых".
func (s Speller) Spell(d Decimal) (string, error) {
	// The written scale is kept: "0.50" is fifty hundredths.
	frac := d.frac
	if strings.Trim(frac, "0") == "" {
		frac = ""
	}

	groups := triples(d.intg)
	if len(groups) > MaxTriples {
		return "", fmt.Errorf("%w: %d digit groups, at most %d supported", ErrNumberTooBig, len(groups), MaxTriples)
	}
	if len(frac) > MaxFractionDigits {
		if d.intg == "" || !s.TrimFraction {
			return "", fmt.Errorf("%w: %d fractional digits, at most %d supported", ErrNumberTooSmall, len(frac), MaxFractionDigits)
		}
		frac = frac[:MaxFractionDigits]
		if strings.Trim(frac, "0") == "" {
			frac = ""
		}
	}

	if d.intg == "" && frac == "" {
		return zeroWord, nil
	}

	var w []string
	if d.neg {
		w = append(w, minusWord)
	}
	if frac == "" {
		w = append(w, integerWords(groups, 0, false)...)
		return strings.Join(w, " "), nil
	}

	if d.intg == "" {
		w = append(w, zeroWord, wholePlural)
	} else {
		// The integer part is read as a count of feminine "целая": its last
		// group picks одна/две and целая/целых, whatever the fraction is.
		w = append(w, integerWords(groups, 0, true)...)
		if classify(groups[len(groups)-1]) == countOne {
			w = append(w, wholeSingular)
		} else {
			w = append(w, wholePlural)
		}
	}

	fgroups := triples(strings.TrimLeft(frac, "0"))
	w = append(w, integerWords(fgroups, 0, true)...)
	last := fgroups[len(fgroups)-1]
	w = append(w, fractionWord(len(frac), classify(last) == countOne))
	return strings.Join(w, " "), nil
}
