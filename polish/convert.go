// Package polish spells the numeric parts of a timestamp as Polish words in
// the grammatical case each part takes in a spoken date:
//
//	day     genitive   "pierwszego"
//	month   genitive   "stycznia"
//	year    genitive   "dwa tysiące dwudziestego"
//	hour    locative   "o pierwszej"
//	minute  nominative "dwadzieścia trzy"
//	second  nominative "czterdzieści pięć sekund"
//
// Every function is pure and safe for concurrent use.
package polish

// Unit selects the literal table, valid range and zero rule used by Convert.
type Unit uint8

const (
	// UnitSecond is a bare nominative numeral, 0–59; zero spells as "".
	UnitSecond Unit = iota + 1
	// UnitMinute is a bare nominative numeral, 0–59; zero spells as "".
	UnitMinute
	// UnitSecondCount is a nominative numeral followed by the form of "sekunda"
	// that agrees with its last word.
	UnitSecondCount
	// UnitMinuteCount is a nominative numeral followed by the agreeing form of "minuta".
	UnitMinuteCount
	// UnitHour is a locative ordinal; inputs of 24 and above wrap around the clock.
	UnitHour
	// UnitDay is a genitive ordinal, 1–31.
	UnitDay
	// UnitMonth is a genitive month name, 1–12.
	UnitMonth
)

func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitSecondCount:
		return "second-count"
	case UnitMinuteCount:
		return "minute-count"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	default:
		return "unknown"
	}
}

// Units lists every unit Convert accepts, in sentence order.
var Units = []Unit{UnitDay, UnitMonth, UnitHour, UnitMinute, UnitSecond, UnitSecondCount, UnitMinuteCount}

// ParseUnit maps a unit name as printed by Unit.String back to the Unit.
func ParseUnit(s string) (Unit, bool) {
	for _, u := range Units {
		if u.String() == s {
			return u, true
		}
	}
	return 0, false
}

type converter struct {
	min, max int
	// wrap, when non-zero, folds non-negative inputs into [0, wrap) before lookup.
	wrap  int
	words table
	noun  *nounForms
}

var converters = map[Unit]converter{
	UnitSecond:      {min: 0, max: 59, words: cardinals},
	UnitMinute:      {min: 0, max: 59, words: cardinals},
	UnitSecondCount: {min: 0, max: 59, words: cardinals, noun: &secondNouns},
	UnitMinuteCount: {min: 0, max: 59, words: cardinals, noun: &minuteNouns},
	UnitHour:        {min: 0, max: 23, wrap: 24, words: hoursLocative},
	UnitDay:         {min: 1, max: 31, words: daysGenitive},
	UnitMonth:       {min: 1, max: 12, words: monthsGenitive},
}

// Convert spells v for the given unit. Values outside the unit's range
// return an *Error of KindOutOfRange.
func Convert(u Unit, v int) (string, error) {
	c, ok := converters[u]
	if !ok {
		return "", outOfRange()
	}
	if c.wrap > 0 && v >= 0 {
		v %= c.wrap
	}
	if v < c.min || v > c.max {
		return "", outOfRange()
	}
	w, ok := c.words.spell(v)
	if !ok {
		return "", outOfRange()
	}
	if c.noun != nil && w != "" {
		w += " " + c.noun.agree(c.words.leaf(v))
	}
	return w, nil
}

// SecondsOrMinutes spells a second or minute value as a bare nominative numeral.
// Zero spells as "".
func SecondsOrMinutes(v int) (string, error) { return Convert(UnitSecond, v) }

// Seconds is SecondsOrMinutes for the seconds slot.
func Seconds(v int) (string, error) { return Convert(UnitSecond, v) }

// Minutes is SecondsOrMinutes for the minutes slot.
func Minutes(v int) (string, error) { return Convert(UnitMinute, v) }

// SecondsCounted spells a second value together with the noun, which agrees
// with the last numeral: "jeden sekunda", "dwadzieścia jeden sekunda",
// "dwa sekundy", "pięć sekund". Zero spells as "".
func SecondsCounted(v int) (string, error) { return Convert(UnitSecondCount, v) }

// MinutesCounted is SecondsCounted for minutes ("minuta", "minuty", "minut").
func MinutesCounted(v int) (string, error) { return Convert(UnitMinuteCount, v) }

// Hours spells an hour in the locative case. 0 is "północy" and values of
// 24 or more are taken modulo 24.
func Hours(v int) (string, error) { return Convert(UnitHour, v) }

// Day spells a day of the month in the genitive case.
func Day(v int) (string, error) { return Convert(UnitDay, v) }

// Month returns the genitive name of a month, 1 being January.
func Month(v int) (string, error) { return Convert(UnitMonth, v) }
