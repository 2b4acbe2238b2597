package polish

import "strings"

// Year spells a year in the genitive, as in "dwa tysiące dwudziestego
// drugiego" (roku). The year is split into millennium, century and the last two
// digits; a part with no word is left out. Year never fails: zero, negative
// years and years from 10000 up lose the parts the tables cannot express,
// so Year(0) is "" and Year(12000) is "".
func Year(y int) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{
		segment(millennia, y/1000),
		segment(centuries, (y%1000)/100),
		segment(yearOrdinals, y%100),
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// YearStrict is Year with validation: years outside 1–9999 return an
// *Error of KindOutOfRange instead of a truncated phrase.
func YearStrict(y int) (string, error) {
	if y <= 0 || y >= 10000 {
		return "", outOfRange()
	}
	return Year(y), nil
}

func segment(t table, v int) string {
	if v <= 0 {
		return ""
	}
	w, _ := t.spell(v)
	return w
}
