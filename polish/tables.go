package polish

// literal pairs a value with its word. Tables are sorted by value; a value
// missing from a table is spelled as the nearest round decade below it plus
// the remainder.
type literal struct {
	value int
	word  string
}

type table []literal

// cardinals are bare nominative numerals for seconds and minutes. Zero maps
// to the empty word, which callers treat as "omit".
var cardinals = table{
	{0, ""},
	{1, "jeden"},
	{2, "dwa"},
	{3, "trzy"},
	{4, "cztery"},
	{5, "pięć"},
	{6, "sześć"},
	{7, "siedem"},
	{8, "osiem"},
	{9, "dziewięć"},
	{10, "dziesięć"},
	{11, "jedenaście"},
	{12, "dwanaście"},
	{13, "trzynaście"},
	{14, "czternaście"},
	{15, "piętnaście"},
	{16, "szesnaście"},
	{17, "siedemnaście"},
	{18, "osiemnaście"},
	{19, "dziewiętnaście"},
	{20, "dwadzieścia"},
	{30, "trzydzieści"},
	{40, "czterdzieści"},
	{50, "pięćdziesiąt"},
}

// hoursLocative answers "o której?". Midnight has its own word.
var hoursLocative = table{
	{0, "północy"},
	{1, "pierwszej"},
	{2, "drugiej"},
	{3, "trzeciej"},
	{4, "czwartej"},
	{5, "piątej"},
	{6, "szóstej"},
	{7, "siódmej"},
	{8, "ósmej"},
	{9, "dziewiątej"},
	{10, "dziesiątej"},
	{11, "jedenastej"},
	{12, "dwunastej"},
	{13, "trzynastej"},
	{14, "czternastej"},
	{15, "piętnastej"},
	{16, "szesnastej"},
	{17, "siedemnastej"},
	{18, "osiemnastej"},
	{19, "dziewiętnastej"},
	{20, "dwudziestej"},
}

// daysGenitive spells the day of the month. 31 is listed whole.
var daysGenitive = table{
	{1, "pierwszego"},
	{2, "drugiego"},
	{3, "trzeciego"},
	{4, "czwartego"},
	{5, "piątego"},
	{6, "szóstego"},
	{7, "siódmego"},
	{8, "ósmego"},
	{9, "dziewiątego"},
	{10, "dziesiątego"},
	{11, "jedenastego"},
	{12, "dwunastego"},
	{13, "trzynastego"},
	{14, "czternastego"},
	{15, "piętnastego"},
	{16, "szesnastego"},
	{17, "siedemnastego"},
	{18, "osiemnastego"},
	{19, "dziewiętnastego"},
	{20, "dwudziestego"},
	{30, "trzydziestego"},
	{31, "trzydziestego pierwszego"},
}

var monthsGenitive = table{
	{1, "stycznia"},
	{2, "lutego"},
	{3, "marca"},
	{4, "kwietnia"},
	{5, "maja"},
	{6, "czerwca"},
	{7, "lipca"},
	{8, "sierpnia"},
	{9, "września"},
	{10, "października"},
	{11, "listopada"},
	{12, "grudnia"},
}

// yearOrdinals covers the last two digits of a year. It is kept apart from
// daysGenitive because years also need 40 through 99.
var yearOrdinals = table{
	{1, "pierwszego"},
	{2, "drugiego"},
	{3, "trzeciego"},
	{4, "czwartego"},
	{5, "piątego"},
	{6, "szóstego"},
	{7, "siódmego"},
	{8, "ósmego"},
	{9, "dziewiątego"},
	{10, "dziesiątego"},
	{11, "jedenastego"},
	{12, "dwunastego"},
	{13, "trzynastego"},
	{14, "czternastego"},
	{15, "piętnastego"},
	{16, "szesnastego"},
	{17, "siedemnastego"},
	{18, "osiemnastego"},
	{19, "dziewiętnastego"},
	{20, "dwudziestego"},
	{30, "trzydziestego"},
	{40, "czterdziestego"},
	{50, "pięćdziesiątego"},
	{60, "sześćdziesiątego"},
	{70, "siedemdziesiątego"},
	{80, "osiemdziesiątego"},
	{90, "dziewięćdziesiątego"},
}

var millennia = table{
	{1, "tysiąc"},
	{2, "dwa tysiące"},
	{3, "trzy tysiące"},
	{4, "cztery tysiące"},
	{5, "pięć tysięcy"},
	{6, "sześć tysięcy"},
	{7, "siedem tysięcy"},
	{8, "osiem tysięcy"},
	{9, "dziewięć tysięcy"},
}

var centuries = table{
	{1, "sto"},
	{2, "dwieście"},
	{3, "trzysta"},
	{4, "czterysta"},
	{5, "pięćset"},
	{6, "sześćset"},
	{7, "siedemset"},
	{8, "osiemset"},
	{9, "dziewięćset"},
}

// exact returns the word listed for v.
func (t table) exact(v int) (string, bool) {
	for _, l := range t {
		if l.value == v {
			return l.word, true
		}
		if l.value > v {
			break
		}
	}
	return "", false
}

// decadeBelow returns the largest round decade (20, 30, ...) smaller than v.
func (t table) decadeBelow(v int) (literal, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		l := t[i]
		if l.value < v && l.value >= 20 && l.value%10 == 0 {
			return l, true
		}
	}
	return literal{}, false
}

// spell converts v by exact lookup, falling back to decade plus remainder.
// The second result is false when the table cannot express v.
func (t table) spell(v int) (string, bool) {
	if w, ok := t.exact(v); ok {
		return w, true
	}
	d, ok := t.decadeBelow(v)
	if !ok {
		return "", false
	}
	rest, ok := t.spell(v - d.value)
	if !ok {
		return "", false
	}
	return d.word + " " + rest, true
}

// leaf returns the value of the last literal spell(v) emits: v itself when
// it is a literal, otherwise the leaf of the remainder after the decade.
func (t table) leaf(v int) int {
	if _, ok := t.exact(v); ok {
		return v
	}
	d, ok := t.decadeBelow(v)
	if !ok {
		return v
	}
	return t.leaf(v - d.value)
}
