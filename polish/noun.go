package polish

// nounForms holds the three forms a Polish noun takes after a numeral.
type nounForms struct {
	one  string // jeden
	few  string // dwa, trzy, cztery
	many string // everything else, including the literals 12–14
}

var (
	secondNouns = nounForms{one: "sekunda", few: "sekundy", many: "sekund"}
	minuteNouns = nounForms{one: "minuta", few: "minuty", many: "minut"}
)

// agree picks the form that agrees with the leaf numeral, the last word
// of the spelled number. A compound such as 21 ends in "jeden" and so
// takes the singular: "dwadzieścia jeden sekunda".
func (n nounForms) agree(leaf int) string {
	switch {
	case leaf == 1:
		return n.one
	case leaf >= 2 && leaf <= 4:
		return n.few
	default:
		return n.many
	}
}
