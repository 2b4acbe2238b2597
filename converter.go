package czas

import (
	"time"

	"github.com/rcliao/czas/polish"
)

// Localizer renders timestamps as text in some language.
type Localizer interface {
	FromTime(t time.Time) (string, error)
	FromString(s string) (string, error)
	Now(clock Clock) (string, error)
}

// Clock abstracts time.Now so "now" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time in Location, or in time.Local when
// Location is nil.
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in c.Location.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Converter is the Polish Localizer. The zero value is ready to use.
type Converter struct {
	// StrictYear rejects years outside 1–9999 instead of dropping the parts
	// that cannot be spelled.
	StrictYear bool

	// Layout overrides the input layout used by FromString. Empty means Layout.
	Layout string
}

var _ Localizer = Converter{}

// Words holds the converted form of every field of a Timestamp.
type Words struct {
	Day    string `json:"day"`
	Month  string `json:"month"`
	Year   string `json:"year"`
	Hour   string `json:"hour"`
	Minute string `json:"minute,omitempty"`
	Second string `json:"second,omitempty"`
}

// Sentence joins w with Compose.
func (w Words) Sentence() string {
	return Compose(w.Day, w.Month, w.Year, w.Hour, w.Minute, w.Second)
}

// Words converts every field of ts. The first field that fails aborts the
// conversion and nothing else is returned.
func (c Converter) Words(ts Timestamp) (Words, error) {
	var (
		w   Words
		err error
	)
	if w.Second, err = polish.SecondsCounted(ts.Second); err != nil {
		return Words{}, err
	}
	if w.Minute, err = polish.Minutes(ts.Minute); err != nil {
		return Words{}, err
	}
	if w.Hour, err = polish.Hours(ts.Hour); err != nil {
		return Words{}, err
	}
	if w.Day, err = polish.Day(ts.Day); err != nil {
		return Words{}, err
	}
	if w.Month, err = polish.Month(ts.Month); err != nil {
		return Words{}, err
	}
	if c.StrictYear {
		if w.Year, err = polish.YearStrict(ts.Year); err != nil {
			return Words{}, err
		}
	} else {
		w.Year = polish.Year(ts.Year)
	}
	return w, nil
}

// Sentence converts ts into a full sentence.
func (c Converter) Sentence(ts Timestamp) (string, error) {
	w, err := c.Words(ts)
	if err != nil {
		return "", err
	}
	return w.Sentence(), nil
}

// FromTime converts the wall-clock fields of t.
func (c Converter) FromTime(t time.Time) (string, error) {
	return c.Sentence(TimestampOf(t))
}

// FromString parses s and converts it.
func (c Converter) FromString(s string) (string, error) {
	layout := c.Layout
	if layout == "" {
		layout = Layout
	}
	ts, err := ParseLayout(layout, s)
	if err != nil {
		return "", err
	}
	return c.Sentence(ts)
}

// Now converts the time reported by clock.
func (c Converter) Now(clock Clock) (string, error) {
	return c.FromTime(clock.Now())
}
