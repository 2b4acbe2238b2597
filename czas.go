// Package czas turns timestamps into Polish sentences:
//
//	2020-01-01 01:23:45 → "pierwszego stycznia dwa tysiące dwudziestego roku
//	                       o pierwszej dwadzieścia trzy i czterdzieści pięć sekund"
//
// The word-level conversions live in the polish subpackage; this package
// assembles them and supplies the parsing and clock glue.
package czas

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/czas/polish"
)

// Layout is the input format accepted by Parse and FromString.
const Layout = time.DateTime

// ErrInvalid is returned, possibly wrapped, by every failed conversion.
var ErrInvalid = polish.ErrInvalid

// Timestamp holds the six fields a sentence is built from.
type Timestamp struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// TimestampOf copies the wall-clock fields of t.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// String formats ts in Layout. Fields are printed as given, without range checks.
func (ts Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
}

// Parse reads a timestamp in Layout. Failures are *polish.Error values of
// KindMalformed wrapping the underlying *time.ParseError.
func Parse(s string) (Timestamp, error) {
	return ParseLayout(Layout, s)
}

// ParseLayout is Parse with a caller-supplied time layout.
func ParseLayout(layout, s string) (Timestamp, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return Timestamp{}, polish.Malformed(err)
	}
	return TimestampOf(t), nil
}

// Compose joins already converted words into the sentence template
//
//	<day> <month> <year> roku o <hour>[ <minute>][ i <second>]
//
// An empty minute or second drops its segment.
func Compose(day, month, year, hour, minute, second string) string {
	var b strings.Builder
	b.WriteString(day)
	b.WriteByte(' ')
	b.WriteString(month)
	b.WriteByte(' ')
	b.WriteString(year)
	b.WriteString(" roku o ")
	b.WriteString(hour)
	if minute != "" {
		b.WriteByte(' ')
		b.WriteString(minute)
	}
	if second != "" {
		b.WriteString(" i ")
		b.WriteString(second)
	}
	return b.String()
}

// Sentence converts ts with the default Converter.
func Sentence(ts Timestamp) (string, error) {
	return Converter{}.Sentence(ts)
}

// FromString parses s in Layout and converts it with the default Converter.
func FromString(s string) (string, error) {
	return Converter{}.FromString(s)
}

// FromTime converts the wall-clock fields of t with the default Converter.
func FromTime(t time.Time) (string, error) {
	return Converter{}.FromTime(t)
}

// Now converts the current time reported by clock with the default Converter.
func Now(clock Clock) (string, error) {
	return Converter{}.Now(clock)
}
