package czas

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/czas/polish"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestFromTime(t *testing.T) {
	ts := time.UnixMilli(1_699_643_146_776).UTC()

	got, err := FromTime(ts)
	require.NoError(t, err)
	assert.Equal(t,
		"dziesiątego listopada dwa tysiące dwudziestego trzeciego roku o dziewiętnastej pięć i czterdzieści sześć sekund",
		got)
}

func TestFromString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full",
			in:   "2020-01-01 01:23:45",
			want: "pierwszego stycznia dwa tysiące dwudziestego roku o pierwszej dwadzieścia trzy i czterdzieści pięć sekund",
		},
		{
			name: "no minutes",
			in:   "2020-01-01 01:00:01",
			want: "pierwszego stycznia dwa tysiące dwudziestego roku o pierwszej i jeden sekunda",
		},
		{
			name: "no seconds",
			in:   "2020-01-01 01:01:00",
			want: "pierwszego stycznia dwa tysiące dwudziestego roku o pierwszej jeden",
		},
		{
			name: "midnight",
			in:   "2020-01-01 00:00:00",
			want: "pierwszego stycznia dwa tysiące dwudziestego roku o północy",
		},
		{
			name: "last day of the year",
			in:   "1999-12-31 23:59:59",
			want: "trzydziestego pierwszego grudnia tysiąc dziewięćset dziewięćdziesiątego dziewiątego roku o dwudziestej trzeciej pięćdziesiąt dziewięć i pięćdziesiąt dziewięć sekund",
		},
		{
			name: "paucal seconds",
			in:   "2022-05-22 12:30:22",
			want: "dwudziestego drugiego maja dwa tysiące dwudziestego drugiego roku o dwunastej trzydzieści i dwadzieścia dwa sekundy",
		},
		{
			name: "compound ending in one",
			in:   "2020-01-01 01:00:21",
			want: "pierwszego stycznia dwa tysiące dwudziestego roku o pierwszej i dwadzieścia jeden sekunda",
		},
		{
			name: "surrounding whitespace",
			in:   "  2020-01-01 00:00:00\n",
			want: "pierwszego stycznia dwa tysiące dwudziestego roku o północy",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := FromString(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFromString_Malformed(t *testing.T) {
	for _, in := range []string{"hello world", "", "2020-13-01 00:00:00", "2020-01-01T00:00:00"} {
		got, err := FromString(in)
		require.Error(t, err, in)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, ErrInvalid))
		assert.Equal(t, polish.KindMalformed, polish.KindOf(err))
	}
}

func TestSentence_OutOfRange(t *testing.T) {
	base := Timestamp{Year: 2020, Month: 1, Day: 1, Hour: 1, Minute: 2, Second: 3}

	bad := []Timestamp{
		{Year: 2020, Month: 13, Day: 1},
		{Year: 2020, Month: 0, Day: 1},
		{Year: 2020, Month: 1, Day: 32},
		{Year: 2020, Month: 1, Day: 1, Minute: 60},
		{Year: 2020, Month: 1, Day: 1, Second: 60},
		{Year: 2020, Month: 1, Day: 1, Hour: -1},
	}
	for _, ts := range bad {
		got, err := Sentence(ts)
		assert.Empty(t, got, "%+v", ts)
		assert.ErrorIs(t, err, ErrInvalid, "%+v", ts)
		assert.Equal(t, polish.KindOutOfRange, polish.KindOf(err))
	}

	_, err := Sentence(base)
	assert.NoError(t, err)
}

func TestSentence_HourWraps(t *testing.T) {
	a, err := Sentence(Timestamp{Year: 2020, Month: 1, Day: 1, Hour: 25})
	require.NoError(t, err)
	b, err := Sentence(Timestamp{Year: 2020, Month: 1, Day: 1, Hour: 1})
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestConverter_StrictYear(t *testing.T) {
	ts := Timestamp{Year: 0, Month: 1, Day: 1}

	lenient, err := Converter{}.Sentence(ts)
	require.NoError(t, err)
	assert.Equal(t, "pierwszego stycznia  roku o północy", lenient)

	_, err = Converter{StrictYear: true}.Sentence(ts)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestConverter_Layout(t *testing.T) {
	c := Converter{Layout: "02.01.2006 15:04"}
	got, err := c.FromString("01.01.2020 01:23")
	require.NoError(t, err)
	assert.Equal(t, "pierwszego stycznia dwa tysiące dwudziestego roku o pierwszej dwadzieścia trzy", got)

	_, err = c.FromString("2020-01-01 01:23:45")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNow(t *testing.T) {
	clock := fixedClock(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	got, err := Now(clock)
	require.NoError(t, err)
	assert.Equal(t, "pierwszego stycznia dwa tysiące dwudziestego roku o północy", got)
}

func TestSystemClock_Location(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	now := SystemClock{Location: loc}.Now()
	assert.Equal(t, loc, now.Location())
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "a b c roku o d e i f", Compose("a", "b", "c", "d", "e", "f"))
	assert.Equal(t, "a b c roku o d i f", Compose("a", "b", "c", "d", "", "f"))
	assert.Equal(t, "a b c roku o d e", Compose("a", "b", "c", "d", "e", ""))
	assert.Equal(t, "a b c roku o d", Compose("a", "b", "c", "d", "", ""))
}

func TestWords(t *testing.T) {
	w, err := Converter{}.Words(Timestamp{Year: 2022, Month: 2, Day: 3, Hour: 4, Minute: 5, Second: 0})
	require.NoError(t, err)
	assert.Equal(t, Words{
		Day:    "trzeciego",
		Month:  "lutego",
		Year:   "dwa tysiące dwudziestego drugiego",
		Hour:   "czwartej",
		Minute: "pięć",
	}, w)
}

func TestTimestamp_RoundTrip(t *testing.T) {
	ts, err := Parse("2020-01-01 01:23:45")
	require.NoError(t, err)
	assert.Equal(t, Timestamp{Year: 2020, Month: 1, Day: 1, Hour: 1, Minute: 23, Second: 45}, ts)
	assert.Equal(t, "2020-01-01 01:23:45", ts.String())
}

func TestSentence_Concurrent(t *testing.T) {
	ts := Timestamp{Year: 2020, Month: 1, Day: 1, Hour: 1, Minute: 23, Second: 45}
	want, err := Sentence(ts)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Sentence(ts)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
