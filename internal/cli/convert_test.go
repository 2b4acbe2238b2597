package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/czas/internal/config"
	"github.com/rcliao/czas/polish"
)

func TestConvertUnit(t *testing.T) {
	cfg = &config.Config{}

	cases := []struct {
		unit string
		v    int
		want string
	}{
		{"day", 31, "trzydziestego pierwszego"},
		{"month", 2, "lutego"},
		{"hour", 0, "północy"},
		{"minute", 45, "czterdzieści pięć"},
		{"second-count", 3, "trzy sekundy"},
		{"minute-count", 5, "pięć minut"},
		{"year", 2022, "dwa tysiące dwudziestego drugiego"},
		{"year", 0, ""},
	}
	for _, c := range cases {
		got, err := convertUnit(c.unit, c.v)
		require.NoError(t, err, c.unit)
		assert.Equal(t, c.want, got, "%s %d", c.unit, c.v)
	}
}

func TestConvertUnit_Errors(t *testing.T) {
	cfg = &config.Config{StrictYear: true}

	_, err := convertUnit("year", 0)
	assert.ErrorIs(t, err, polish.ErrInvalid)

	_, err = convertUnit("day", 32)
	assert.ErrorIs(t, err, polish.ErrInvalid)

	_, err = convertUnit("fortnight", 1)
	assert.Error(t, err)
}
