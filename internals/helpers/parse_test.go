// file: internals/helpers/parse_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:30", 450, false},
		{"23:59", 1439, false},
		{"09:15:30", 555, false}, // detik diabaikan
		{" 08:00 ", 480, false},  // spasi dipangkas
		{"", 0, true},
		{"7.30", 0, true},
		{"25:00", 0, true},
		{"12:61", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 450, 1439} {
		s := FormatClock(minutes)
		back, err := ParseClock(s)

		assert.NoError(t, err, "FormatClock(%d) = %q", minutes, s)
		assert.Equal(t, minutes, back)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15-01-2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseBoolLoose(t *testing.T) {
	tests := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{"1", true, true},
		{"true", true, true},
		{"YES", true, true},
		{"0", false, true},
		{"off", false, true},
		{"", false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		got, ok := ParseBoolLoose(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestUUIDPtrFromString(t *testing.T) {
	// nil dan string kosong sama-sama menghasilkan nil tanpa error
	got, err := UUIDPtrFromString(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	empty := "  "
	got, err = UUIDPtrFromString(&empty)
	assert.NoError(t, err)
	assert.Nil(t, got)

	valid := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	got, err = UUIDPtrFromString(&valid)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, valid, got.String())
	}

	bad := "bukan-uuid"
	_, err = UUIDPtrFromString(&bad)
	assert.Error(t, err)
}

func TestStrPtrOrNil(t *testing.T) {
	assert.Nil(t, StrPtrOrNil(nil))

	blank := "   "
	assert.Nil(t, StrPtrOrNil(&blank))

	s := "  halo  "
	got := StrPtrOrNil(&s)
	if assert.NotNil(t, got) {
		assert.Equal(t, "halo", *got)
	}
}
