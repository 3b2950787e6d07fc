// file: internals/features/internships/queue/service/queue_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRegistrationNumber(t *testing.T) {
	tests := []struct {
		year   int
		number int
		want   string
	}{
		{2026, 1, "PKL-2026-0001"},
		{2026, 42, "PKL-2026-0042"},
		{2026, 9999, "PKL-2026-9999"},
		{2027, 10000, "PKL-2027-10000"}, // di atas 4 digit tetap utuh
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRegistrationNumber(tt.year, tt.number))
	}
}
