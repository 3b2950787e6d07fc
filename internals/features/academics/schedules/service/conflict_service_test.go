// file: internals/features/academics/schedules/service/conflict_service_test.go
package service

import (
	"strings"
	"testing"

	"sekolahku_backend/internals/features/academics/schedules/model"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		s1   int
		e1   int
		s2   int
		e2   int
		want bool
	}{
		{name: "identik", s1: 450, e1: 540, s2: 450, e2: 540, want: true},
		{name: "sebagian di depan", s1: 450, e1: 540, s2: 500, e2: 600, want: true},
		{name: "sebagian di belakang", s1: 500, e1: 600, s2: 450, e2: 540, want: true},
		{name: "satu di dalam yang lain", s1: 450, e1: 600, s2: 480, e2: 520, want: true},
		{name: "membungkus penuh", s1: 480, e1: 520, s2: 450, e2: 600, want: true},
		{name: "bersentuhan di tepi kanan", s1: 450, e1: 540, s2: 540, e2: 600, want: false},
		{name: "bersentuhan di tepi kiri", s1: 540, e1: 600, s2: 450, e2: 540, want: false},
		{name: "terpisah jauh", s1: 450, e1: 540, s2: 700, e2: 800, want: false},
		{name: "selisih satu menit", s1: 450, e1: 540, s2: 539, e2: 600, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.s1, tt.e1, tt.s2, tt.e2)
			if got != tt.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v",
					tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
		})
	}
}

func TestOverlapsSimetris(t *testing.T) {
	// Overlaps(a,b) harus == Overlaps(b,a) untuk semua pasangan.
	pairs := [][4]int{
		{450, 540, 500, 600},
		{450, 540, 540, 600},
		{0, 1440, 720, 721},
		{100, 200, 300, 400},
	}
	for _, p := range pairs {
		a := Overlaps(p[0], p[1], p[2], p[3])
		b := Overlaps(p[2], p[3], p[0], p[1])
		assert.Equal(t, a, b, "Overlaps tidak simetris untuk %v", p)
	}
}

func TestConflictErrorMessage(t *testing.T) {
	existing := &model.ScheduleModel{
		ScheduleStartMinute: 7*60 + 30,
		ScheduleEndMinute:   9 * 60,
	}
	err := &ConflictError{Entity: "guru", Existing: existing}

	msg := err.Error()
	assert.True(t, strings.Contains(msg, "guru"), "pesan harus menyebut entitas: %q", msg)
	assert.True(t, strings.Contains(msg, "07:30"), "pesan harus menyebut jam mulai: %q", msg)
	assert.True(t, strings.Contains(msg, "09:00"), "pesan harus menyebut jam selesai: %q", msg)
}
