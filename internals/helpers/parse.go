// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	layoutDate = "2006-01-02" // DATE
	layoutT1   = "15:04"      // TIME (HH:mm)
	layoutT2   = "15:04:05"   // TIME (HH:mm:ss)
)

// ParseUUIDParam membaca path param dan parse sebagai UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// ParseDate menerima "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// ParseClock menerima "HH:mm" atau "HH:mm:ss" → menit sejak 00:00.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}
	// coba HH:mm lalu HH:mm:ss
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	return 0, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss)")
}

// FormatClock kebalikan ParseClock (menit → "HH:mm").
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseBoolLoose menerima variasi nilai boolean dari query string.
func ParseBoolLoose(s string) (bool, bool) {
	if s == "" {
		return false, false // not present
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// UUIDPtrFromString parse pointer string opsional menjadi pointer UUID.
func UUIDPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

// StrPtrOrNil normalisasi pointer string kosong menjadi nil.
func StrPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
