package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		value    *int
		min, max int
		wantCode Code
		want     int
	}{
		{"in range", intPtr(8), 1, 32, "", 8},
		{"at minimum", intPtr(1), 1, 32, "", 1},
		{"at maximum", intPtr(32), 1, 32, "", 32},
		{"nil", nil, 1, 32, ErrCodeNullValue, 0},
		{"below minimum", intPtr(0), 1, 32, ErrCodeOutOfRange, 0},
		{"above maximum", intPtr(33), 1, 32, ErrCodeOutOfRange, 0},
		{"negative", intPtr(-4), 1, 48, ErrCodeOutOfRange, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int("row_count", tt.value, tt.min, tt.max)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Int() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("Int() = %d, want %d", got, tt.want)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("Int() error = %v, want code %s", err, tt.wantCode)
			}
			if FieldOf(err) != "row_count" {
				t.Errorf("FieldOf() = %q, want %q", FieldOf(err), "row_count")
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		minLen     int
		maxLen     int
		allowEmpty bool
		wantCode   Code
	}{
		{"valid", "96-well plate", 0, 255, false, ""},
		{"empty allowed", "", 5, 255, true, ""},
		{"empty required", "", 0, 255, false, ErrCodeNullValue},
		{"too short", "abcd", 5, 255, true, ErrCodeWrongLength},
		{"too long", strings.Repeat("x", 256), 0, 255, false, ErrCodeWrongLength},
		{"at maximum", strings.Repeat("x", 255), 0, 255, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := String("name", tt.value, tt.minLen, tt.maxLen, tt.allowEmpty)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("String() error = %v", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("String() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestUUIDAutopopulate(t *testing.T) {
	id, err := UUID("uuid", uuid.Nil, true)
	if err != nil {
		t.Fatalf("UUID() error = %v", err)
	}
	if id == uuid.Nil {
		t.Error("UUID() did not populate a fresh identity")
	}
}

func TestUUIDNilWithoutAutopopulate(t *testing.T) {
	_, err := UUID("uuid", uuid.Nil, false)
	if !Is(err, ErrCodeNullValue) {
		t.Errorf("UUID() error = %v, want code %s", err, ErrCodeNullValue)
	}
}

func TestUUIDPreserved(t *testing.T) {
	existing := uuid.New()
	id, err := UUID("uuid", existing, true)
	if err != nil {
		t.Fatalf("UUID() error = %v", err)
	}
	if id != existing {
		t.Errorf("UUID() = %v, want existing identity %v preserved", id, existing)
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(ErrCodeOutOfRange, "column_count", "%d is outside [%d, %d]", 49, 1, 48)
	want := "OUT_OF_RANGE: column_count: 49 is outside [1, 48]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsRejectsForeignErrors(t *testing.T) {
	if Is(errors.New("plain"), ErrCodeNullValue) {
		t.Error("Is() matched a non-validation error")
	}
	if Is(nil, ErrCodeNullValue) {
		t.Error("Is() matched nil")
	}
}
