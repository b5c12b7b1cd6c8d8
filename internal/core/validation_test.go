// AngelaMos | 2026
// validation_test.go

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tripForm struct {
	Title     string  `json:"title"     validate:"required"`
	Travelers int     `json:"travelers" validate:"gte=1"`
	StartDate *string `json:"startDate" validate:"omitempty,flexdate"`
}

func TestNewValidatorUsesJSONNames(t *testing.T) {
	v := NewValidator()
	bad := "next tuesday"

	err := v.Struct(tripForm{Travelers: 0, StartDate: &bad})
	require.Error(t, err)

	fields := FieldErrors(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"title", "travelers", "startDate"}, names)
	assert.Contains(t, FormatValidationError(err), "title: is required")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-12-20T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 20, 5, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("20/12/2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
