package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/core/apperror"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	c := NewClient("123", "Ana", date(1960, time.June, 15))

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{"day before birthday", date(2026, time.June, 14), 65},
		{"on birthday", date(2026, time.June, 15), 66},
		{"after birthday", date(2026, time.December, 1), 66},
		{"earlier month", date(2026, time.January, 30), 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Age(tt.asOf))
		})
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, NewClient("12345678900", "Ana", date(1990, 1, 1)).Validate(ctx))

	tests := []struct {
		name   string
		client *Client
	}{
		{"missing id", NewClient("", "Ana", date(1990, 1, 1))},
		{"non digit id", NewClient("123.456", "Ana", date(1990, 1, 1))},
		{"missing name", NewClient("1", " ", date(1990, 1, 1))},
		{"missing birth date", NewClient("1", "Ana", time.Time{})},
		{"future birth date", NewClient("1", "Ana", time.Now().AddDate(1, 0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate(ctx)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.CodeValidation))
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	d, err := ParseBirthDate(" 1958-03-02 ")
	require.NoError(t, err)
	assert.Equal(t, date(1958, time.March, 2), d)

	_, err = ParseBirthDate("02/03/1958")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.CodeInvalidInput))
}
