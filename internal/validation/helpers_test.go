package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

// fixedNow is the "today" every validation test runs against.
var fixedNow = time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

func freezeClock(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = prev })
}

func requireValidationError(t *testing.T, err error, contains string) {
	t.Helper()
	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 400, vErr.Code)
	if contains != "" {
		assert.Contains(t, vErr.Message, contains)
	}
}

func adults(n int) models.Passengers {
	return models.Passengers{Types: []models.PassengerTypeCount{{Type: "ADT", Count: n}}}
}
