package sweep

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adokuru/affordaily-api/shared/failure"
)

func TestAsOfOrNow(t *testing.T) {
	t.Run("defaults to the current time", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/v1/internal/sweeps/noon", nil)

		asOf, err := asOfOrNow(req)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), asOf, time.Minute)
	})

	t.Run("parses an explicit as_of", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/v1/internal/sweeps/noon?as_of=2025-03-13T12:00:00Z", nil)

		asOf, err := asOfOrNow(req)
		require.NoError(t, err)
		assert.True(t, asOf.Equal(time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects a malformed as_of", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/v1/internal/sweeps/noon?as_of=yesterday", nil)

		_, err := asOfOrNow(req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
