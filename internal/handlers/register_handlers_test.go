package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIPRateLimiter_ValidFormat(t *testing.T) {
	l := newIPRateLimiter(loginRateFormat)

	require.NotNil(t, l)
	assert.Equal(t, int64(5), l.Rate.Limit)
}

func TestNewIPRateLimiter_PanicsOnBadFormat(t *testing.T) {
	assert.Panics(t, func() {
		newIPRateLimiter("five-per-minute")
	})
}
