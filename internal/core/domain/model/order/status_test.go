package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/order"
)

func TestStatusString(t *testing.T) {
	t.Run("should render the wire form of each status", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Manifest Generated", order.ManifestGenerated.String())
		assert.Equal(t, "Unknown", order.Unknown.String())
	})

	t.Run("should render unknown for out of range values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse the terminal wire form", func(t *testing.T) {
		assert.Equal(t, order.ManifestGenerated, order.StatusFromString("Manifest Generated"))
	})

	t.Run("should map anything else to pending", func(t *testing.T) {
		assert.Equal(t, order.Pending, order.StatusFromString("Pending"))
		assert.Equal(t, order.Pending, order.StatusFromString(""))
		assert.Equal(t, order.Pending, order.StatusFromString("In Progress"))
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run("should accept pending and manifest generated", func(t *testing.T) {
		require.NoError(t, order.Pending.Validate())
		require.NoError(t, order.ManifestGenerated.Validate())
	})

	t.Run("should reject unknown", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})
}

func TestStatusMarkManifestGenerated(t *testing.T) {
	t.Run("should transition from pending", func(t *testing.T) {
		next, err := order.Pending.MarkManifestGenerated()

		require.NoError(t, err)
		assert.Equal(t, order.ManifestGenerated, next)
		assert.True(t, next.IsTerminal())
	})

	t.Run("should refuse to transition twice", func(t *testing.T) {
		_, err := order.ManifestGenerated.MarkManifestGenerated()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Manifest Generated is not a valid status")
	})

	t.Run("should refuse to transition from unknown", func(t *testing.T) {
		_, err := order.Unknown.MarkManifestGenerated()
		require.Error(t, err)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
	assert.True(t, order.ManifestGenerated.IsTerminal())
}
