package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("no services returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Food: &mockFoodService{},
			Shop: &mockShopService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("no services returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("food only is valid", func(t *testing.T) {
		ports := &Ports{Food: &mockFoodService{}}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("shop only is valid", func(t *testing.T) {
		ports := &Ports{Shop: &mockShopService{}}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
