package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultQuery(), cfg.InitialQuery())
}

func TestConfigValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.View.Filter = "archived"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidFilter)

	cfg = NewDefaultConfig()
	cfg.View.Sort = "id"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidSortKey)
}

func TestConfigInitialQuery_FallsBackOnInvalid(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.View.Filter = "bogus"
	cfg.View.Sort = string(SortByTitle)

	q := cfg.InitialQuery()
	assert.Equal(t, FilterAll, q.Filter)
	assert.Equal(t, SortByTitle, q.Sort)
}
