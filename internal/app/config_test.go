package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Espace Jeux & Boutique", cfg.VenueName)
	assert.Equal(t, "FCFA", cfg.Currency)
	assert.Equal(t, "127.0.0.1:0", cfg.ViewerAddr)
	assert.True(t, cfg.OpenBrowser)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CAISSE_VENUE_NAME", "Le Comptoir")
	t.Setenv("CAISSE_CURRENCY", "XOF")
	t.Setenv("CAISSE_OPEN_BROWSER", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Le Comptoir", cfg.VenueName)
	assert.Equal(t, "XOF", cfg.Currency)
	assert.False(t, cfg.OpenBrowser)
}
