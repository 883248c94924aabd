package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/internal/domain/entity"
)

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "boutique", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Checkout)
	assert.Equal(t, 2*time.Second, cfg.Checkout.SettleDelay)
	assert.Equal(t, "orders@boutique", cfg.Checkout.UPIPayee)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestInventoryConfig_StockPolicy(t *testing.T) {
	var nilCfg *InventoryConfig
	assert.Equal(t, entity.StockEmptyUnchanged, nilCfg.StockPolicy())

	assert.Equal(t, entity.StockEmptyUnchanged, (&InventoryConfig{}).StockPolicy())
	assert.Equal(t, entity.StockEmptyReject, (&InventoryConfig{StockEmptyPolicy: "reject"}).StockPolicy())
}
