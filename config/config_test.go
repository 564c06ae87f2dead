package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEndpointsDefaults(t *testing.T) {
	endpoints, err := LoadEndpoints("")
	require.NoError(t, err)
	assert.Equal(t, []string{"/clients", "/users", "/admin/users"}, endpoints.Users)
	assert.Equal(t, []string{"/client/v1/productDetails/{id}"}, endpoints.ProductDetail)
}

func TestLoadEndpointsOverridesListedResources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	content := "users:\n  - /v2/customers\n  - /v2/accounts\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	endpoints, err := LoadEndpoints(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/v2/customers", "/v2/accounts"}, endpoints.Users)
	assert.Equal(t, DefaultEndpoints().Products, endpoints.Products)
}

func TestLoadEndpointsMissingFile(t *testing.T) {
	_, err := LoadEndpoints(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCreateNewConfigDefaults(t *testing.T) {
	t.Setenv("ITEMS_PER_PAGE", "0")
	t.Setenv("PROMO_COUNTDOWN", "not-a-duration")
	t.Setenv("SERVICE_PORT", "")
	t.Setenv("DASHBOARD_MAX_VIEWS", "-1")
	t.Setenv("BACKEND_MAX_BODY_BYTES", "")

	conf := CreateNewConfig()
	assert.Equal(t, "8080", conf.ServicePort)
	assert.Equal(t, 10, conf.ListingConfig.ItemsPerPage)
	assert.Equal(t, 62*time.Hour+30*time.Minute+45*time.Second, conf.PromoConfig.Countdown)
	assert.Equal(t, time.Second, conf.PromoConfig.TickInterval)
	assert.Equal(t, 256, conf.ViewConfig.MaxViews)
	assert.Equal(t, 30*time.Minute, conf.ViewConfig.TTL)
	assert.Equal(t, int64(10<<20), conf.BackendConfig.MaxBodyBytes)
}
