package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	platformconfig "github.com/rlsh74/tnsystems-website/internal/platform/config"
	"github.com/rlsh74/tnsystems-website/internal/types"
)

// TestConfig returns a development configuration that never touches the
// process environment. Overrides replace the defaults key by key.
func TestConfig(t *testing.T, overrides map[string]string) *platformconfig.Config {
	t.Helper()

	env := map[string]string{
		"APP_ENV":             types.ModeDevelopment,
		"PORT":                "3000",
		"FRONTEND_URL":        "http://localhost:3000",
		"COMPANY_EMAIL":       "contact@domain.com",
		"EMAIL_FROM_FALLBACK": "noreply@domain.com",
		"STATIC_DIR":          t.TempDir(),
		"PROXY_HEADER":        types.HeaderRealIP,
		"RATE_LIMIT_STORE":    platformconfig.StoreMemory,
	}
	for k, v := range overrides {
		env[k] = v
	}

	cfg, err := platformconfig.LoadFromMap(env)
	require.NoError(t, err, "test configuration must be valid")
	return cfg
}
