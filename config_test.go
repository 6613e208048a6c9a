package axiar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
		field   string
	}{
		{name: "complete", cfg: Config{Login: "login", Password: "password"}},
		{name: "missing login", cfg: Config{Password: "password"}, wantErr: true, field: "login"},
		{name: "missing password", cfg: Config{Login: "login"}, wantErr: true, field: "password"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestConfig_EndpointDefaults(t *testing.T) {
	cfg := Config{Login: "login", Password: "password"}
	assert.Equal(t, defaultAPIURL, cfg.TransactionURL())
	assert.Equal(t, defaultTDSURL, cfg.CompletionURL())

	cfg.APIURL = "https://sandbox.example.com/axiar"
	cfg.TDSCompletionURL = "https://sandbox.example.com/axiar/tds"
	assert.Equal(t, "https://sandbox.example.com/axiar", cfg.TransactionURL())
	assert.Equal(t, "https://sandbox.example.com/axiar/tds", cfg.CompletionURL())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("AXIAR_LOGIN", "test_streamline")
	t.Setenv("AXIAR_PASSWORD", "password")
	t.Setenv("AXIAR_3DSECURE", "true")
	t.Setenv("AXIAR_TEST", "true")
	t.Setenv("AXIAR_API_URL", "https://sandbox.example.com/axiar")

	cfg := LoadConfigFromEnv()
	assert.Equal(t, "test_streamline", cfg.Login)
	assert.Equal(t, "password", cfg.Password)
	assert.True(t, cfg.EnableThreeDSecure)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, "https://sandbox.example.com/axiar", cfg.APIURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromDotEnv_MissingFileFallsBack(t *testing.T) {
	t.Setenv("AXIAR_LOGIN", "test_streamline")
	t.Setenv("AXIAR_PASSWORD", "password")

	cfg := LoadConfigFromDotEnv("does-not-exist.env")
	assert.Equal(t, "test_streamline", cfg.Login)
	assert.Equal(t, "password", cfg.Password)
}

func TestNewClient_DefaultsWithoutCertificate(t *testing.T) {
	client, err := NewClient(Config{Login: "login", Password: "password"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
