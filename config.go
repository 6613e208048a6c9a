package axiar

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The gateway uses the same host for test and production accounts; test
// behavior is a property of the account, not the endpoint.
const (
	defaultAPIURL = "https://api.axiarpayments.co.uk:8081/axiar"
	defaultTDSURL = "https://api.axiarpayments.co.uk:8081/axiar/tds"
)

// Config holds the credentials and settings needed to talk to the Axiar
// payment gateway.
type Config struct {
	// Login is the merchant account username. Required.
	Login string

	// Password is the merchant account password. Required.
	Password string

	// EnableThreeDSecure opts authorize and purchase requests into 3-D
	// Secure negotiation. Individual calls can still skip it via
	// TransactionOptions.SkipThreeDSecure.
	EnableThreeDSecure bool

	// TestMode marks results as produced against a test account.
	TestMode bool

	// APIURL optionally overrides the primary transaction endpoint.
	APIURL string

	// TDSCompletionURL optionally overrides the 3-D Secure completion
	// endpoint.
	TDSCompletionURL string

	// P12Path optionally points at a P12/PFX client certificate presented
	// during the TLS handshake. Most merchant accounts do not need one.
	P12Path string

	// P12Password is the password that protects the P12 file.
	P12Password string

	// HTTPClient optionally overrides the HTTP client used for gateway
	// calls. The default client carries a 30 second timeout; callers who
	// need different timeout or pooling behavior supply their own.
	HTTPClient HTTPDoer

	// Logger receives debug-level round-trip logs. Nil disables logging.
	Logger *zap.Logger
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.Login == "" {
		return &ValidationError{Field: "login", Reason: "required"}
	}
	if c.Password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	return nil
}

// TransactionURL returns the primary XML transaction endpoint.
func (c Config) TransactionURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return defaultAPIURL
}

// CompletionURL returns the 3-D Secure completion endpoint.
func (c Config) CompletionURL() string {
	if c.TDSCompletionURL != "" {
		return c.TDSCompletionURL
	}
	return defaultTDSURL
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	AXIAR_LOGIN         – merchant username (required)
//	AXIAR_PASSWORD      – merchant password (required)
//	AXIAR_3DSECURE      – "true" to opt into 3-D Secure negotiation
//	AXIAR_TEST          – "true" to mark results as test transactions
//	AXIAR_API_URL       – optional transaction endpoint override
//	AXIAR_TDS_URL       – optional 3-D Secure completion endpoint override
//	AXIAR_P12_PATH      – optional path to a P12 client certificate
//	AXIAR_P12_PASSWORD  – P12 file password
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() Config {
	return Config{
		Login:              os.Getenv("AXIAR_LOGIN"),
		Password:           os.Getenv("AXIAR_PASSWORD"),
		EnableThreeDSecure: os.Getenv("AXIAR_3DSECURE") == "true",
		TestMode:           os.Getenv("AXIAR_TEST") == "true",
		APIURL:             os.Getenv("AXIAR_API_URL"),
		TDSCompletionURL:   os.Getenv("AXIAR_TDS_URL"),
		P12Path:            os.Getenv("AXIAR_P12_PATH"),
		P12Password:        os.Getenv("AXIAR_P12_PASSWORD"),
	}
}
