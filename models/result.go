package models

// Gateway result codes.
const (
	ResultSuccess  = "SUCCESS"
	ResultDeclined = "DECLINED"
	ResultReferred = "REFERRED"
)

// AVS/CVV match codes after translation from the gateway's raw characters.
const (
	MatchYes        = "Y"
	MatchNo         = "N"
	MatchNotChecked = "X"
)

// Result is the normalized outcome of one gateway round trip. A declined
// transaction is a Result with Success false, not an error.
type Result struct {
	// Success is true exactly when the gateway reported SUCCESS.
	Success bool

	// Message is the gateway's human-readable error or authorization message.
	Message string

	// Authorization is the composite reference "trxID;authCode", composed
	// even when one side is empty so callers always get a stable key to
	// pass into a later capture, void or refund.
	Authorization string

	// CardToken is the gateway-issued token for the card used, when the
	// gateway returned one. Pass it back as a Token payment method.
	CardToken string

	// AVS holds the address verification outcome. Nil when the gateway
	// did not return an AVS block.
	AVS *AVSResult

	// CVVResult is the card verification outcome code. Empty when the
	// gateway did not return an AVS block.
	CVVResult string

	// ThreeDSecure is the pending cardholder challenge, present only when
	// the gateway requires 3-D Secure authentication before completing.
	ThreeDSecure *ThreeDSecureChallenge

	// TestMode mirrors the client's test-mode configuration.
	TestMode bool

	// Fields is the full flattened response for diagnostics. Duplicate
	// leaf tag names collide last-write-wins; treat the named fields
	// above as the supported surface.
	Fields map[string]string
}

// AVSResult is the address verification outcome, one match code per check.
type AVSResult struct {
	StreetMatch string
	PostalMatch string
}

// ThreeDSecureChallenge carries the values needed to redirect the
// cardholder to their issuing bank. Send PAReq and MD to RedirectURL,
// then complete the payment with the returned payer authentication
// response and the same MD.
type ThreeDSecureChallenge struct {
	PAReq       string
	MD          string
	RedirectURL string
}
