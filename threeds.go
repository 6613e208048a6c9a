package axiar

import (
	"context"

	"github.com/axiarpayments/axiar-go/models"
)

// ThreeDSecureState tracks the progress of a 3-D Secure authentication.
type ThreeDSecureState int

const (
	// ThreeDSecureInitiated means the authorize/purchase ran and the
	// gateway did not ask for a cardholder challenge.
	ThreeDSecureInitiated ThreeDSecureState = iota

	// ThreeDSecureChallengePending means the gateway returned a redirect
	// challenge and is waiting for the payer authentication response.
	ThreeDSecureChallengePending

	// ThreeDSecureCompleted means the completion call has run.
	ThreeDSecureCompleted
)

func (s ThreeDSecureState) String() string {
	switch s {
	case ThreeDSecureInitiated:
		return "initiated"
	case ThreeDSecureChallengePending:
		return "challenge_pending"
	case ThreeDSecureCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ThreeDSecureSession models the two-phase 3-D Secure flow explicitly so
// a pending challenge never gets conflated with a decline. Derive a
// session from the result of an authorize or purchase call; when a
// challenge is pending, redirect the cardholder to Challenge().RedirectURL
// carrying the PAReq and MD values, then call Complete with the payer
// authentication response.
type ThreeDSecureSession struct {
	client    *Client
	state     ThreeDSecureState
	challenge *models.ThreeDSecureChallenge
}

// NewThreeDSecureSession derives the session state from an initial
// authorize or purchase result.
func (c *Client) NewThreeDSecureSession(res models.Result) *ThreeDSecureSession {
	s := &ThreeDSecureSession{client: c, state: ThreeDSecureInitiated}
	if res.ThreeDSecure != nil {
		s.state = ThreeDSecureChallengePending
		s.challenge = res.ThreeDSecure
	}
	return s
}

// State returns the current protocol state.
func (s *ThreeDSecureSession) State() ThreeDSecureState {
	return s.state
}

// Challenge returns the pending challenge, or nil when none is pending.
func (s *ThreeDSecureSession) Challenge() *models.ThreeDSecureChallenge {
	if s.state != ThreeDSecureChallengePending {
		return nil
	}
	return s.challenge
}

// Complete submits the payer authentication response for a pending
// challenge and moves the session to the completed state. The session's
// own merchant data token is reused, so callers only carry the paRes
// blob back from the bank redirect.
func (s *ThreeDSecureSession) Complete(ctx context.Context, paRes string) (models.Result, error) {
	if s.state != ThreeDSecureChallengePending {
		return models.Result{}, &ValidationError{Field: "state", Reason: "no challenge pending"}
	}
	res, err := s.client.CompleteThreeDSecure(ctx, paRes, s.challenge.MD)
	if err != nil {
		return models.Result{}, err
	}
	s.state = ThreeDSecureCompleted
	return res, nil
}
