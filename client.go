package axiar

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/axiarpayments/axiar-go/models"
)

// Client talks to the Axiar payment gateway. It is safe for concurrent
// use; every call is independent and carries no state between
// invocations, so the only shared component is the underlying HTTP
// client.
type Client struct {
	cfg    Config
	http   HTTPDoer
	apiURL string
	tdsURL string
	log    *zap.Logger
}

// NewClient validates the configuration and prepares a gateway client.
// When a P12 client certificate is configured it is loaded into the TLS
// transport here, so certificate problems surface at construction time.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doer := cfg.HTTPClient
	if doer == nil {
		httpClient := &http.Client{Timeout: 30 * time.Second}
		if cfg.P12Path != "" {
			cert, err := loadClientCertificate(cfg.P12Path, cfg.P12Password)
			if err != nil {
				return nil, fmt.Errorf("axiar: load client certificate: %w", err)
			}
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{Certificates: []tls.Certificate{cert}},
			}
		}
		doer = httpClient
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		cfg:    cfg,
		http:   doer,
		apiURL: cfg.TransactionURL(),
		tdsURL: cfg.CompletionURL(),
		log:    log,
	}, nil
}

// Register stores card details with the gateway and returns a reusable
// token on Result.CardToken. Amount may be zero when no charge is taken
// alongside the registration.
func (c *Client) Register(ctx context.Context, amount int64, method models.PaymentMethod, opts models.TransactionOptions) (models.Result, error) {
	if method == nil {
		return models.Result{}, &ValidationError{Field: "payment_method", Reason: "required"}
	}
	return c.transact(ctx, transactionRequest{
		opType: typeRegister,
		amount: amount,
		method: method,
		opts:   opts,
	})
}

// Authorize reserves the amount against the card without settling it.
// Settle later with Capture, or release with Void.
func (c *Client) Authorize(ctx context.Context, amount int64, method models.PaymentMethod, opts models.TransactionOptions) (models.Result, error) {
	if method == nil {
		return models.Result{}, &ValidationError{Field: "payment_method", Reason: "required"}
	}
	return c.transact(ctx, transactionRequest{
		opType:       typePreauth,
		amount:       amount,
		method:       method,
		threeDSecure: c.negotiateThreeDSecure(opts),
		opts:         opts,
	})
}

// Purchase authorizes and settles in one round trip.
func (c *Client) Purchase(ctx context.Context, amount int64, method models.PaymentMethod, opts models.TransactionOptions) (models.Result, error) {
	if method == nil {
		return models.Result{}, &ValidationError{Field: "payment_method", Reason: "required"}
	}
	return c.transact(ctx, transactionRequest{
		opType:       typeAuth,
		amount:       amount,
		method:       method,
		threeDSecure: c.negotiateThreeDSecure(opts),
		opts:         opts,
	})
}

// Capture settles a previous authorization. The authorization argument
// is the composite reference returned on Result.Authorization.
func (c *Client) Capture(ctx context.Context, amount int64, authorization string, opts models.TransactionOptions) (models.Result, error) {
	if authorization == "" {
		return models.Result{}, &ValidationError{Field: "authorization", Reason: "required"}
	}
	return c.transact(ctx, transactionRequest{
		opType:      typePreauthSettle,
		amount:      amount,
		parentTrxID: authorization,
		opts:        opts,
	})
}

// Void reverses a previous authorization or purchase. The authorization
// argument is the composite reference returned on Result.Authorization.
func (c *Client) Void(ctx context.Context, amount int64, authorization string, opts models.TransactionOptions) (models.Result, error) {
	if authorization == "" {
		return models.Result{}, &ValidationError{Field: "authorization", Reason: "required"}
	}
	return c.transact(ctx, transactionRequest{
		opType:      typeReversal,
		amount:      amount,
		parentTrxID: authorization,
		opts:        opts,
	})
}

// Credit refunds the amount to the card or token, independent of any
// prior transaction.
func (c *Client) Credit(ctx context.Context, amount int64, method models.PaymentMethod, opts models.TransactionOptions) (models.Result, error) {
	if method == nil {
		return models.Result{}, &ValidationError{Field: "payment_method", Reason: "required"}
	}
	return c.transact(ctx, transactionRequest{
		opType: typeRefund,
		amount: amount,
		method: method,
		opts:   opts,
	})
}

// CompleteThreeDSecure finishes a pending 3-D Secure challenge. paRes is
// the payer authentication response posted back by the cardholder's
// bank; md is the merchant data token from the original challenge. This
// is the one call that goes to the completion endpoint with a form body
// and needs no order identifier.
func (c *Client) CompleteThreeDSecure(ctx context.Context, paRes, md string) (models.Result, error) {
	if paRes == "" {
		return models.Result{}, &ValidationError{Field: "pares", Reason: "required"}
	}
	if md == "" {
		return models.Result{}, &ValidationError{Field: "md", Reason: "required"}
	}
	body := buildCompletionBody(md, paRes)
	return c.roundTrip(ctx, "TDS_COMPLETE", c.tdsURL, contentTypeForm, []byte(body))
}

func (c *Client) negotiateThreeDSecure(opts models.TransactionOptions) bool {
	return c.cfg.EnableThreeDSecure && !opts.SkipThreeDSecure
}

func (c *Client) transact(ctx context.Context, r transactionRequest) (models.Result, error) {
	if r.opts.OrderID == "" {
		return models.Result{}, &ValidationError{Field: "order_id", Reason: "required"}
	}

	body, err := buildTransactionXML(c.cfg.Login, c.cfg.Password, r)
	if err != nil {
		return models.Result{}, fmt.Errorf("axiar: build request: %w", err)
	}
	return c.roundTrip(ctx, r.opType, c.apiURL, contentTypeXML, []byte(body))
}

// roundTrip runs the send → parse → normalize pipeline shared by every
// operation. Card data and credentials never reach the logger.
func (c *Client) roundTrip(ctx context.Context, op, url, contentType string, body []byte) (models.Result, error) {
	c.log.Debug("axiar request",
		zap.String("operation", op),
		zap.String("url", url),
	)

	respBody, err := post(ctx, c.http, url, contentType, body)
	if err != nil {
		return models.Result{}, err
	}

	fields, err := parseResponse(respBody)
	if err != nil {
		return models.Result{}, err
	}

	res := normalizeResult(fields, c.cfg.TestMode)
	c.log.Debug("axiar response",
		zap.String("operation", op),
		zap.String("result", fields["result"]),
		zap.Bool("success", res.Success),
		zap.Bool("challenge", res.ThreeDSecure != nil),
	)
	return res, nil
}
