package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Payload is the fixed-shape summary row the endpoint expects.
type Payload struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Inspector    string `json:"inspector"`
	Location     string `json:"location"`
	CountAbsence int    `json:"countAbsence"`
}

// Response is the endpoint's JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Hosts that signal the endpoint bounced us to a login page instead of
// executing. Apps Script deployments without "anyone" access do this.
var identityProviderHosts = []string{
	"accounts.google.com",
	"login.microsoftonline.com",
}

// Client posts summary rows to the configured sheets endpoint.
type Client struct {
	http        *resty.Client
	endpointURL string
	logger      *zap.Logger
}

// ClientConfig holds the outbound client settings.
type ClientConfig struct {
	EndpointURL string
	Timeout     time.Duration
}

// NewClient creates a sheets client. No automatic retry is configured; a
// failed submission is surfaced to the user, who may retry.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:        client,
		endpointURL: cfg.EndpointURL,
		logger:      logger,
	}
}

// HTTPClient exposes the underlying client for transport stubbing in tests.
func (c *Client) HTTPClient() *resty.Client {
	return c.http
}

// Send posts one summary row and classifies the response.
func (c *Client) Send(ctx context.Context, payload Payload) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.endpointURL)
	if err != nil {
		c.logger.Error("Sheets endpoint unreachable", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}

	// The client follows redirects; landing on an identity-provider host
	// means the deployment is not publicly invokable.
	if final := resp.RawResponse.Request.URL; final != nil && isIdentityProvider(final) {
		c.logger.Error("Sheets endpoint redirected to a login page",
			zap.String("final_url", final.String()))
		return ErrEndpointMisconfigured
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.logger.Error("Sheets endpoint rejected submission",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", string(resp.Body())))
		return fmt.Errorf("%w: status %d: %s", ErrRemoteRejected, resp.StatusCode(), resp.Body())
	}

	contentType := resp.Header().Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		c.logger.Error("Sheets endpoint returned unexpected content type",
			zap.String("content_type", contentType))
		return fmt.Errorf("%w: content type %q", ErrUnexpectedResponseFormat, contentType)
	}

	var result Response
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponseFormat, err)
	}
	if !result.Success {
		c.logger.Error("Sheets endpoint reported failure", zap.String("message", result.Message))
		return fmt.Errorf("%w: %s", ErrRemoteFailure, result.Message)
	}

	c.logger.Info("Summary row sent to sheets endpoint",
		zap.String("inspector", payload.Inspector),
		zap.String("location", payload.Location),
		zap.Int("count_absence", payload.CountAbsence))
	return nil
}

func isIdentityProvider(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	for _, idp := range identityProviderHosts {
		if host == idp || strings.HasSuffix(host, "."+idp) {
			return true
		}
	}
	return false
}
