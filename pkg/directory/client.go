// Package directory talks to the account directory that resolves usernames to
// online identifiers and back.
//
// Every call is a single GET round trip. The client does not retry, cache,
// batch or back off; throttling repeated calls is the caller's job.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"playerid/pkg/directory/metrics"
	dErrors "playerid/pkg/domain-errors"
	"playerid/pkg/platform/tracer"
)

// Default endpoints of the public account directory.
const (
	DefaultProfileBaseURL = "https://api.mojang.com/users/profiles/minecraft"
	DefaultSessionBaseURL = "https://sessionserver.mojang.com/session/minecraft/profile"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Profile is the {name, id} payload returned by both endpoints.
type Profile struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

// Client resolves profiles against the directory service.
type Client struct {
	profileBaseURL string
	sessionBaseURL string
	userAgent      string
	httpClient     HTTPDoer
	logger         *slog.Logger
	tracer         tracer.Tracer
	metrics        *metrics.Metrics
}

// Option configures the Client.
type Option func(*Client)

// WithProfileBaseURL overrides the username lookup endpoint.
func WithProfileBaseURL(u string) Option {
	return func(c *Client) {
		c.profileBaseURL = strings.TrimRight(u, "/")
	}
}

// WithSessionBaseURL overrides the identifier lookup endpoint.
func WithSessionBaseURL(u string) Option {
	return func(c *Client) {
		c.sessionBaseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client. Timeouts, TLS and proxies are its concern.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets the tracer. The default is a no-op.
func WithTracer(t tracer.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithMetrics enables request metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for the public directory unless options say otherwise.
func New(opts ...Option) *Client {
	c := &Client{
		profileBaseURL: DefaultProfileBaseURL,
		sessionBaseURL: DefaultSessionBaseURL,
		httpClient:     http.DefaultClient,
		logger:         slog.New(slog.DiscardHandler),
		tracer:         tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProfileByName resolves a username. A username the directory does not know
// is CodeInvalidUsername.
func (c *Client) ProfileByName(ctx context.Context, username string) (profile Profile, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanProfileByName, tracer.String(tracer.AttrUsername, username))
	defer func() { span.End(err) }()

	endpoint := c.profileBaseURL + "/" + url.PathEscape(username)
	profile, err = c.fetch(ctx, span, metrics.EndpointProfileByName, endpoint)
	if err != nil {
		return Profile{}, err
	}
	if profile.ID.Version() != 4 {
		// Returned as-is; only the classifier validates versions.
		c.logger.DebugContext(ctx, "directory returned non-random identifier",
			slog.String("username", username),
			slog.String("id", profile.ID.String()),
			slog.Int("version", int(profile.ID.Version())),
		)
	}
	return profile, nil
}

// ProfileByID resolves an identifier back to its current username. An
// identifier the directory does not know is also CodeInvalidUsername.
func (c *Client) ProfileByID(ctx context.Context, id uuid.UUID) (profile Profile, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanProfileByID, tracer.String(tracer.AttrPlayerID, id.String()))
	defer func() { span.End(err) }()

	endpoint := c.sessionBaseURL + "/" + compact(id)
	return c.fetch(ctx, span, metrics.EndpointProfileByID, endpoint)
}

func (c *Client) fetch(ctx context.Context, span tracer.Span, endpoint, target string) (profile Profile, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		outcome := outcomeOf(err)
		c.metrics.ObserveRequest(endpoint, outcome, elapsed)
		span.SetAttributes(
			tracer.String(tracer.AttrOutcome, outcome),
			tracer.Duration(tracer.AttrLatency, elapsed),
		)
		c.logger.DebugContext(ctx, "directory lookup",
			slog.String("endpoint", endpoint),
			slog.String("outcome", outcome),
			slog.Duration("elapsed", elapsed),
		)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Profile{}, dErrors.Wrap(err, dErrors.CodeUnknown, "failed to create directory request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Profile{}, dErrors.Wrap(err, dErrors.CodeTransport, fmt.Sprintf("directory transport error: %v", err))
	}
	defer resp.Body.Close()

	span.AddEvent(tracer.EventResponseReceived, tracer.Int64(tracer.AttrHTTPStatus, int64(resp.StatusCode)))

	// The directory answers 204 or 404 for unknown names and ids. The body of
	// a rejected lookup is never read.
	if resp.StatusCode == http.StatusNoContent || resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Profile{}, dErrors.New(dErrors.CodeInvalidUsername,
			fmt.Sprintf("invalid username: directory responded %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Profile{}, dErrors.Wrap(err, dErrors.CodeTransport, fmt.Sprintf("failed to read directory response: %v", err))
	}

	var wire struct {
		Name *string    `json:"name"`
		ID   *uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return Profile{}, dErrors.Wrap(err, dErrors.CodeUnknown, "unknown: malformed directory response")
	}
	// Both fields must be present; an empty name is passed through as sent.
	if wire.Name == nil || wire.ID == nil {
		return Profile{}, dErrors.New(dErrors.CodeUnknown, "unknown: directory response missing name or id")
	}
	return Profile{Name: *wire.Name, ID: *wire.ID}, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidUsername:
		return metrics.OutcomeInvalidUsername
	case dErrors.CodeTransport:
		return metrics.OutcomeTransport
	default:
		return metrics.OutcomeUnknown
	}
}

// compact renders id without hyphens.
func compact(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
