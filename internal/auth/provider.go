package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-admin-data/internal/logging"
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

var (
	ErrNoSession     = errors.New("auth: no active session")
	ErrTokenMissing  = errors.New("auth: login response carried no token")
	ErrStoreRequired = errors.New("auth: token store is required")
)

const (
	loginFailedCode    = "ADMIN_LOGIN_FAILED"
	sessionMissingCode = "ADMIN_SESSION_MISSING"
)

const defaultRedirect = "/"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Provider implements the bearer-token session lifecycle against the backend
// login endpoint. It shares the token store with the REST client and the
// expiry watchdog.
type Provider struct {
	client *rest.Client
	store  interfaces.TokenStore
	logger interfaces.Logger
}

var _ interfaces.AuthProvider = (*Provider)(nil)

// NewProvider wires the auth provider over the shared client and store.
func NewProvider(client *rest.Client, store interfaces.TokenStore, logger interfaces.Logger) *Provider {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Provider{client: client, store: store, logger: logger}
}

// Login exchanges credentials for a bearer token and persists it. Rejected
// credentials come back as an unsuccessful result, not an error; only
// transport and encoding failures surface as errors.
func (p *Provider) Login(ctx context.Context, email, password string) (interfaces.LoginResult, error) {
	if p.store == nil {
		return interfaces.LoginResult{}, ErrStoreRequired
	}

	endpoint, err := p.client.Endpoints().Login()
	if err != nil {
		return interfaces.LoginResult{}, err
	}

	raw, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return interfaces.LoginResult{}, goerrors.Wrap(err, goerrors.CategoryValidation, "login payload encoding failed").
			WithTextCode(loginFailedCode)
	}

	payload, err := p.client.Do(ctx, http.MethodPost, endpoint, nil, &rest.Body{
		ContentType: "application/json",
		Reader:      bytes.NewReader(raw),
	})
	if err != nil {
		if rejected(err) {
			p.logger.Warn("auth.login.rejected", "email", email)
			return interfaces.LoginResult{
				Success: false,
				Message: "Invalid email or password",
			}, nil
		}
		return interfaces.LoginResult{}, err
	}

	token := tokenField(payload)
	if token == "" {
		return interfaces.LoginResult{}, goerrors.Wrap(ErrTokenMissing, goerrors.CategoryAuth, "login response missing token").
			WithTextCode(loginFailedCode)
	}

	if err := p.store.Set(ctx, token); err != nil {
		return interfaces.LoginResult{}, err
	}

	p.logger.Info("auth.login.succeeded", "email", email)
	return interfaces.LoginResult{
		Success:  true,
		Redirect: defaultRedirect,
	}, nil
}

// Logout discards the persisted token. Clearing an absent session is not an
// error; logout is idempotent.
func (p *Provider) Logout(ctx context.Context) (interfaces.LoginResult, error) {
	if p.store != nil {
		if err := p.store.Clear(ctx); err != nil {
			return interfaces.LoginResult{}, err
		}
	}
	p.logger.Info("auth.logout")
	return interfaces.LoginResult{
		Success:  true,
		Redirect: "/login",
	}, nil
}

// Check reports whether a session token is present in storage. Presence is
// the whole contract: expiry enforcement belongs to the watchdog, and the
// backend is the authority on whether a token is still honored.
func (p *Provider) Check(ctx context.Context) bool {
	if p.store == nil {
		return false
	}
	token, err := p.store.Get(ctx)
	return err == nil && token != ""
}

// Identity decodes the operator identity out of the stored token claims.
func (p *Provider) Identity(ctx context.Context) (*interfaces.Identity, error) {
	if p.store == nil {
		return nil, ErrStoreRequired
	}
	token, err := p.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, goerrors.Wrap(ErrNoSession, goerrors.CategoryAuth, "no session token stored").
			WithTextCode(sessionMissingCode)
	}
	claims, err := parseClaims(token)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "session token unreadable").
			WithTextCode(sessionMissingCode)
	}
	return identityFromClaims(claims), nil
}

// rejected reports whether the error is the backend refusing credentials.
func rejected(err error) bool {
	var statusErr *rest.StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.StatusCode == http.StatusUnauthorized ||
		statusErr.StatusCode == http.StatusForbidden ||
		statusErr.StatusCode == http.StatusBadRequest
}

// tokenField digs the token out of the login response, tolerating both bare
// and enveloped shapes.
func tokenField(payload any) string {
	body, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"token", "access_token"} {
		if token, ok := body[key].(string); ok && token != "" {
			return token
		}
	}
	if data, ok := body["data"].(map[string]any); ok {
		for _, key := range []string{"token", "access_token"} {
			if token, ok := data[key].(string); ok && token != "" {
				return token
			}
		}
	}
	return ""
}
