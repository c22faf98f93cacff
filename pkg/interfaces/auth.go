package interfaces

import "context"

// Identity describes the authenticated operator as far as the stored token
// reveals it. Fields are best effort; Subject is the only guaranteed value
// for a well-formed token.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// LoginResult reports the outcome of a credential exchange. Failures are
// values, not errors: transport problems surface as errors, rejected
// credentials as Success=false with a user-facing message.
type LoginResult struct {
	Success  bool
	Redirect string
	Message  string
}

// AuthProvider manages the bearer-token session for the data layer.
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context) (LoginResult, error)
	Check(ctx context.Context) bool
	Identity(ctx context.Context) (*Identity, error)
}

// TokenStore is the single piece of shared mutable state in the module: the
// persisted bearer token. Implementations must be safe for concurrent use;
// the request path and the expiry watchdog read it from separate goroutines.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
