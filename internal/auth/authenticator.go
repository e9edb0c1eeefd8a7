package auth

import "context"

// Authenticator checks a credential presented at login.
// This abstraction allows swapping the shared password for another method
// without changing the service layer code.
type Authenticator interface {
	// Authenticate returns nil if the credential unlocks the gate.
	Authenticate(ctx context.Context, credential string) error
}
