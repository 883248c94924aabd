package repository

import (
	"context"

	"boutique/internal/domain/entity"
)

// SessionRepository hands out exclusive access to per-session storefront
// state. It plays the role a transaction manager plays for a database: the
// use case layer describes the mutation as a function and the repository
// guarantees no other request touches the same session concurrently.
type SessionRepository interface {
	// Execute runs fn with exclusive access to the session's state,
	// creating the session on first use. State mutated inside fn is
	// visible to subsequent executions for the same session id.
	Execute(ctx context.Context, sessionID string, fn func(state *entity.SessionState) error) error

	// Delete drops a session and all of its state. Unknown ids are ignored.
	Delete(ctx context.Context, sessionID string) error
}
