package draft

import "context"

// OrderRepository reads the configured draft order.
type OrderRepository interface {
	ListOrder(ctx context.Context) ([]Slot, error)
}

// MockDraftRepository stores ephemeral mock draft sessions.
type MockDraftRepository interface {
	Create(ctx context.Context, d MockDraft) error
	Get(ctx context.Context, id string) (MockDraft, bool, error)
	// Update runs fn under the repository lock and stores the result when fn
	// returns nil.
	Update(ctx context.Context, id string, fn func(d *MockDraft) error) (MockDraft, error)
}
