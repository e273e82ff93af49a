package queries

import (
	"context"

	"storefront/internal/domain/pending"
	"storefront/internal/infra"

	"github.com/google/uuid"
)

type PendingQueries interface {
	// GetPendingAction returns nil (not an error) when no action is stored.
	GetPendingAction(ctx context.Context, userID uuid.UUID) (*PendingActionView, error)
}

type PendingActionReadStore interface {
	Get(ctx context.Context, userID uuid.UUID) (pending.Action, error)
}

type pendingQueriesImpl struct {
	actions PendingActionReadStore
}

func NewPendingQueries(actions PendingActionReadStore) PendingQueries {
	return &pendingQueriesImpl{actions: actions}
}

func (q *pendingQueriesImpl) GetPendingAction(ctx context.Context, userID uuid.UUID) (*PendingActionView, error) {
	action, err := q.actions.Get(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &PendingActionView{
		Kind:         action.Kind().String(),
		ProductID:    action.ProductID(),
		Variant:      action.Variant(),
		Quantity:     action.Quantity(),
		RedirectPath: action.RedirectPath(),
	}, nil
}
