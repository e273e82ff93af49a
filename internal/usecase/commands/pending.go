package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/pending"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAction     = errs.New("invalid pending action")
	ErrActionUnavailable = errs.New("pending action storage unavailable")
)

type SaveActionInput struct {
	Kind         string
	ProductID    string
	Variant      string
	Quantity     int
	RedirectPath string
}

type ReplayOutcome string

const (
	// OutcomeReplayed: the single backend call succeeded.
	OutcomeReplayed ReplayOutcome = "replayed"
	// OutcomeFailed: the backend call failed; the action was discarded, not retried.
	OutcomeFailed ReplayOutcome = "failed"
	// OutcomeDiscarded: the stored action was invalid; discarded without a backend call.
	OutcomeDiscarded ReplayOutcome = "discarded"
	// OutcomeNone: nothing to replay, or the session token did not verify.
	OutcomeNone ReplayOutcome = "none"
	// OutcomeSkipped: another concurrent attempt holds the replay claim.
	OutcomeSkipped ReplayOutcome = "skipped"
)

type ReplayResult struct {
	Outcome      ReplayOutcome
	RedirectPath string
}

type PendingCommands interface {
	SaveIntendedAction(ctx context.Context, userID uuid.UUID, input SaveActionInput) error
	ClearPendingAction(ctx context.Context, userID uuid.UUID) error
	// Replay executes the stored action against the backend at most once per
	// stored intent: whatever the outcome, terminal handling clears the record
	// before any later attempt can observe it.
	Replay(ctx context.Context, userID uuid.UUID, token string) (*ReplayResult, error)
}

type pendingCommandsImpl struct {
	actions     PendingActions
	gateway     CommerceGateway
	events      EventSink
	auth        AuthVerifier
	settleDelay time.Duration
}

func NewPendingCommands(
	actions PendingActions,
	gateway CommerceGateway,
	events EventSink,
	auth AuthVerifier,
	settleDelay time.Duration,
) PendingCommands {
	return &pendingCommandsImpl{
		actions:     actions,
		gateway:     gateway,
		events:      events,
		auth:        auth,
		settleDelay: settleDelay,
	}
}

func (p *pendingCommandsImpl) SaveIntendedAction(ctx context.Context, userID uuid.UUID, input SaveActionInput) error {
	kind, err := pending.NewKind(input.Kind)
	if err != nil {
		return errs.Mark(err, ErrInvalidAction)
	}

	action, err := pending.NewAction(kind, input.ProductID, input.Variant, input.Quantity, input.RedirectPath)
	if err != nil {
		return errs.Mark(err, ErrInvalidAction)
	}

	if err := p.actions.Save(ctx, userID, action); err != nil {
		return errs.Mark(err, ErrActionUnavailable)
	}
	return nil
}

func (p *pendingCommandsImpl) ClearPendingAction(ctx context.Context, userID uuid.UUID) error {
	if err := p.actions.Clear(ctx, userID); err != nil {
		return errs.Mark(err, ErrActionUnavailable)
	}
	return nil
}

func (p *pendingCommandsImpl) Replay(ctx context.Context, userID uuid.UUID, token string) (*ReplayResult, error) {
	// Let auth state propagate before reading it; login responses race the
	// replay kick.
	if p.settleDelay > 0 {
		select {
		case <-time.After(p.settleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	verifiedID, err := p.auth.Verify(token)
	if err != nil || verifiedID != userID {
		return &ReplayResult{Outcome: OutcomeNone}, nil
	}

	action, err := p.actions.Get(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ReplayResult{Outcome: OutcomeNone}, nil
		}
		return nil, errs.Mark(err, ErrActionUnavailable)
	}

	won, err := p.actions.ClaimReplay(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrActionUnavailable)
	}
	if !won {
		return &ReplayResult{Outcome: OutcomeSkipped}, nil
	}

	return p.dispatch(ctx, userID, token, action), nil
}

// dispatch performs the single replay attempt and its terminal handling. The
// record is cleared once the outcome is known - not before, so a crash
// mid-call keeps the action (the claim TTL frees it) - and always before the
// claim is released, so no later attempt can observe a consumed action.
func (p *pendingCommandsImpl) dispatch(ctx context.Context, userID uuid.UUID, token string, action pending.Action) *ReplayResult {
	defer func() {
		if err := p.actions.ReleaseClaim(ctx, userID); err != nil {
			slog.Warn("failed to release replay claim", "user_id", userID, "error", err.Error())
		}
	}()

	if err := action.Validate(); err != nil {
		slog.Warn("discarding invalid pending action", "user_id", userID, "kind", action.Kind().String(), "error", err.Error())
		p.clear(ctx, userID)
		p.events.Notify(ctx, userID, "Something went wrong", "We couldn't finish your last action. Please try again.", false)
		return &ReplayResult{Outcome: OutcomeDiscarded}
	}

	var callErr error
	switch action.Kind() {
	case pending.KindAddToCart:
		callErr = p.gateway.AddCartItem(ctx, token, action.ProductID(), action.Variant(), action.Quantity())
	case pending.KindAddToWishlist:
		callErr = p.gateway.AddWishlistItem(ctx, token, action.ProductID())
	}

	p.clear(ctx, userID)

	if callErr != nil {
		slog.Warn("pending action replay failed", "user_id", userID, "kind", action.Kind().String(), "error", callErr.Error())
		p.events.Notify(ctx, userID, "Something went wrong", "We couldn't finish your last action. Please try again.", false)
		return &ReplayResult{Outcome: OutcomeFailed}
	}

	switch action.Kind() {
	case pending.KindAddToCart:
		p.events.Notify(ctx, userID, "Added to cart", "Your item is waiting in the cart.", true)
	case pending.KindAddToWishlist:
		p.events.Notify(ctx, userID, "Added to wishlist", "Your item was saved to the wishlist.", true)
	}
	p.events.Navigate(ctx, userID, action.RedirectPath())

	return &ReplayResult{Outcome: OutcomeReplayed, RedirectPath: action.RedirectPath()}
}

func (p *pendingCommandsImpl) clear(ctx context.Context, userID uuid.UUID) {
	if err := p.actions.Clear(ctx, userID); err != nil {
		slog.Error("failed to clear consumed pending action", "user_id", userID, "error", err.Error())
	}
}
