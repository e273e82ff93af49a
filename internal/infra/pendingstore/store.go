// Package pendingstore persists the single deferred storefront intent per
// user, plus the replay claim that makes concurrent replay attempts settle to
// exactly one winner.
package pendingstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/domain/pending"
	"storefront/internal/infra"
	"storefront/internal/infra/kv"

	"github.com/google/uuid"
)

type actionRecord struct {
	Kind         string `json:"type"`
	ProductID    string `json:"product_id"`
	Variant      string `json:"variant,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	RedirectPath string `json:"redirect_path,omitempty"`
}

type Store struct {
	kv       kv.Store
	codec    kv.Codec
	claimTTL time.Duration
}

func NewStore(kvStore kv.Store, claimTTL time.Duration) *Store {
	return &Store{kv: kvStore, codec: kv.NewCodec(), claimTTL: claimTTL}
}

func actionKey(userID uuid.UUID) string {
	return fmt.Sprintf("pending-action:%s", userID)
}

func claimKey(userID uuid.UUID) string {
	return fmt.Sprintf("pending-action-claim:%s", userID)
}

// Save overwrites any previously captured action; there is no queue.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, action pending.Action) error {
	record := actionRecord{
		Kind:         action.Kind().String(),
		ProductID:    action.ProductID(),
		Variant:      action.Variant(),
		Quantity:     action.Quantity(),
		RedirectPath: action.RedirectPath(),
	}
	data, err := s.codec.Encode(record)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pending action", err, infra.KindCorrupt)
	}
	if err := s.kv.Set(ctx, actionKey(userID), data, 0); err != nil {
		return infra.WrapRepoErr("failed to write pending action", err, infra.KindUnavailable)
	}
	return nil
}

// Get returns the stored action, or a KindNotFound error when there is none.
// An unreadable record is cleared and reported as absent.
func (s *Store) Get(ctx context.Context, userID uuid.UUID) (pending.Action, error) {
	data, err := s.kv.Get(ctx, actionKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return pending.Action{}, infra.WrapRepoErr("no pending action", err, infra.KindNotFound)
	}
	if err != nil {
		return pending.Action{}, infra.WrapRepoErr("failed to read pending action", err, infra.KindUnavailable)
	}

	var record actionRecord
	if err := s.codec.Decode(data, &record); err != nil {
		slog.Warn("discarding unreadable pending action", "user_id", userID, "error", err.Error())
		_ = s.Clear(ctx, userID)
		return pending.Action{}, infra.WrapRepoErr("no pending action", err, infra.KindNotFound)
	}

	kind, err := pending.NewKind(record.Kind)
	if err != nil {
		slog.Warn("discarding pending action of unknown kind", "user_id", userID, "kind", record.Kind)
		_ = s.Clear(ctx, userID)
		return pending.Action{}, infra.WrapRepoErr("no pending action", err, infra.KindNotFound)
	}

	action, err := pending.NewAction(kind, record.ProductID, record.Variant, record.Quantity, record.RedirectPath)
	if err != nil {
		// An incomplete record (e.g. cart add without variant) must still reach
		// the coordinator so it can surface a non-retryable failure; rebuild it
		// without validation.
		return pending.RestoreAction(kind, record.ProductID, record.Variant, record.Quantity, record.RedirectPath), nil
	}
	return action, nil
}

// Clear is idempotent.
func (s *Store) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.kv.Remove(ctx, actionKey(userID)); err != nil {
		return infra.WrapRepoErr("failed to clear pending action", err, infra.KindUnavailable)
	}
	return nil
}

// ClaimReplay takes the per-user replay claim. Only the caller that wins the
// claim may dispatch the backend call; the TTL frees the claim if that caller
// crashes before reaching a terminal outcome.
func (s *Store) ClaimReplay(ctx context.Context, userID uuid.UUID) (bool, error) {
	won, err := s.kv.SetNX(ctx, claimKey(userID), []byte("1"), s.claimTTL)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim replay", err, infra.KindUnavailable)
	}
	return won, nil
}

// ReleaseClaim drops the claim after terminal handling.
func (s *Store) ReleaseClaim(ctx context.Context, userID uuid.UUID) error {
	if err := s.kv.Remove(ctx, claimKey(userID)); err != nil {
		return infra.WrapRepoErr("failed to release replay claim", err, infra.KindUnavailable)
	}
	return nil
}
