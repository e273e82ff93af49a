//go:build unit || e2e

package builder

import (
	"testing"

	"storefront/internal/domain/pending"

	"github.com/stretchr/testify/require"
)

type PendingActionBuilder struct {
	Kind         string
	ProductID    string
	Variant      string
	Quantity     int
	RedirectPath string
}

func NewPendingActionBuilder() *PendingActionBuilder {
	return &PendingActionBuilder{
		Kind:         "add-to-cart",
		ProductID:    "P1",
		Variant:      "M",
		Quantity:     1,
		RedirectPath: "/products/P1",
	}
}

func (b *PendingActionBuilder) With(mutate func(*PendingActionBuilder)) *PendingActionBuilder {
	mutate(b)
	return b
}

func (b *PendingActionBuilder) BuildDomain() (pending.Action, error) {
	kind, err := pending.NewKind(b.Kind)
	if err != nil {
		return pending.Action{}, err
	}
	return pending.NewAction(kind, b.ProductID, b.Variant, b.Quantity, b.RedirectPath)
}

// MustPendingAction builds the default valid action or fails the test.
func MustPendingAction(t *testing.T) pending.Action {
	t.Helper()
	action, err := NewPendingActionBuilder().BuildDomain()
	require.NoError(t, err)
	return action
}
