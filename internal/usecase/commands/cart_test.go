//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	commandsmock "storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSnapshots *commandsmock.MockCartSnapshots
	commands      commands.CartCommands

	userID uuid.UUID
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSnapshots = commandsmock.NewMockCartSnapshots(s.ctrl)
	s.commands = commands.NewCartCommands(s.mockSnapshots)
	s.userID = uuid.New()
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) addInput() commands.AddItemInput {
	return commands.AddItemInput{
		ProductID:      "P1",
		Variant:        "M",
		Quantity:       2,
		UnitPriceCents: 5000,
		Name:           "Runner Sneaker",
	}
}

func (s *CartCommandsTestSuite) TestAddItem() {
	s.Run("空のカートに追加", func() {
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(cart.NewCart(), nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)
		s.Len(view.Items, 1)
		s.Equal(int64(10000), view.SubtotalCents)
	})

	s.Run("同一キーはマージされる", func() {
		existing := builder.NewCartBuilder().WithLine("P1", "M", 1, 5000).Build(s.T())
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(existing, nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)
		s.Len(view.Items, 1)
		s.Equal(3, view.Items[0].Quantity)
		s.Equal(int64(15000), view.SubtotalCents)
	})

	s.Run("負の価格は保存前に弾く", func() {
		input := s.addInput()
		input.UnitPriceCents = -1

		_, err := s.commands.AddItem(context.Background(), s.userID, input)
		s.ErrorIs(err, commands.ErrInvalidItem)
	})

	s.Run("保存失敗でも新しい状態を返す", func() {
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(cart.NewCart(), nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).
			Return(infra.WrapRepoErr("redis down", errors.New("dial timeout"), infra.KindUnavailable)).Times(1)

		view, err := s.commands.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)
		s.Len(view.Items, 1)
	})

	s.Run("読み込み失敗はエラー", func() {
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).
			Return(nil, infra.WrapRepoErr("redis down", errors.New("dial timeout"), infra.KindUnavailable)).Times(1)

		_, err := s.commands.AddItem(context.Background(), s.userID, s.addInput())
		s.ErrorIs(err, commands.ErrCartUnavailable)
	})
}

func (s *CartCommandsTestSuite) TestUpdateQuantity() {
	s.Run("数量を上書きする", func() {
		existing := builder.NewCartBuilder().WithLine("P1", "M", 2, 5000).Build(s.T())
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(existing, nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.UpdateQuantity(context.Background(), s.userID, "P1", "M", 5)
		s.Require().NoError(err)
		s.Equal(5, view.Items[0].Quantity)
		s.Equal(int64(25000), view.SubtotalCents)
	})

	s.Run("0以下で行が消える", func() {
		existing := builder.NewCartBuilder().WithLine("P1", "M", 2, 5000).Build(s.T())
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(existing, nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.UpdateQuantity(context.Background(), s.userID, "P1", "M", 0)
		s.Require().NoError(err)
		s.Empty(view.Items)
		s.Zero(view.SubtotalCents)
	})

	s.Run("存在しない行はエラー", func() {
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(cart.NewCart(), nil).Times(1)

		_, err := s.commands.UpdateQuantity(context.Background(), s.userID, "P9", "", 3)
		s.ErrorIs(err, commands.ErrCartLineNotFound)
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	s.Run("行を削除する", func() {
		existing := builder.NewCartBuilder().
			WithLine("P1", "M", 2, 5000).
			WithLine("P2", "", 1, 3000).
			Build(s.T())
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(existing, nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.RemoveItem(context.Background(), s.userID, "P1", "M")
		s.Require().NoError(err)
		s.Len(view.Items, 1)
		s.Equal("P2", view.Items[0].ProductID)
	})

	s.Run("存在しない行の削除はno-op", func() {
		existing := builder.NewCartBuilder().WithLine("P1", "M", 2, 5000).Build(s.T())
		s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(existing, nil).Times(1)
		s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.RemoveItem(context.Background(), s.userID, "P9", "")
		s.Require().NoError(err)
		s.Len(view.Items, 1)
	})
}

func (s *CartCommandsTestSuite) TestClearCart() {
	existing := builder.NewCartBuilder().WithLine("P1", "M", 2, 5000).Build(s.T())
	s.mockSnapshots.EXPECT().Load(gomock.Any(), s.userID).Return(existing, nil).Times(1)
	s.mockSnapshots.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)

	view, err := s.commands.ClearCart(context.Background(), s.userID)
	s.Require().NoError(err)
	s.Empty(view.Items)
	s.Zero(view.SubtotalCents)
}
