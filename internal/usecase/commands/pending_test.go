//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/pending"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	commandsmock "storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PendingCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockActions *commandsmock.MockPendingActions
	mockGateway *commandsmock.MockCommerceGateway
	mockEvents  *commandsmock.MockEventSink
	mockAuth    *commandsmock.MockAuthVerifier
	commands    commands.PendingCommands

	userID uuid.UUID
	token  string
}

func (s *PendingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActions = commandsmock.NewMockPendingActions(s.ctrl)
	s.mockGateway = commandsmock.NewMockCommerceGateway(s.ctrl)
	s.mockEvents = commandsmock.NewMockEventSink(s.ctrl)
	s.mockAuth = commandsmock.NewMockAuthVerifier(s.ctrl)
	// settle delay 0: テストでは待たない
	s.commands = commands.NewPendingCommands(s.mockActions, s.mockGateway, s.mockEvents, s.mockAuth, 0)

	s.userID = uuid.New()
	s.token = "valid-access-token"
}

func (s *PendingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPendingCommandsSuite(t *testing.T) {
	suite.Run(t, new(PendingCommandsTestSuite))
}

func (s *PendingCommandsTestSuite) TestSaveIntendedAction() {
	s.Run("正常な意図を保存できる", func() {
		s.mockActions.EXPECT().Save(gomock.Any(), s.userID, builder.MustPendingAction(s.T())).Return(nil).Times(1)

		err := s.commands.SaveIntendedAction(context.Background(), s.userID, commands.SaveActionInput{
			Kind:         "add-to-cart",
			ProductID:    "P1",
			Variant:      "M",
			Quantity:     1,
			RedirectPath: "/products/P1",
		})
		s.NoError(err)
	})

	s.Run("未知の種別は保存前に弾く", func() {
		err := s.commands.SaveIntendedAction(context.Background(), s.userID, commands.SaveActionInput{
			Kind:      "buy-now",
			ProductID: "P1",
		})
		s.ErrorIs(err, commands.ErrInvalidAction)
	})

	s.Run("カート投入はvariant必須", func() {
		err := s.commands.SaveIntendedAction(context.Background(), s.userID, commands.SaveActionInput{
			Kind:      "add-to-cart",
			ProductID: "P1",
			Quantity:  1,
		})
		s.ErrorIs(err, commands.ErrInvalidAction)
	})
}

func (s *PendingCommandsTestSuite) TestReplay_Success() {
	action := builder.MustPendingAction(s.T())

	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).Return(action, nil).Times(1)
	s.mockActions.EXPECT().ClaimReplay(gomock.Any(), s.userID).Return(true, nil).Times(1)
	// バックエンド呼び出しはちょうど1回
	s.mockGateway.EXPECT().AddCartItem(gomock.Any(), s.token, "P1", "M", 1).Return(nil).Times(1)
	s.mockActions.EXPECT().Clear(gomock.Any(), s.userID).Return(nil).Times(1)
	s.mockEvents.EXPECT().Notify(gomock.Any(), s.userID, "Added to cart", gomock.Any(), true).Times(1)
	s.mockEvents.EXPECT().Navigate(gomock.Any(), s.userID, "/products/P1").Times(1)
	s.mockActions.EXPECT().ReleaseClaim(gomock.Any(), s.userID).Return(nil).Times(1)

	result, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeReplayed, result.Outcome)
	s.Equal("/products/P1", result.RedirectPath)
}

func (s *PendingCommandsTestSuite) TestReplay_Wishlist() {
	action, err := builder.NewPendingActionBuilder().With(func(b *builder.PendingActionBuilder) {
		b.Kind = "add-to-wishlist"
		b.Variant = ""
		b.RedirectPath = "/wishlist"
	}).BuildDomain()
	s.Require().NoError(err)

	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).Return(action, nil).Times(1)
	s.mockActions.EXPECT().ClaimReplay(gomock.Any(), s.userID).Return(true, nil).Times(1)
	s.mockGateway.EXPECT().AddWishlistItem(gomock.Any(), s.token, "P1").Return(nil).Times(1)
	s.mockActions.EXPECT().Clear(gomock.Any(), s.userID).Return(nil).Times(1)
	s.mockEvents.EXPECT().Notify(gomock.Any(), s.userID, "Added to wishlist", gomock.Any(), true).Times(1)
	s.mockEvents.EXPECT().Navigate(gomock.Any(), s.userID, "/wishlist").Times(1)
	s.mockActions.EXPECT().ReleaseClaim(gomock.Any(), s.userID).Return(nil).Times(1)

	result, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeReplayed, result.Outcome)
}

func (s *PendingCommandsTestSuite) TestReplay_NoAction() {
	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).
		Return(pending.Action{}, infra.WrapRepoErr("not found", errors.New("no record"), infra.KindNotFound)).Times(1)

	result, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeNone, result.Outcome)
}

func (s *PendingCommandsTestSuite) TestReplay_AuthNotSettled() {
	s.Run("トークン無効なら何もしない", func() {
		s.mockAuth.EXPECT().Verify(s.token).Return(uuid.Nil, errors.New("expired")).Times(1)

		result, err := s.commands.Replay(context.Background(), s.userID, s.token)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNone, result.Outcome)
	})

	s.Run("別ユーザーのトークンなら何もしない", func() {
		s.mockAuth.EXPECT().Verify(s.token).Return(uuid.New(), nil).Times(1)

		result, err := s.commands.Replay(context.Background(), s.userID, s.token)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNone, result.Outcome)
	})
}

// 同時リプレイは1回に収束する: クレームを取れなかった側はバックエンドを呼ばない
func (s *PendingCommandsTestSuite) TestReplay_ClaimLost() {
	action := builder.MustPendingAction(s.T())

	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).Return(action, nil).Times(1)
	s.mockActions.EXPECT().ClaimReplay(gomock.Any(), s.userID).Return(false, nil).Times(1)

	result, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeSkipped, result.Outcome)
}

// バックエンド失敗は再試行せず破棄し、エラートーストを出す
func (s *PendingCommandsTestSuite) TestReplay_BackendFailure() {
	action := builder.MustPendingAction(s.T())

	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).Return(action, nil).Times(1)
	s.mockActions.EXPECT().ClaimReplay(gomock.Any(), s.userID).Return(true, nil).Times(1)
	s.mockGateway.EXPECT().AddCartItem(gomock.Any(), s.token, "P1", "M", 1).
		Return(infra.WrapRepoErr("rejected", errors.New("422"), infra.KindRejected)).Times(1)
	s.mockActions.EXPECT().Clear(gomock.Any(), s.userID).Return(nil).Times(1)
	s.mockEvents.EXPECT().Notify(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), false).Times(1)
	s.mockActions.EXPECT().ReleaseClaim(gomock.Any(), s.userID).Return(nil).Times(1)

	result, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeFailed, result.Outcome)
}

// 保存後にスキーマが変わる等で不正になった意図は、バックエンドを呼ばずに破棄する
func (s *PendingCommandsTestSuite) TestReplay_InvalidStoredAction() {
	invalid := pending.RestoreAction(pending.KindAddToCart, "", "", 1, "/products/P1")

	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).Return(invalid, nil).Times(1)
	s.mockActions.EXPECT().ClaimReplay(gomock.Any(), s.userID).Return(true, nil).Times(1)
	s.mockActions.EXPECT().Clear(gomock.Any(), s.userID).Return(nil).Times(1)
	s.mockEvents.EXPECT().Notify(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), false).Times(1)
	s.mockActions.EXPECT().ReleaseClaim(gomock.Any(), s.userID).Return(nil).Times(1)

	result, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeDiscarded, result.Outcome)
}

func (s *PendingCommandsTestSuite) TestReplay_StorageUnavailable() {
	s.mockAuth.EXPECT().Verify(s.token).Return(s.userID, nil).Times(1)
	s.mockActions.EXPECT().Get(gomock.Any(), s.userID).
		Return(pending.Action{}, infra.WrapRepoErr("redis down", errors.New("dial timeout"), infra.KindUnavailable)).Times(1)

	_, err := s.commands.Replay(context.Background(), s.userID, s.token)
	s.ErrorIs(err, commands.ErrActionUnavailable)
}
