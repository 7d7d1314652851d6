//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffintime-api/internal/domain/order"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/shared"
	commandsmock "tiffintime-api/tests/mock/commands"
	sharedmock "tiffintime-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	h        *txHarness
	orders   *sharedmock.MockOrderRepository
	notifier *commandsmock.MockDeliveryNotifier
	cmds     commands.OrderCommands

	userID   uuid.UUID
	vendorID uuid.UUID
	itemID   uuid.UUID
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.h = newTxHarness(s.T())
	s.orders = sharedmock.NewMockOrderRepository(s.h.ctrl)
	s.notifier = commandsmock.NewMockDeliveryNotifier(s.h.ctrl)
	s.h.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.cmds = commands.NewOrderCommands(s.h.uow, s.notifier, fixedClock())

	s.userID = uuid.New()
	s.vendorID = uuid.New()
	s.itemID = uuid.New()
}

func (s *OrderCommandsTestSuite) placeInput() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		VendorID:   s.vendorID,
		MenuItemID: s.itemID,
		Quantity:   3,
		UnitPrice:  45.50,
		Pickup:     "Hall 4, gate B",
	}
}

func (s *OrderCommandsTestSuite) storedOrder(delivered bool) *order.Order {
	return order.Reconstruct(uuid.New(), s.userID, s.vendorID, s.itemID, 2, 60, 120, "Library",
		time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC), delivered, nil)
}

func (s *OrderCommandsTestSuite) TestPlace_Success() {
	ctx := context.Background()
	s.h.reads.EXPECT().VendorExists(ctx, s.vendorID).Return(true, nil)
	s.h.reads.EXPECT().MenuItemByID(ctx, s.itemID).Return(&shared.MenuItemSnapshot{
		ID: s.itemID, VendorID: s.vendorID, Name: "Chicken Biryani", Price: 45.50,
	}, nil)

	var created *order.Order
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, o *order.Order) error {
			created = o
			return nil
		})

	result, err := s.cmds.Place(ctx, s.userID, s.placeInput())

	s.Require().NoError(err)
	s.Equal(136.50, result.TotalPrice)
	s.Require().NotNil(created)
	s.Equal(result.OrderID, created.ID())
	s.Equal(s.userID, created.UserID())
	s.False(created.IsDelivered())
	s.Equal("Hall 4, gate B", created.Pickup())
}

func (s *OrderCommandsTestSuite) TestPlace_Rejections() {
	ctx := context.Background()

	s.Run("invalid quantity never reaches the store", func() {
		in := s.placeInput()
		in.Quantity = 0
		_, err := s.cmds.Place(ctx, s.userID, in)
		s.ErrorIs(err, order.ErrInvalidQuantity)
	})

	s.Run("unknown vendor", func() {
		s.h.reads.EXPECT().VendorExists(ctx, s.vendorID).Return(false, nil)
		_, err := s.cmds.Place(ctx, s.userID, s.placeInput())
		s.ErrorIs(err, commands.ErrVendorNotFound)
	})

	s.Run("unknown menu item", func() {
		s.h.reads.EXPECT().VendorExists(ctx, s.vendorID).Return(true, nil)
		s.h.reads.EXPECT().MenuItemByID(ctx, s.itemID).Return(nil, notFound("menu item"))
		_, err := s.cmds.Place(ctx, s.userID, s.placeInput())
		s.ErrorIs(err, commands.ErrMenuItemNotFound)
	})

	s.Run("item from another vendor", func() {
		s.h.reads.EXPECT().VendorExists(ctx, s.vendorID).Return(true, nil)
		s.h.reads.EXPECT().MenuItemByID(ctx, s.itemID).Return(&shared.MenuItemSnapshot{
			ID: s.itemID, VendorID: uuid.New(),
		}, nil)
		_, err := s.cmds.Place(ctx, s.userID, s.placeInput())
		s.ErrorIs(err, commands.ErrItemVendorMismatch)
	})
}

func (s *OrderCommandsTestSuite) TestSetDelivered_NotifiesAfterCommit() {
	ctx := context.Background()
	stored := s.storedOrder(false)
	notice := &shared.OrderNoticeSnapshot{
		OrderID:    stored.ID(),
		Pickup:     "Library",
		TotalPrice: 120,
		UserEmail:  "student@example.com",
		UserName:   "Rafi",
		ItemName:   "Khichuri",
		VendorName: "Mama's Kitchen",
	}

	gomock.InOrder(
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil),
		s.orders.EXPECT().UpdateDelivered(gomock.Any(), gomock.Any(), stored).Return(nil),
		s.h.reads.EXPECT().OrderNotice(gomock.Any(), stored.ID()).Return(notice, nil),
		s.notifier.EXPECT().Enqueue(*notice).Return(true),
	)

	result, err := s.cmds.SetDelivered(ctx, s.vendorID, stored.ID(), true)

	s.Require().NoError(err)
	s.True(result.IsDelivered)
	s.Equal(stored.ID(), result.OrderID)
	s.Equal(120.0, result.TotalPrice)
}

func (s *OrderCommandsTestSuite) TestSetDelivered_NoNoticeWithoutTransition() {
	ctx := context.Background()

	s.Run("already delivered", func() {
		stored := s.storedOrder(true)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
		s.orders.EXPECT().UpdateDelivered(gomock.Any(), gomock.Any(), stored).Return(nil)

		result, err := s.cmds.SetDelivered(ctx, s.vendorID, stored.ID(), true)
		s.Require().NoError(err)
		s.True(result.IsDelivered)
	})

	s.Run("reverted to undelivered", func() {
		stored := s.storedOrder(true)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
		s.orders.EXPECT().UpdateDelivered(gomock.Any(), gomock.Any(), stored).Return(nil)

		result, err := s.cmds.SetDelivered(ctx, s.vendorID, stored.ID(), false)
		s.Require().NoError(err)
		s.False(result.IsDelivered)
	})
}

func (s *OrderCommandsTestSuite) TestSetDelivered_NoticeLookupFailureKeepsUpdate() {
	stored := s.storedOrder(false)
	s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
	s.orders.EXPECT().UpdateDelivered(gomock.Any(), gomock.Any(), stored).Return(nil)
	s.h.reads.EXPECT().OrderNotice(gomock.Any(), stored.ID()).Return(nil, errors.New("connection reset"))

	result, err := s.cmds.SetDelivered(context.Background(), s.vendorID, stored.ID(), true)

	s.Require().NoError(err)
	s.True(result.IsDelivered)
}

func (s *OrderCommandsTestSuite) TestSetDelivered_Failures() {
	ctx := context.Background()

	s.Run("unknown order", func() {
		id := uuid.New()
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound("order"))
		_, err := s.cmds.SetDelivered(ctx, s.vendorID, id, true)
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("another vendor's order", func() {
		stored := s.storedOrder(false)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
		_, err := s.cmds.SetDelivered(ctx, uuid.New(), stored.ID(), true)
		s.ErrorIs(err, order.ErrNotVendorOrder)
	})

	s.Run("update failure sends nothing", func() {
		stored := s.storedOrder(false)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
		s.orders.EXPECT().UpdateDelivered(gomock.Any(), gomock.Any(), stored).Return(errors.New("deadlock"))
		_, err := s.cmds.SetDelivered(ctx, s.vendorID, stored.ID(), true)
		s.Error(err)
	})
}

func TestOrderCommands_RollbackSkipsNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)
	orders := sharedmock.NewMockOrderRepository(ctrl)
	notifier := commandsmock.NewMockDeliveryNotifier(ctrl)

	vendorID := uuid.New()
	stored := order.Reconstruct(uuid.New(), uuid.New(), vendorID, uuid.New(), 1, 50, 50, "Lab 2",
		time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC), false, nil)
	commitErr := errors.New("commit failed")

	tx.EXPECT().DB().Return(nil).AnyTimes()
	tx.EXPECT().Orders().Return(orders).AnyTimes()
	tx.EXPECT().Reads().Return(reads).AnyTimes()
	orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
	orders.EXPECT().UpdateDelivered(gomock.Any(), gomock.Any(), stored).Return(nil)
	reads.EXPECT().OrderNotice(gomock.Any(), stored.ID()).Return(&shared.OrderNoticeSnapshot{OrderID: stored.ID()}, nil)
	// the callback succeeds but the commit does not
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			require.NoError(t, fn(ctx, tx))
			return commitErr
		})

	cmds := commands.NewOrderCommands(uow, notifier, fixedClock())
	_, err := cmds.SetDelivered(context.Background(), vendorID, stored.ID(), true)

	assert.ErrorIs(t, err, commitErr)
}
