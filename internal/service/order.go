package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/client"
	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
)

type OrderService interface {
	// CreateOrder runs checkout: recompute the cart total server-side, charge
	// the processor, then persist the order snapshot and clear the cart in
	// one transaction. A processor failure aborts before anything persists.
	CreateOrder(ctx context.Context, caller *model.User, sourceToken string) (*model.Order, error)
	// Order returns one order; the owner or an ADMIN may view it.
	Order(ctx context.Context, caller *model.User, id string) (*model.Order, error)
	// Orders lists the caller's own orders.
	Orders(ctx context.Context, caller *model.User) ([]*model.Order, error)
}

type orderServiceImpl struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	paymentClient client.PaymentClient
	mailClient    client.MailClient
	currency      string
	logger        zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	paymentClient client.PaymentClient,
	mailClient client.MailClient,
	currency string,
	logger zerolog.Logger,
) OrderService {
	return &orderServiceImpl{
		db:            db,
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		paymentClient: paymentClient,
		mailClient:    mailClient,
		currency:      currency,
		logger:        logger,
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, caller *model.User, sourceToken string) (*model.Order, error) {
	if caller == nil {
		return nil, fmt.Errorf("%w: you must be signed in to complete this order", ErrNotAuthenticated)
	}

	cart, err := s.cartRepo.FindByUser(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: your cart is empty", ErrValidation)
	}

	var total int64
	for _, cartItem := range cart {
		if cartItem.Item == nil {
			return nil, fmt.Errorf("%w: cart references a missing item", ErrNotFound)
		}
		total += cartItem.Item.Price * int64(cartItem.Quantity)
	}

	charge, err := s.paymentClient.Charge(ctx, total, s.currency, sourceToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	orderID := uuid.NewString()
	orderItems := make([]model.OrderItem, len(cart))
	cartItemIDs := make([]string, len(cart))
	for i, cartItem := range cart {
		// Snapshot, deliberately dropping the item id.
		orderItems[i] = model.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     orderID,
			UserID:      caller.ID,
			Title:       cartItem.Item.Title,
			Description: cartItem.Item.Description,
			Price:       cartItem.Item.Price,
			Image:       cartItem.Item.Image,
			LargeImage:  cartItem.Item.LargeImage,
			Quantity:    cartItem.Quantity,
		}
		cartItemIDs[i] = cartItem.ID
	}

	order := &model.Order{
		ID:     orderID,
		UserID: caller.ID,
		Total:  charge.Amount,
		Charge: charge.ChargeID,
		Items:  orderItems,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		if err := s.cartRepo.DeleteByIDs(ctx, tx, cartItemIDs); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		// The charge already captured; surface loudly so the payment can be
		// reconciled by hand.
		s.logger.Error().Err(err).
			Str("user_id", caller.ID).
			Str("charge", charge.ChargeID).
			Int64("amount", charge.Amount).
			Msg("order persistence failed after successful charge")
		return nil, fmt.Errorf("persist order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", caller.ID).
		Int64("total", order.Total).
		Msg("order created")

	s.sendReceipt(ctx, caller, order)

	return order, nil
}

func (s *orderServiceImpl) Order(ctx context.Context, caller *model.User, id string) (*model.Order, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	ownsOrder := order.UserID == caller.ID
	isAdmin := CheckPermission(caller, []string{model.PermissionAdmin}) == nil
	if !ownsOrder && !isAdmin {
		return nil, fmt.Errorf("%w: you cannot view this order", ErrNotAuthorized)
	}

	return order, nil
}

func (s *orderServiceImpl) Orders(ctx context.Context, caller *model.User) ([]*model.Order, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	return s.orderRepo.FindByUser(ctx, caller.ID)
}

// sendReceipt is fire-and-forget; a mail failure never fails the checkout.
func (s *orderServiceImpl) sendReceipt(ctx context.Context, user *model.User, order *model.Order) {
	amount := decimal.New(order.Total, -2).StringFixed(2)
	body := fmt.Sprintf(
		"Thank you for your order! We charged your card %s %s.<br/>Order reference: %s",
		s.currency, amount, order.ID,
	)

	if err := s.mailClient.Send(ctx, user.Email, "Your Sick Fits Order", body); err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("receipt mail failed")
	}
}
