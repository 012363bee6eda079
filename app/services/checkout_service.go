package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

// ShippingDetails is the snapshot copied onto the order at checkout.
type ShippingDetails struct {
	Name       string
	Email      string
	Address    string
	City       string
	PostalCode string
	Country    string
}

type CheckoutService struct {
	db           *gorm.DB
	cartItemRepo repositories.CartItemRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
}

func NewCheckoutService(db *gorm.DB, cartItemRepo repositories.CartItemRepositoryImpl, orderRepo repositories.OrderRepositoryImpl) *CheckoutService {
	return &CheckoutService{
		db:           db,
		cartItemRepo: cartItemRepo,
		orderRepo:    orderRepo,
	}
}

// PlaceOrder snapshots the user's cart into an immutable order. Order
// creation, line copies with the frozen purchase price, and the cart clear
// happen in one transaction so no partial state is ever observable.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, shipping ShippingDetails) (*models.Order, error) {
	items, err := s.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.Product.Price.Mul(qty))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	order := &models.Order{
		UserID:             userID,
		TotalAmount:        total,
		Status:             models.OrderStatusPending,
		ShippingName:       shipping.Name,
		ShippingEmail:      shipping.Email,
		ShippingAddress:    shipping.Address,
		ShippingCity:       shipping.City,
		ShippingPostalCode: shipping.PostalCode,
		ShippingCountry:    shipping.Country,
		OrderItems:         orderItems,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := s.cartItemRepo.ClearForUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalAmount.String(),
	}).Info("order placed")
	return order, nil
}

// Cancel is the only user-initiated status transition. It succeeds iff the
// order is still pending or processing.
func (s *CheckoutService) Cancel(ctx context.Context, userID, orderID string) error {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	if !order.CanCancel() {
		return ErrOrderNotCancellable
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	logrus.WithFields(logrus.Fields{"order_id": orderID, "user_id": userID}).Info("order cancelled")
	return nil
}

func (s *CheckoutService) OrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

func (s *CheckoutService) OrderForUser(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	return order, nil
}
