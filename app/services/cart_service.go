package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

type CartService struct {
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// Add increments the line for (user, product) by qty, creating it when
// missing. A non-positive qty is coerced to 1.
func (s *CartService) Add(ctx context.Context, userID, productID string, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	existing, err := s.cartItemRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check cart line: %w", err)
	}

	if existing != nil {
		existing.Quantity += qty
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart line: %w", err)
		}
		return existing, nil
	}

	item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
	if err := s.cartItemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart line: %w", err)
	}
	return item, nil
}

// SetQuantity overwrites the line for (user, product) to exactly qty. A qty
// of zero or less deletes the line when present and reports quantity 0.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, qty int) (int, error) {
	existing, err := s.cartItemRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to check cart line: %w", err)
	}

	if qty <= 0 {
		if existing != nil {
			if err := s.cartItemRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
				return 0, fmt.Errorf("failed to remove cart line: %w", err)
			}
		}
		return 0, nil
	}

	if existing != nil {
		existing.Quantity = qty
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return 0, fmt.Errorf("failed to update cart line: %w", err)
		}
		return qty, nil
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
	if err := s.cartItemRepo.Create(ctx, item); err != nil {
		return 0, fmt.Errorf("failed to add cart line: %w", err)
	}
	return qty, nil
}

// UpdateLine mutates a line addressed by its id, scoped to the owning user.
// The qty branching mirrors SetQuantity.
func (s *CartService) UpdateLine(ctx context.Context, userID, lineID string, qty int) (int, error) {
	item, err := s.cartItemRepo.FindByIDForUser(ctx, lineID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to load cart line %s: %w", lineID, err)
	}

	if qty <= 0 {
		if _, err := s.cartItemRepo.DeleteByIDForUser(ctx, lineID, userID); err != nil {
			return 0, fmt.Errorf("failed to remove cart line: %w", err)
		}
		return 0, nil
	}

	item.Quantity = qty
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return 0, fmt.Errorf("failed to update cart line: %w", err)
	}
	return qty, nil
}

// RemoveLine deletes a line unconditionally; missing lines are ErrNotFound.
func (s *CartService) RemoveLine(ctx context.Context, userID, lineID string) error {
	affected, err := s.cartItemRepo.DeleteByIDForUser(ctx, lineID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove cart line: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CartService) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.cartItemRepo.ListByUser(ctx, userID)
}

// Total sums quantity times the current catalog price over the user's lines.
// This is the live pre-checkout total, not a frozen one.
func (s *CartService) Total(ctx context.Context, userID string) (decimal.Decimal, error) {
	items, err := s.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list cart lines: %w", err)
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// Count is the badge value: the sum of quantities, not the line count.
func (s *CartService) Count(ctx context.Context, userID string) (int64, error) {
	return s.cartItemRepo.SumQuantities(ctx, userID)
}

// Quantities maps product id to quantity for prefilling inline controls.
func (s *CartService) Quantities(ctx context.Context, userID string) (map[string]int, error) {
	items, err := s.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	quantities := make(map[string]int, len(items))
	for _, item := range items {
		quantities[item.ProductID] = item.Quantity
	}
	return quantities, nil
}
