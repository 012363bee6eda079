package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
	"gorm.io/gorm"
)

const (
	WishlistActionAdded   = "added"
	WishlistActionRemoved = "removed"
)

type WishlistService struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewWishlistService(wishlistRepo repositories.WishlistRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Toggle flips wishlist membership for (user, product) and returns the
// performed action plus the user's new wishlist count.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (string, int64, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrNotFound
		}
		return "", 0, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	existing, err := s.wishlistRepo.Find(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, fmt.Errorf("failed to check wishlist entry: %w", err)
	}

	action := WishlistActionAdded
	if existing != nil {
		if err := s.wishlistRepo.Delete(ctx, userID, productID); err != nil {
			return "", 0, fmt.Errorf("failed to remove wishlist entry: %w", err)
		}
		action = WishlistActionRemoved
	} else {
		item := &models.WishlistItem{UserID: userID, ProductID: productID}
		if err := s.wishlistRepo.Create(ctx, item); err != nil {
			return "", 0, fmt.Errorf("failed to add wishlist entry: %w", err)
		}
	}

	count, err := s.wishlistRepo.CountByUser(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to count wishlist entries: %w", err)
	}
	return action, count, nil
}

// Remove deletes the entry outright; unlike Toggle it fails when absent.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	if _, err := s.wishlistRepo.Find(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check wishlist entry: %w", err)
	}
	return s.wishlistRepo.Delete(ctx, userID, productID)
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(ctx, userID)
}

func (s *WishlistService) Count(ctx context.Context, userID string) (int64, error) {
	return s.wishlistRepo.CountByUser(ctx, userID)
}

// ProductIDs returns the set of wishlisted product ids, used to mark catalog
// listings for a logged-in user.
func (s *WishlistService) ProductIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := s.wishlistRepo.ProductIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
