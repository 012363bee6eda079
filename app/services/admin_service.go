package services

import (
	"context"
	"fmt"

	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/repositories"
)

type AdminService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
	userRepo     repositories.UserRepositoryImpl
}

func NewAdminService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
) *AdminService {
	return &AdminService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
	}
}

type CustomerStats struct {
	User       models.User
	OrderCount int64
}

type DashboardStats struct {
	TotalProducts   int64
	TotalCategories int64
	TotalOrders     int64
	TotalCustomers  int64
	CategoryStats   []repositories.CategoryProductCount
	RecentProducts  []models.Product
	Customers       []CustomerStats
}

// Dashboard collects the read-only aggregate views for the admin landing
// page: global counts, grouped per-category product counts, per-customer
// order counts, and the most recently created products.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if stats.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if stats.TotalCustomers, err = s.userRepo.CountCustomers(ctx); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if stats.CategoryStats, err = s.categoryRepo.GetWithProductCounts(ctx); err != nil {
		return nil, fmt.Errorf("failed to group products by category: %w", err)
	}
	if stats.RecentProducts, err = s.productRepo.GetRecent(ctx, 10); err != nil {
		return nil, fmt.Errorf("failed to load recent products: %w", err)
	}

	customers, err := s.userRepo.GetCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	counts, err := s.orderRepo.CountsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders per user: %w", err)
	}
	countByUser := make(map[string]int64, len(counts))
	for _, row := range counts {
		countByUser[row.UserID] = row.OrderCount
	}
	for _, customer := range customers {
		stats.Customers = append(stats.Customers, CustomerStats{
			User:       customer,
			OrderCount: countByUser[customer.ID],
		})
	}

	return stats, nil
}
