package seeders

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/helpers"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/models"
	"gorm.io/gorm"
)

const (
	defaultAdminName     = "Admin User"
	defaultAdminEmail    = "admin@greenharvest.com"
	defaultAdminPassword = "admin123"
)

type categorySeed struct {
	Name        string
	Description string
	Image       string
}

type productSeed struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	Category    string
	Image       string
}

var categorySeeds = []categorySeed{
	{"Fresh Vegetables", "Farm-fresh organic vegetables delivered daily", "category-vegetables.png"},
	{"Organic Fruits", "Sweet and juicy organic fruits", "category-fruits.png"},
	{"Grains & Cereals", "Whole grains and organic cereals", "oats.png"},
	{"Dairy Products", "Fresh organic dairy from local farms", "category-dairy.png"},
	{"Herbs & Spices", "Aromatic organic herbs and spices", "herbs.jpg"},
	{"Organic Honey", "Pure natural honey from organic farms", "honey.png"},
}

var productSeeds = []productSeed{
	{"Organic Tomatoes", "Fresh, vine-ripened organic tomatoes. Perfect for salads and cooking. Rich in vitamins and antioxidants.", 399, 50, "Fresh Vegetables", "tomatoes.jpg"},
	{"Organic Spinach", "Tender organic spinach leaves, packed with iron and nutrients. Great for smoothies and salads.", 279, 30, "Fresh Vegetables", "spinach.png"},
	{"Organic Carrots", "Sweet and crunchy organic carrots. High in beta-carotene and fiber.", 239, 60, "Fresh Vegetables", "carrot.png"},
	{"Organic Broccoli", "Fresh organic broccoli crowns. Excellent source of vitamins C and K.", 319, 40, "Fresh Vegetables", "broccoli.jpg"},
	{"Organic Apples", "Crisp and sweet organic apples. Perfect for snacking or baking.", 479, 80, "Organic Fruits", "red-apple.png"},
	{"Organic Bananas", "Naturally ripened organic bananas. Great source of potassium.", 319, 100, "Organic Fruits", "banana.png"},
	{"Organic Strawberries", "Sweet and juicy organic strawberries. Rich in vitamin C and antioxidants.", 559, 35, "Organic Fruits", "strawberries.jpg"},
	{"Organic Oranges", "Fresh and tangy organic oranges. Perfect for juice or eating fresh.", 399, 70, "Organic Fruits", "orange.png"},
	{"Fresh Avocado", "Creamy organic avocados. Perfect for toast, salads, and guacamole.", 599, 45, "Organic Fruits", "avocado.png"},
	{"Fresh Guava", "Sweet and fragrant organic guavas. Rich in vitamin C and fiber.", 359, 55, "Organic Fruits", "gwava.png"},
	{"Organic Brown Rice", "Premium quality organic brown rice. High in fiber and nutrients.", 719, 100, "Grains & Cereals", "brown-rice.jpg"},
	{"Organic Quinoa", "Protein-rich organic quinoa. Perfect for healthy meals.", 1039, 50, "Grains & Cereals", "quinoa.jpg"},
	{"Organic Oats", "Whole grain organic oats. Perfect for breakfast and baking.", 559, 80, "Grains & Cereals", "oats.png"},
	{"Organic Milk", "Fresh organic milk from grass-fed cows. Rich and creamy.", 439, 45, "Dairy Products", "milk.png"},
	{"Organic Cheese", "Artisan organic cheese. Made from organic milk with no additives.", 799, 30, "Dairy Products", "cheese.jpg"},
	{"Organic Yogurt", "Creamy organic yogurt with live cultures. Great for digestion.", 359, 60, "Dairy Products", "yogurt.jpg"},
	{"Farm Fresh Eggs", "Organic free-range eggs. Rich in protein and omega-3.", 529, 65, "Dairy Products", "eggs.png"},
	{"Organic Basil", "Fresh organic basil leaves. Perfect for Italian dishes.", 239, 40, "Herbs & Spices", "basil.jpg"},
	{"Organic Turmeric", "Premium organic turmeric powder. Known for anti-inflammatory properties.", 639, 50, "Herbs & Spices", "turmeric.jpg"},
	{"Extra Virgin Olive Oil", "Cold-pressed organic olive oil. Perfect for cooking and salads.", 1299, 40, "Herbs & Spices", "olive oil.png"},
	{"Raw Organic Honey", "Pure, unfiltered organic honey. Natural sweetener with health benefits.", 1199, 35, "Organic Honey", "honey.png"},
}

// DBSeed populates the catalog and the default admin account. Catalog rows
// are only written when the products table is still empty, so re-running the
// seed command is safe.
func DBSeed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount > 0 {
		logrus.Info("catalog already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]string, len(categorySeeds))
		for _, seed := range categorySeeds {
			category := models.Category{
				Name:        seed.Name,
				Description: seed.Description,
				Image:       seed.Image,
			}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
			}
			categoryIDs[seed.Name] = category.ID
		}

		for _, seed := range productSeeds {
			categoryID, ok := categoryIDs[seed.Category]
			if !ok {
				return fmt.Errorf("product %q references unknown category %q", seed.Name, seed.Category)
			}
			product := models.Product{
				Name:        seed.Name,
				Description: seed.Description,
				Price:       decimal.NewFromInt(seed.Price),
				Stock:       seed.Stock,
				CategoryID:  categoryID,
				Image:       seed.Image,
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", seed.Name, err)
			}
		}

		logrus.Infof("seeded %d categories and %d products", len(categorySeeds), len(productSeeds))
		return nil
	})
}

// seedAdmin creates the default admin account, or promotes an existing user
// with that email.
func seedAdmin(db *gorm.DB) error {
	var admin models.User
	err := db.First(&admin, "email = ?", defaultAdminEmail).Error
	switch {
	case err == nil:
		if admin.IsAdmin {
			return nil
		}
		admin.IsAdmin = true
		if err := db.Save(&admin).Error; err != nil {
			return fmt.Errorf("failed to promote admin user: %w", err)
		}
		logrus.Infof("promoted %s to admin", defaultAdminEmail)
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.User{
			Name:         defaultAdminName,
			Email:        defaultAdminEmail,
			PasswordHash: helpers.HashPassword(defaultAdminPassword),
			IsAdmin:      true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		logrus.Infof("created default admin %s", defaultAdminEmail)
		return nil
	default:
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
}
