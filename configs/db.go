package configs

import (
	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the sqlite store. The handle is passed down explicitly;
// there is no package-level instance.
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the schema migration for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Chef{},
		&entity.Category{}, &entity.Product{}, &entity.ProductImage{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.Notification{},
	)
}
