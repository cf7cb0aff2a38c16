package config

import (
	"fmt"

	"leave-management-backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the database named by DB_DRIVER/DB_DSN and migrates the
// schema. MySQL is the production store; sqlite covers local development
// without a server.
func ConnectDB() (*gorm.DB, error) {
	driver := GetEnv("DB_DRIVER", "mysql")

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(GetEnv("DB_DSN", "leave_management.db"))
	case "mysql":
		// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
		dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/LeaveManagement?charset=utf8mb4&parseTime=True&loc=Local")
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.LeaveApplication{},
		&model.LeaveReview{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
