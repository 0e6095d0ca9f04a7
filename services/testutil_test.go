package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/softpro2020/foodland/configs"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newAccounts(db *gorm.DB) *AccountService {
	return NewAccountService(repository.NewUserRepository(db), "test-secret", 3600e9)
}

// seedSeq keeps seeded national codes distinct across fixtures.
var seedSeq int

// seedBranch builds the minimum chain a branch needs: an account, a
// request, a collection, then the branch itself.
func seedBranch(t *testing.T, db *gorm.DB, name string) *entity.Branch {
	t.Helper()

	manager := entity.User{Username: "manager-" + name, Role: entity.RoleManager}
	if err := db.Create(&manager).Error; err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	seedSeq++
	req := entity.CollaborationRequest{
		ApplicantFirstName:    "Ali",
		ApplicantLastName:     "Ahmadi",
		ApplicantNationalCode: fmt.Sprintf("%010d", seedSeq),
		CollectionName:        name,
		GuildID:               "123456789012",
		JobCategory:           "restaurant",
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	fc := entity.FoodCollection{
		FullName:               name,
		GuildID:                req.GuildID,
		ExpirationDate:         time.Now().AddDate(1, 0, 0),
		CollaborationRequestID: req.ID,
		ManagerID:              manager.ID,
	}
	if err := db.Create(&fc).Error; err != nil {
		t.Fatalf("seed collection: %v", err)
	}
	branch := entity.Branch{Name: name, FoodCollectionID: fc.ID}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return &branch
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) *entity.Customer {
	t.Helper()
	user := entity.User{Username: username, Role: entity.RoleCustomer}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	customer := entity.Customer{UserID: user.ID}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return &customer
}
