package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError turns driver unique-constraint failures into
	// gorm.ErrDuplicatedKey so the services can report conflicts.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return Migrate(db)
}

// Migrate builds the schema on the given connection. Tests use it against
// their own in-memory databases.
func Migrate(db *gorm.DB) error {
	// join table (many2many Order<->Food with quantity)
	if err := db.SetupJoinTable(&entity.Order{}, "Foods", &entity.OrderFood{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&entity.Province{}, &entity.City{},
		&entity.Person{}, &entity.User{}, &entity.Customer{},
		&entity.CollaborationRequest{}, &entity.FoodCollection{},
		&entity.Branch{}, &entity.Location{}, &entity.CallContact{},
		&entity.Table{}, &entity.Food{},
		&entity.Order{}, &entity.OrderFood{},
		&entity.Rate{},
	)
}
