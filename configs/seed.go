package configs

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/softpro2020/foodland/entity"
)

// SeedAdmin creates the first superuser from the environment.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.WithField("username", cfg.AdminUsername).Info("admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Role:     entity.RoleAdmin,
		IsAdmin:  true,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.WithField("username", admin.Username).Info("admin seeded")
	return nil
}

// SeedGeography loads the reference provinces and their capitals.
func SeedGeography() error {
	db := DB()

	seeds := map[string][]string{
		"تهران":          {"تهران", "شهریار", "اسلامشهر"},
		"اصفهان":         {"اصفهان", "کاشان"},
		"فارس":           {"شیراز", "مرودشت"},
		"خراسان رضوی":    {"مشهد", "نیشابور"},
		"آذربایجان شرقی": {"تبریز", "مراغه"},
	}

	for provinceName, cities := range seeds {
		var province entity.Province
		if err := db.FirstOrCreate(&province, entity.Province{Name: provinceName}).Error; err != nil {
			return err
		}
		for _, cityName := range cities {
			city := entity.City{Name: cityName, ProvinceID: province.ID}
			if err := db.FirstOrCreate(&city, entity.City{Name: cityName, ProvinceID: province.ID}).Error; err != nil {
				return err
			}
		}
	}

	log.Info("geography lookups seeded")
	return nil
}
