package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

// GeoRepository serves the static Province/City reference data.
type GeoRepository struct {
	DB *gorm.DB
}

func NewGeoRepository(db *gorm.DB) *GeoRepository {
	return &GeoRepository{DB: db}
}

func (r *GeoRepository) CreateProvince(p *entity.Province) error {
	return r.DB.Create(p).Error
}

func (r *GeoRepository) ListProvinces() ([]entity.Province, error) {
	var provinces []entity.Province
	err := r.DB.Order("name").Find(&provinces).Error
	return provinces, err
}

// FindProvince loads one province with its cities inline.
func (r *GeoRepository) FindProvince(id uint) (*entity.Province, error) {
	var p entity.Province
	if err := r.DB.Preload("Cities").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GeoRepository) CreateCity(c *entity.City) error {
	return r.DB.Create(c).Error
}

func (r *GeoRepository) ListCities(provinceID uint) ([]entity.City, error) {
	var cities []entity.City
	q := r.DB.Order("name")
	if provinceID != 0 {
		q = q.Where("province_id = ?", provinceID)
	}
	err := q.Find(&cities).Error
	return cities, err
}

func (r *GeoRepository) CityInProvince(cityID, provinceID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.City{}).
		Where("id = ? AND province_id = ?", cityID, provinceID).
		Count(&count).Error
	return count > 0, err
}
