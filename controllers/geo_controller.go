package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

// GeoController serves the Province/City reference data. Cities are
// edited inline under their province, as in the back office.
type GeoController struct {
	Repo *repository.GeoRepository
}

func NewGeoController(repo *repository.GeoRepository) *GeoController {
	return &GeoController{Repo: repo}
}

// GET /provinces
func (g *GeoController) ListProvinces(c *gin.Context) {
	provinces, err := g.Repo.ListProvinces()
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, provinces)
}

// GET /provinces/:id: province with its cities inline
func (g *GeoController) ProvinceDetail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	province, err := g.Repo.FindProvince(uint(id))
	if err != nil {
		resp.Err(c, services.StoreErr(err, "province"))
		return
	}
	resp.OK(c, province)
}

type CreateProvinceRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// POST /admin/provinces
func (g *GeoController) CreateProvince(c *gin.Context) {
	var req CreateProvinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	province := entity.Province{Name: req.Name}
	if err := g.Repo.CreateProvince(&province); err != nil {
		resp.Err(c, services.StoreErr(err, "name"))
		return
	}
	resp.Created(c, province)
}

type CreateCityRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// POST /admin/provinces/:id/cities
func (g *GeoController) CreateCity(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	city := entity.City{Name: req.Name, ProvinceID: uint(id)}
	if err := g.Repo.CreateCity(&city); err != nil {
		resp.Err(c, services.StoreErr(err, "name"))
		return
	}
	resp.Created(c, city)
}

// GET /provinces/:id/cities
func (g *GeoController) ListCities(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	cities, err := g.Repo.ListCities(uint(id))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, cities)
}
