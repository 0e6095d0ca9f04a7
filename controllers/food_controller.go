package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

type CreateFoodRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

// POST /manager/branches/:id/foods
func (f *FoodController) Create(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	food, err := f.Foods.Add(paramID(c), req.Name, req.Price)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, food)
}

// GET /branches/:id/foods
func (f *FoodController) List(c *gin.Context) {
	foods, err := f.Foods.List(paramID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, foods)
}

type UpdatePriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// PATCH /manager/foods/:id
func (f *FoodController) UpdatePrice(c *gin.Context) {
	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	food, err := f.Foods.UpdatePrice(paramID(c), req.Price)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, food)
}

// POST /manager/branches/:id/foods/import: xlsx upload, one food per row
func (f *FoodController) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		resp.BadRequest(c, "cannot open uploaded file")
		return
	}
	defer src.Close()

	count, err := f.Foods.ImportXLSX(paramID(c), src)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, gin.H{"imported": count})
}
