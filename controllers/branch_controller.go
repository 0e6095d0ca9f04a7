package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type BranchController struct {
	Branches *services.BranchService
}

func NewBranchController(branches *services.BranchService) *BranchController {
	return &BranchController{Branches: branches}
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id)
}

type CreateBranchRequest struct {
	Name             string `json:"name" binding:"required"`
	FoodCollectionID uint   `json:"foodCollectionId" binding:"required"`
}

// POST /manager/branches
func (b *BranchController) Create(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	branch, err := b.Branches.Create(req.FoodCollectionID, req.Name)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, branch)
}

// GET /branches?collectionId=
func (b *BranchController) List(c *gin.Context) {
	collectionID, _ := strconv.ParseUint(c.Query("collectionId"), 10, 64)
	branches, err := b.Branches.List(uint(collectionID))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, branches)
}

// GET /branches/:id
func (b *BranchController) Detail(c *gin.Context) {
	branch, err := b.Branches.Get(paramID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, branch)
}

type RenameBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

// PATCH /manager/branches/:id
func (b *BranchController) Rename(c *gin.Context) {
	var req RenameBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	if err := b.Branches.Rename(paramID(c), req.Name); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"id": paramID(c), "name": req.Name})
}

// DELETE /manager/branches/:id: removes the whole aggregate
func (b *BranchController) Delete(c *gin.Context) {
	if err := b.Branches.Delete(paramID(c)); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": paramID(c)})
}

type SetLocationRequest struct {
	ProvinceID uint   `json:"provinceId" binding:"required"`
	CityID     uint   `json:"cityId" binding:"required"`
	Address    string `json:"address" binding:"required,max=300"`
}

// PUT /manager/branches/:id/location
func (b *BranchController) SetLocation(c *gin.Context) {
	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	loc, err := b.Branches.SetLocation(paramID(c), services.LocationIn{
		ProvinceID: req.ProvinceID,
		CityID:     req.CityID,
		Address:    req.Address,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, loc)
}

type SetCallContactRequest struct {
	PhoneNumber1 string `json:"phoneNumber1" binding:"required,len=8,numeric"`
	PhoneNumber2 string `json:"phoneNumber2" binding:"omitempty,len=8,numeric"`
	MobileNumber string `json:"mobileNumber" binding:"omitempty,len=9,numeric"`
}

// PUT /manager/branches/:id/contact
func (b *BranchController) SetCallContact(c *gin.Context) {
	var req SetCallContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	cc, err := b.Branches.SetCallContact(paramID(c), services.CallContactIn{
		PhoneNumber1: req.PhoneNumber1,
		PhoneNumber2: req.PhoneNumber2,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, cc)
}
