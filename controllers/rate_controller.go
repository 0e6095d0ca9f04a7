package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type RateController struct {
	Rates *services.RateService
}

func NewRateController(rates *services.RateService) *RateController {
	return &RateController{Rates: rates}
}

type SubmitRateRequest struct {
	BranchID uint   `json:"branchId" binding:"required"`
	Title    string `json:"title" binding:"required,max=100"`
	Text     string `json:"text" binding:"max=2000"`
}

// POST /rates: the caller is the customer; rates are write-once
func (r *RateController) Submit(c *gin.Context) {
	var req SubmitRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	rate, err := r.Rates.Submit(utils.CurrentUserID(c), req.BranchID, req.Title, req.Text)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, rateJSON(rate))
}

func rateJSON(rate *entity.Rate) gin.H {
	return gin.H{
		"id":         rate.ID,
		"datetime":   utils.JalaliDateTime(rate.CreatedAt),
		"title":      rate.Title,
		"text":       rate.Text,
		"customerId": rate.CustomerID,
		"branchId":   rate.BranchID,
	}
}

// GET /branches/:id/rates
func (r *RateController) ListForBranch(c *gin.Context) {
	rates, err := r.Rates.ListForBranch(paramID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	out := make([]gin.H, 0, len(rates))
	for i := range rates {
		out = append(out, rateJSON(&rates[i]))
	}
	resp.OK(c, out)
}
