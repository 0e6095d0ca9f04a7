package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{Customers: customers}
}

func customerFilter(c *gin.Context, ids []uint) repository.CustomerFilter {
	var f repository.CustomerFilter
	if v, err := strconv.ParseUint(c.Query("provinceId"), 10, 64); err == nil {
		f.ProvinceID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("cityId"), 10, 64); err == nil {
		f.CityID = uint(v)
	}
	f.UserIDs = ids
	return f
}

// GET /admin/customers?provinceId=&cityId=
func (ct *CustomerController) List(c *gin.Context) {
	customers, err := ct.Customers.List(customerFilter(c, nil))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, customers)
}

type BulkCustomersRequest struct {
	UserIDs []uint `json:"userIds"`
}

// POST /admin/customers/activate and /admin/customers/deactivate:
// predicate comes from query params and/or an explicit id set.
func (ct *CustomerController) SetActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkCustomersRequest
		_ = c.ShouldBindJSON(&req)

		n, err := ct.Customers.SetActive(customerFilter(c, req.UserIDs), active)
		if err != nil {
			resp.Err(c, err)
			return
		}
		resp.OK(c, gin.H{"updated": n})
	}
}

type AttachProfileRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,len=9,numeric"`
	ProvinceID  uint   `json:"provinceId"`
	CityID      uint   `json:"cityId"`
}

// POST /admin/users/:id/customer: attach a customer profile to an account
func (ct *CustomerController) Attach(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req AttachProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	customer, err := ct.Customers.AttachProfile(uint(id), services.CustomerProfileIn{
		PhoneNumber: req.PhoneNumber,
		ProvinceID:  req.ProvinceID,
		CityID:      req.CityID,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, customer)
}

// GET /customers/me
func (ct *CustomerController) Me(c *gin.Context) {
	customer, err := ct.Customers.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, customer)
}
