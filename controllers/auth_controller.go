package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,len=9,numeric"`
	ProvinceID  uint   `json:"provinceId"`
	CityID      uint   `json:"cityId"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Accounts  *services.AccountService
	Customers *services.CustomerService
}

func NewAuthController(accounts *services.AccountService, customers *services.CustomerService) *AuthController {
	return &AuthController{Accounts: accounts, Customers: customers}
}

func userJSON(u *entity.User) gin.H {
	out := gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"role":       u.Role,
		"isActive":   u.IsActive,
		"isStaff":    u.IsStaff(),
		"dateJoined": utils.JalaliDate(u.CreatedAt),
	}
	if u.Email != nil {
		out["email"] = *u.Email
	}
	if u.LastLogin != nil {
		out["lastLogin"] = utils.JalaliDateTime(*u.LastLogin)
	}
	if u.Person != nil {
		out["person"] = u.Person
	}
	return out
}

// POST /auth/register: customer self-signup
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	customer, err := a.Customers.Register(req.Username, req.Password, req.Email, services.CustomerProfileIn{
		PhoneNumber: req.PhoneNumber,
		ProvinceID:  req.ProvinceID,
		CityID:      req.CityID,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}

	resp.Created(c, gin.H{"userId": customer.UserID, "phoneNumber": customer.PhoneNumber})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	token, user, err := a.Accounts.Login(req.Username, req.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userJSON(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Accounts.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}
