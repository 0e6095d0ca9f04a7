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

// UserController is the admin change list over accounts.
type UserController struct {
	Accounts *services.AccountService
	Persons  *services.PersonService
}

func NewUserController(accounts *services.AccountService, persons *services.PersonService) *UserController {
	return &UserController{Accounts: accounts, Persons: persons}
}

// GET /admin/users?isActive=&role=&q=
func (u *UserController) List(c *gin.Context) {
	var f repository.UserFilter
	if v, ok := c.GetQuery("isActive"); ok {
		active := v == "true" || v == "1"
		f.IsActive = &active
	}
	f.Role = entity.Role(c.Query("role"))
	f.Search = c.Query("q")

	users, err := u.Accounts.List(f)
	if err != nil {
		resp.Err(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	resp.OK(c, out)
}

// GET /admin/users/:id
func (u *UserController) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	user, err := u.Accounts.GetProfile(uint(id))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}

type CreateUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"omitempty,min=6"`
	Email    string      `json:"email" binding:"omitempty,email"`
	Role     entity.Role `json:"role" binding:"required"`
}

// POST /admin/users
func (u *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	var user *entity.User
	var err error
	if req.Role == entity.RoleAdmin {
		user, err = u.Accounts.CreateSuperuser(req.Username, req.Password)
	} else {
		user, err = u.Accounts.CreateAccount(req.Username, req.Role, req.Password, req.Email)
	}
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, userJSON(user))
}

type BulkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// POST /admin/users/activate and /admin/users/deactivate
func (u *UserController) SetActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkIDsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.Err(c, utils.ValidationErr(err))
			return
		}
		n, err := u.Accounts.SetActive(req.IDs, active)
		if err != nil {
			resp.Err(c, err)
			return
		}
		resp.OK(c, gin.H{"updated": n})
	}
}

type AttachPersonRequest struct {
	FirstName    string        `json:"firstName" binding:"required"`
	LastName     string        `json:"lastName" binding:"required"`
	NationalCode string        `json:"nationalCode" binding:"required,len=10,numeric"`
	Gender       entity.Gender `json:"gender" binding:"required"`
}

// POST /admin/users/:id/person: create the biographical record and link it
func (u *UserController) AttachPerson(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req AttachPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	person, err := u.Persons.CreateFor(uint(id), services.PersonIn{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalCode: req.NationalCode,
		Gender:       req.Gender,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, person)
}
