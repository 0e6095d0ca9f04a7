package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

type CreateTableRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity uint   `json:"capacity" binding:"required,min=1"`
}

// POST /manager/branches/:id/tables
func (t *TableController) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}
	table, err := t.Tables.Add(paramID(c), req.Name, req.Capacity)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, table)
}

// GET /branches/:id/tables?state=
func (t *TableController) List(c *gin.Context) {
	tables, err := t.Tables.List(paramID(c), entity.TableState(c.Query("state")))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /manager/branches/:id/tables/reserve and .../free: bulk actions
func (t *TableController) SetState(state entity.TableState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkIDsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.Err(c, utils.ValidationErr(err))
			return
		}

		var n int64
		var err error
		if state == entity.TableReserved {
			n, err = t.Tables.MarkReserved(paramID(c), req.IDs)
		} else {
			n, err = t.Tables.MarkFree(paramID(c), req.IDs)
		}
		if err != nil {
			resp.Err(c, err)
			return
		}
		resp.OK(c, gin.H{"updated": n, "state": state})
	}
}
