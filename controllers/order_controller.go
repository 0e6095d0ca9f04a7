package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type PlaceOrderRequest struct {
	BranchID uint                   `json:"branchId" binding:"required"`
	Type     entity.OrderType       `json:"type" binding:"required"`
	TableID  uint                   `json:"tableId"`
	Lines    []services.OrderLineIn `json:"lines" binding:"required"`
}

// POST /orders: the caller is the customer
func (o *OrderController) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	order, err := o.Orders.Place(utils.CurrentUserID(c), services.PlaceOrderIn{
		BranchID: req.BranchID,
		Type:     req.Type,
		TableID:  req.TableID,
		Lines:    req.Lines,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, gin.H{"id": order.ID, "datetime": utils.JalaliDateTime(order.CreatedAt)})
}

// GET /orders/:id: detail with lines and the live total
func (o *OrderController) Detail(c *gin.Context) {
	order, lines, total, err := o.Orders.Get(paramID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":         order.ID,
		"datetime":   utils.JalaliDateTime(order.CreatedAt),
		"type":       order.Type,
		"customerId": order.CustomerID,
		"branchId":   order.BranchID,
		"tableId":    order.TableID,
		"lines":      lines,
		"total":      total,
	})
}

// GET /orders: the caller's own orders
func (o *OrderController) ListMine(c *gin.Context) {
	orders, err := o.Orders.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /manager/branches/:id/orders
func (o *OrderController) ListForBranch(c *gin.Context) {
	orders, err := o.Orders.ListForBranch(paramID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, orders)
}
