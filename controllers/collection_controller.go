package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type CollectionController struct {
	Collections *services.CollectionService
}

func NewCollectionController(collections *services.CollectionService) *CollectionController {
	return &CollectionController{Collections: collections}
}

func collectionJSON(fc *entity.FoodCollection) gin.H {
	out := gin.H{
		"id":             fc.ID,
		"fullName":       fc.FullName,
		"guildId":        fc.GuildID,
		"expirationDate": utils.JalaliDate(fc.ExpirationDate),
		"managerId":      fc.ManagerID,
		"requestId":      fc.CollaborationRequestID,
	}
	if fc.Manager != nil {
		out["manager"] = gin.H{"id": fc.Manager.ID, "username": fc.Manager.Username}
	}
	if fc.Branches != nil {
		out["branches"] = fc.Branches
	}
	return out
}

// GET /collections?q=
func (cc *CollectionController) List(c *gin.Context) {
	fcs, err := cc.Collections.List(c.Query("q"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	out := make([]gin.H, 0, len(fcs))
	for i := range fcs {
		out = append(out, collectionJSON(&fcs[i]))
	}
	resp.OK(c, out)
}

// GET /collections/:id: detail with branches inline
func (cc *CollectionController) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	fc, err := cc.Collections.Get(uint(id))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, collectionJSON(fc))
}

// GET /manager/collection: the caller's own collection
func (cc *CollectionController) Mine(c *gin.Context) {
	fc, err := cc.Collections.GetByManager(utils.CurrentUserID(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, collectionJSON(fc))
}
