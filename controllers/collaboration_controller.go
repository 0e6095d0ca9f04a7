package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/pkg/resp"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/services"
	"github.com/softpro2020/foodland/utils"
)

type CollaborationController struct {
	Collabs *services.CollaborationService
}

func NewCollaborationController(collabs *services.CollaborationService) *CollaborationController {
	return &CollaborationController{Collabs: collabs}
}

type SubmitRequestReq struct {
	ApplicantFirstName    string `json:"applicantFirstName" binding:"required"`
	ApplicantLastName     string `json:"applicantLastName" binding:"required"`
	ApplicantNationalCode string `json:"applicantNationalCode" binding:"required,len=10,numeric"`
	Text                  string `json:"text"`
	CollectionName        string `json:"collectionName" binding:"required"`
	GuildID               string `json:"guildId" binding:"required,len=12,numeric"`
	JobCategory           string `json:"jobCategory" binding:"required"`
}

func requestJSON(r *entity.CollaborationRequest) gin.H {
	status := "pending"
	if r.Approved() {
		status = "approved"
	}
	return gin.H{
		"id":                    r.ID,
		"date":                  utils.JalaliDate(r.CreatedAt),
		"applicantFirstName":    r.ApplicantFirstName,
		"applicantLastName":     r.ApplicantLastName,
		"applicantNationalCode": r.ApplicantNationalCode,
		"text":                  r.Text,
		"collectionName":        r.CollectionName,
		"guildId":               r.GuildID,
		"jobCategory":           r.JobCategory,
		"status":                status,
	}
}

// POST /collaboration-requests: public application form
func (cc *CollaborationController) Submit(c *gin.Context) {
	var req SubmitRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	created, err := cc.Collabs.Submit(services.CollaborationRequestIn{
		ApplicantFirstName:    req.ApplicantFirstName,
		ApplicantLastName:     req.ApplicantLastName,
		ApplicantNationalCode: req.ApplicantNationalCode,
		Text:                  req.Text,
		CollectionName:        req.CollectionName,
		GuildID:               req.GuildID,
		JobCategory:           req.JobCategory,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, requestJSON(created))
}

// GET /admin/collaboration-requests?status=pending&from=1403/01/01&to=1403/12/29
// from/to are jalali civil dates; to is inclusive.
func (cc *CollaborationController) List(c *gin.Context) {
	f := repository.RequestFilter{PendingOnly: c.Query("status") == "pending"}
	if raw := c.Query("from"); raw != "" {
		from, err := utils.ParseJalaliDate(raw)
		if err != nil {
			resp.Err(c, apperr.Validation("from", "from must be a yyyy/MM/dd jalali date"))
			return
		}
		f.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := utils.ParseJalaliDate(raw)
		if err != nil {
			resp.Err(c, apperr.Validation("to", "to must be a yyyy/MM/dd jalali date"))
			return
		}
		f.To = to.AddDate(0, 0, 1)
	}

	reqs, err := cc.Collabs.List(f)
	if err != nil {
		resp.Err(c, err)
		return
	}
	out := make([]gin.H, 0, len(reqs))
	for i := range reqs {
		out = append(out, requestJSON(&reqs[i]))
	}
	resp.OK(c, out)
}

// GET /admin/collaboration-requests/:id
func (cc *CollaborationController) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	req, err := cc.Collabs.Get(uint(id))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, requestJSON(req))
}

type ApproveRequestReq struct {
	FullName       string `json:"fullName" binding:"required"`
	GuildID        string `json:"guildId" binding:"required,len=12,numeric"`
	ExpirationDate string `json:"expirationDate" binding:"required"`
	ManagerID      uint   `json:"managerId" binding:"required"`
}

// PATCH /admin/collaboration-requests/:id/approve
func (cc *CollaborationController) Approve(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req ApproveRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, utils.ValidationErr(err))
		return
	}

	fc, err := cc.Collabs.Approve(uint(id), services.ApproveIn{
		FullName:       req.FullName,
		GuildID:        req.GuildID,
		ExpirationDate: req.ExpirationDate,
		ManagerID:      req.ManagerID,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}

	resp.Created(c, gin.H{
		"requestId":      id,
		"collectionId":   fc.ID,
		"fullName":       fc.FullName,
		"guildId":        fc.GuildID,
		"expirationDate": utils.JalaliDate(fc.ExpirationDate),
		"managerId":      fc.ManagerID,
	})
}
