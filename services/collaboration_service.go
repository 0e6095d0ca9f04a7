package services

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/utils"
)

// CollaborationService runs the application workflow: a request is
// pending until a food collection is created from it, and that promotion
// is the only transition.
type CollaborationService struct {
	collabRepo *repository.CollaborationRepository
	fcRepo     *repository.FoodCollectionRepository
	userRepo   *repository.UserRepository
}

func NewCollaborationService(
	collabRepo *repository.CollaborationRepository,
	fcRepo *repository.FoodCollectionRepository,
	userRepo *repository.UserRepository,
) *CollaborationService {
	return &CollaborationService{collabRepo: collabRepo, fcRepo: fcRepo, userRepo: userRepo}
}

type CollaborationRequestIn struct {
	ApplicantFirstName    string `validate:"required,max=50"`
	ApplicantLastName     string `validate:"required,max=50"`
	ApplicantNationalCode string `validate:"required"`
	Text                  string `validate:"max=2000"`
	CollectionName        string `validate:"required,max=50"`
	GuildID               string `validate:"required"`
	JobCategory           string `validate:"required,max=100"`
}

// Submit records a new application. The record is immutable afterwards.
func (s *CollaborationService) Submit(in CollaborationRequestIn) (*entity.CollaborationRequest, error) {
	in.ApplicantFirstName = strings.TrimSpace(in.ApplicantFirstName)
	in.ApplicantLastName = strings.TrimSpace(in.ApplicantLastName)
	in.CollectionName = strings.TrimSpace(in.CollectionName)
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if !utils.IsDigits(in.ApplicantNationalCode, 10) {
		return nil, apperr.Validation("applicantNationalCode", "national code must be exactly 10 digits")
	}
	if !utils.IsDigits(in.GuildID, 12) {
		return nil, apperr.Validation("guildId", "guild id must be exactly 12 digits")
	}

	count, err := s.collabRepo.CountByNationalCode(in.ApplicantNationalCode)
	if err != nil {
		return nil, StoreErr(err, "applicantNationalCode")
	}
	if count > 0 {
		return nil, apperr.Conflict("applicantNationalCode", "an application with this national code already exists")
	}

	req := &entity.CollaborationRequest{
		ApplicantFirstName:    in.ApplicantFirstName,
		ApplicantLastName:     in.ApplicantLastName,
		ApplicantNationalCode: in.ApplicantNationalCode,
		Text:                  in.Text,
		CollectionName:        in.CollectionName,
		GuildID:               in.GuildID,
		JobCategory:           in.JobCategory,
	}
	if err := s.collabRepo.CreateRequest(req); err != nil {
		return nil, StoreErr(err, "applicantNationalCode")
	}
	return req, nil
}

func (s *CollaborationService) Get(id uint) (*entity.CollaborationRequest, error) {
	req, err := s.collabRepo.FindRequest(id)
	if err != nil {
		return nil, StoreErr(err, "request")
	}
	return req, nil
}

func (s *CollaborationService) List(f repository.RequestFilter) ([]entity.CollaborationRequest, error) {
	reqs, err := s.collabRepo.ListRequests(f)
	if err != nil {
		return nil, StoreErr(err, "request")
	}
	return reqs, nil
}

type ApproveIn struct {
	FullName       string `validate:"required,max=100"`
	GuildID        string `validate:"required"`
	ExpirationDate string `validate:"required"` // jalali yyyy/MM/dd
	ManagerID      uint   `validate:"required"`
}

// Approve promotes a pending request into a food collection run by the
// given account. One-way: an approved request can never be approved again
// and there is no revocation.
func (s *CollaborationService) Approve(requestID uint, in ApproveIn) (*entity.FoodCollection, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if !utils.IsDigits(in.GuildID, 12) {
		return nil, apperr.Validation("guildId", "guild id must be exactly 12 digits")
	}
	expiration, err := utils.ParseJalaliDate(in.ExpirationDate)
	if err != nil {
		return nil, apperr.Validation("expirationDate", "expiration date must be a yyyy/MM/dd jalali date")
	}

	req, err := s.collabRepo.FindRequest(requestID)
	if err != nil {
		return nil, StoreErr(err, "request")
	}
	if req.Approved() {
		return nil, apperr.Conflict("request", "request is already approved")
	}

	manager, err := s.userRepo.FindByID(in.ManagerID)
	if err != nil {
		return nil, StoreErr(err, "manager")
	}
	if taken, err := s.fcRepo.CountByRequest(requestID); err != nil {
		return nil, StoreErr(err, "request")
	} else if taken > 0 {
		return nil, apperr.Conflict("request", "request is already approved")
	}
	if _, err := s.fcRepo.FindByManager(manager.ID); err == nil {
		return nil, apperr.Conflict("manager", "account already manages a collection")
	}

	fc := &entity.FoodCollection{
		FullName:               in.FullName,
		GuildID:                in.GuildID,
		ExpirationDate:         expiration,
		CollaborationRequestID: req.ID,
		ManagerID:              manager.ID,
	}
	if err := s.collabRepo.Approve(fc); err != nil {
		return nil, StoreErr(err, "request")
	}

	log.WithFields(log.Fields{
		"request":    req.ID,
		"collection": fc.ID,
		"manager":    manager.Username,
	}).Info("collaboration request approved")

	return fc, nil
}
