package services

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/utils"
)

// BranchService manages the branch aggregate: the branch itself plus its
// 1:1 location and contact records.
type BranchService struct {
	branchRepo *repository.BranchRepository
	fcRepo     *repository.FoodCollectionRepository
	geoRepo    *repository.GeoRepository
}

func NewBranchService(
	branchRepo *repository.BranchRepository,
	fcRepo *repository.FoodCollectionRepository,
	geoRepo *repository.GeoRepository,
) *BranchService {
	return &BranchService{branchRepo: branchRepo, fcRepo: fcRepo, geoRepo: geoRepo}
}

func (s *BranchService) Create(collectionID uint, name string) (*entity.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name", "branch name is required")
	}
	if _, err := s.fcRepo.FindByID(collectionID); err != nil {
		return nil, StoreErr(err, "collection")
	}

	branch := &entity.Branch{Name: name, FoodCollectionID: collectionID}
	if err := s.branchRepo.Create(branch); err != nil {
		return nil, StoreErr(err, "branch")
	}
	return branch, nil
}

func (s *BranchService) Get(id uint) (*entity.Branch, error) {
	branch, err := s.branchRepo.FindByID(id)
	if err != nil {
		return nil, StoreErr(err, "branch")
	}
	return branch, nil
}

func (s *BranchService) List(collectionID uint) ([]entity.Branch, error) {
	branches, err := s.branchRepo.ListByCollection(collectionID)
	if err != nil {
		return nil, StoreErr(err, "branch")
	}
	return branches, nil
}

func (s *BranchService) Rename(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("name", "branch name is required")
	}
	if _, err := s.branchRepo.FindByID(id); err != nil {
		return StoreErr(err, "branch")
	}
	return StoreErr(s.branchRepo.Rename(id, name), "branch")
}

// Delete removes the branch with all of its scoped children.
func (s *BranchService) Delete(id uint) error {
	if _, err := s.branchRepo.FindByID(id); err != nil {
		return StoreErr(err, "branch")
	}
	if err := s.branchRepo.Delete(id); err != nil {
		return StoreErr(err, "branch")
	}
	log.WithField("branch", id).Info("branch deleted with children")
	return nil
}

type LocationIn struct {
	ProvinceID uint   `validate:"required"`
	CityID     uint   `validate:"required"`
	Address    string `validate:"required,max=300"`
}

func (s *BranchService) SetLocation(branchID uint, in LocationIn) (*entity.Location, error) {
	in.Address = strings.TrimSpace(in.Address)
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.branchRepo.FindByID(branchID); err != nil {
		return nil, StoreErr(err, "branch")
	}
	ok, err := s.geoRepo.CityInProvince(in.CityID, in.ProvinceID)
	if err != nil {
		return nil, StoreErr(err, "city")
	}
	if !ok {
		return nil, apperr.Validation("cityId", "city is not in the given province")
	}

	loc := &entity.Location{
		BranchID:   branchID,
		ProvinceID: in.ProvinceID,
		CityID:     in.CityID,
		Address:    in.Address,
	}
	if err := s.branchRepo.SaveLocation(loc); err != nil {
		return nil, StoreErr(err, "address")
	}
	return loc, nil
}

type CallContactIn struct {
	PhoneNumber1 string `validate:"required"`
	PhoneNumber2 string
	MobileNumber string
}

func (s *BranchService) SetCallContact(branchID uint, in CallContactIn) (*entity.CallContact, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if !utils.IsDigits(in.PhoneNumber1, 8) {
		return nil, apperr.Validation("phoneNumber1", "phone number must be exactly 8 digits")
	}
	if in.PhoneNumber2 != "" && !utils.IsDigits(in.PhoneNumber2, 8) {
		return nil, apperr.Validation("phoneNumber2", "phone number must be exactly 8 digits")
	}
	if in.MobileNumber != "" && !utils.IsDigits(in.MobileNumber, 9) {
		return nil, apperr.Validation("mobileNumber", "mobile number must be exactly 9 digits")
	}
	if _, err := s.branchRepo.FindByID(branchID); err != nil {
		return nil, StoreErr(err, "branch")
	}

	cc := &entity.CallContact{BranchID: branchID, PhoneNumber1: in.PhoneNumber1}
	if in.PhoneNumber2 != "" {
		cc.PhoneNumber2 = &in.PhoneNumber2
	}
	if in.MobileNumber != "" {
		cc.MobileNumber = &in.MobileNumber
	}
	if err := s.branchRepo.SaveCallContact(cc); err != nil {
		return nil, StoreErr(err, "phoneNumber1")
	}
	return cc, nil
}
