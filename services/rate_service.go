package services

import (
	"strings"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

type RateService struct {
	rateRepo     *repository.RateRepository
	branchRepo   *repository.BranchRepository
	customerRepo *repository.CustomerRepository
}

func NewRateService(
	rateRepo *repository.RateRepository,
	branchRepo *repository.BranchRepository,
	customerRepo *repository.CustomerRepository,
) *RateService {
	return &RateService{rateRepo: rateRepo, branchRepo: branchRepo, customerRepo: customerRepo}
}

// Submit writes a review. Rates are immutable; there is no update or
// delete path.
func (s *RateService) Submit(customerID, branchID uint, title, text string) (*entity.Rate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("title", "title is required")
	}
	if len(text) > 2000 {
		return nil, apperr.Validation("text", "text is too long")
	}

	if _, err := s.customerRepo.FindByUserID(customerID); err != nil {
		return nil, StoreErr(err, "customer")
	}
	if ok, err := s.branchRepo.Exists(branchID); err != nil {
		return nil, StoreErr(err, "branch")
	} else if !ok {
		return nil, apperr.NotFound("branch not found")
	}

	rate := &entity.Rate{
		Title:      title,
		Text:       text,
		CustomerID: customerID,
		BranchID:   branchID,
	}
	if err := s.rateRepo.Create(rate); err != nil {
		return nil, StoreErr(err, "rate")
	}
	return rate, nil
}

func (s *RateService) ListForBranch(branchID uint) ([]entity.Rate, error) {
	rates, err := s.rateRepo.ListByBranch(branchID)
	if err != nil {
		return nil, StoreErr(err, "rate")
	}
	return rates, nil
}

func (s *RateService) ListForCustomer(customerID uint) ([]entity.Rate, error) {
	rates, err := s.rateRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, StoreErr(err, "rate")
	}
	return rates, nil
}
