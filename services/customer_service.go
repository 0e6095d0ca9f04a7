package services

import (
	log "github.com/sirupsen/logrus"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/utils"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	geoRepo      *repository.GeoRepository
	accounts     *AccountService
}

func NewCustomerService(customerRepo *repository.CustomerRepository, geoRepo *repository.GeoRepository, accounts *AccountService) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, geoRepo: geoRepo, accounts: accounts}
}

type CustomerProfileIn struct {
	PhoneNumber string
	ProvinceID  uint
	CityID      uint
}

// Register is the customer self-signup path: a fresh customer-role
// account plus its profile, written as one transaction so a rejected
// profile never burns the username.
func (s *CustomerService) Register(username, password, email string, in CustomerProfileIn) (*entity.Customer, error) {
	user, err := s.accounts.NewAccount(username, entity.RoleCustomer, password, email)
	if err != nil {
		return nil, err
	}
	customer, err := s.buildProfile(in)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.CreateWithUser(user, customer); err != nil {
		return nil, StoreErr(err, "username")
	}
	customer.User = *user
	return customer, nil
}

// AttachProfile creates the 1:1 customer record of an account. Fails when
// the phone is malformed or the account already carries a profile.
func (s *CustomerService) AttachProfile(userID uint, in CustomerProfileIn) (*entity.Customer, error) {
	count, err := s.customerRepo.CountByUserID(userID)
	if err != nil {
		return nil, StoreErr(err, "user")
	}
	if count > 0 {
		return nil, apperr.Conflict("user", "account already has a customer profile")
	}

	customer, err := s.buildProfile(in)
	if err != nil {
		return nil, err
	}
	customer.UserID = userID

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, StoreErr(err, "phoneNumber")
	}
	return customer, nil
}

// buildProfile validates the profile inputs and builds the row without
// persisting it. UserID is left for the caller.
func (s *CustomerService) buildProfile(in CustomerProfileIn) (*entity.Customer, error) {
	if in.PhoneNumber != "" && !utils.IsDigits(in.PhoneNumber, 9) {
		return nil, apperr.Validation("phoneNumber", "phone number must be exactly 9 digits")
	}
	if in.PhoneNumber != "" {
		taken, err := s.customerRepo.CountByPhone(in.PhoneNumber)
		if err != nil {
			return nil, StoreErr(err, "phoneNumber")
		}
		if taken > 0 {
			return nil, apperr.Conflict("phoneNumber", "phone number already registered")
		}
	}

	customer := &entity.Customer{}
	if in.PhoneNumber != "" {
		customer.PhoneNumber = &in.PhoneNumber
	}
	if in.ProvinceID != 0 {
		customer.ProvinceID = &in.ProvinceID
	}
	if in.CityID != 0 {
		if in.ProvinceID != 0 {
			ok, err := s.geoRepo.CityInProvince(in.CityID, in.ProvinceID)
			if err != nil {
				return nil, StoreErr(err, "city")
			}
			if !ok {
				return nil, apperr.Validation("cityId", "city is not in the given province")
			}
		}
		customer.CityID = &in.CityID
	}
	return customer, nil
}

func (s *CustomerService) Get(userID uint) (*entity.Customer, error) {
	c, err := s.customerRepo.FindByUserID(userID)
	if err != nil {
		return nil, StoreErr(err, "customer")
	}
	return c, nil
}

func (s *CustomerService) List(f repository.CustomerFilter) ([]entity.Customer, error) {
	customers, err := s.customerRepo.List(f)
	if err != nil {
		return nil, StoreErr(err, "customer")
	}
	return customers, nil
}

// SetActive runs the bulk activate/deactivate action over every customer
// matching the predicate. All matched accounts flip or none do.
func (s *CustomerService) SetActive(f repository.CustomerFilter, active bool) (int64, error) {
	if f.ProvinceID == 0 && f.CityID == 0 && len(f.UserIDs) == 0 {
		return 0, apperr.Validation("filter", "a province, city or id set is required")
	}
	n, err := s.customerRepo.SetActive(f, active)
	if err != nil {
		return 0, StoreErr(err, "customer")
	}
	log.WithFields(log.Fields{"matched": n, "active": active}).Info("customer activity updated")
	return n, nil
}
