package services

import (
	"strings"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/utils"
)

type PersonService struct {
	personRepo *repository.PersonRepository
	userRepo   *repository.UserRepository
}

func NewPersonService(personRepo *repository.PersonRepository, userRepo *repository.UserRepository) *PersonService {
	return &PersonService{personRepo: personRepo, userRepo: userRepo}
}

type PersonIn struct {
	FirstName    string        `validate:"required,max=50"`
	LastName     string        `validate:"required,max=50"`
	NationalCode string        `validate:"required"`
	Gender       entity.Gender `validate:"required"`
}

func (s *PersonService) Create(in PersonIn) (*entity.Person, error) {
	p, err := s.build(in)
	if err != nil {
		return nil, err
	}
	if err := s.personRepo.Create(p); err != nil {
		return nil, StoreErr(err, "nationalCode")
	}
	return p, nil
}

// CreateFor builds the biographical record and links it to the account,
// checking the account first; no person row survives a failed link.
func (s *PersonService) CreateFor(userID uint, in PersonIn) (*entity.Person, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, StoreErr(err, "user")
	}
	if user.PersonID != nil {
		return nil, apperr.Conflict("user", "account already has a person")
	}

	p, err := s.build(in)
	if err != nil {
		return nil, err
	}
	if err := s.personRepo.CreateAndLink(user.ID, p); err != nil {
		return nil, StoreErr(err, "nationalCode")
	}
	return p, nil
}

func (s *PersonService) build(in PersonIn) (*entity.Person, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if !utils.IsDigits(in.NationalCode, 10) {
		return nil, apperr.Validation("nationalCode", "national code must be exactly 10 digits")
	}
	if !in.Gender.Valid() {
		return nil, apperr.Validation("gender", "gender must be man or woman")
	}

	count, err := s.personRepo.CountByNationalCode(in.NationalCode)
	if err != nil {
		return nil, StoreErr(err, "nationalCode")
	}
	if count > 0 {
		return nil, apperr.Conflict("nationalCode", "national code already registered")
	}

	return &entity.Person{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		NationalCode: in.NationalCode,
		Gender:       in.Gender,
	}, nil
}

// Link attaches a person to an account. An account holds at most one
// person and vice versa; the unique index backs that up.
func (s *PersonService) Link(userID, personID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return StoreErr(err, "user")
	}
	if _, err := s.personRepo.FindByID(personID); err != nil {
		return StoreErr(err, "person")
	}
	if err := s.userRepo.LinkPerson(userID, personID); err != nil {
		return StoreErr(err, "person")
	}
	return nil
}
