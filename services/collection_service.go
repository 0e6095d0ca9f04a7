package services

import (
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

// CollectionService is the read side of FoodCollection; collections are
// only ever created through CollaborationService.Approve.
type CollectionService struct {
	fcRepo *repository.FoodCollectionRepository
}

func NewCollectionService(fcRepo *repository.FoodCollectionRepository) *CollectionService {
	return &CollectionService{fcRepo: fcRepo}
}

func (s *CollectionService) Get(id uint) (*entity.FoodCollection, error) {
	fc, err := s.fcRepo.FindByID(id)
	if err != nil {
		return nil, StoreErr(err, "collection")
	}
	return fc, nil
}

func (s *CollectionService) GetByManager(managerID uint) (*entity.FoodCollection, error) {
	fc, err := s.fcRepo.FindByManager(managerID)
	if err != nil {
		return nil, StoreErr(err, "collection")
	}
	return fc, nil
}

func (s *CollectionService) List(search string) ([]entity.FoodCollection, error) {
	fcs, err := s.fcRepo.List(search)
	if err != nil {
		return nil, StoreErr(err, "collection")
	}
	return fcs, nil
}
