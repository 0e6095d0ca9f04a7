package services

import (
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

type FoodService struct {
	foodRepo   *repository.FoodRepository
	branchRepo *repository.BranchRepository
}

func NewFoodService(foodRepo *repository.FoodRepository, branchRepo *repository.BranchRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo, branchRepo: branchRepo}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperr.Validation("price", "price must be a number")
	}
	if price.IsNegative() {
		return decimal.Zero, apperr.Validation("price", "price must not be negative")
	}
	if !price.Equal(price.Truncate(0)) {
		return decimal.Zero, apperr.Validation("price", "price must be a whole amount")
	}
	return price, nil
}

func (s *FoodService) Add(branchID uint, name, rawPrice string) (*entity.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name", "food name is required")
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		return nil, err
	}
	if ok, err := s.branchRepo.Exists(branchID); err != nil {
		return nil, StoreErr(err, "branch")
	} else if !ok {
		return nil, apperr.NotFound("branch not found")
	}

	food := &entity.Food{Name: name, Price: price, BranchID: branchID}
	if err := s.foodRepo.Create(food); err != nil {
		return nil, StoreErr(err, "food")
	}
	return food, nil
}

func (s *FoodService) List(branchID uint) ([]entity.Food, error) {
	foods, err := s.foodRepo.ListByBranch(branchID)
	if err != nil {
		return nil, StoreErr(err, "food")
	}
	return foods, nil
}

// UpdatePrice reprices a food item. Totals of past orders referencing it
// follow the new price; nothing is snapshotted.
func (s *FoodService) UpdatePrice(id uint, rawPrice string) (*entity.Food, error) {
	price, err := parsePrice(rawPrice)
	if err != nil {
		return nil, err
	}
	food, err := s.foodRepo.FindByID(id)
	if err != nil {
		return nil, StoreErr(err, "food")
	}
	if err := s.foodRepo.UpdatePrice(food.ID, price); err != nil {
		return nil, StoreErr(err, "food")
	}
	food.Price = price
	return food, nil
}

// ImportXLSX loads a menu from a spreadsheet: one food per row, name in
// the first column, price in the second, header row skipped. The whole
// sheet goes in or nothing does.
func (s *FoodService) ImportXLSX(branchID uint, r io.Reader) (int, error) {
	if ok, err := s.branchRepo.Exists(branchID); err != nil {
		return 0, StoreErr(err, "branch")
	} else if !ok {
		return 0, apperr.NotFound("branch not found")
	}

	xl, err := excelize.OpenReader(r)
	if err != nil {
		return 0, apperr.Validation("file", "cannot parse xlsx file")
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return 0, apperr.Validation("file", "workbook has no sheets")
	}
	rows, err := xl.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return 0, apperr.Validation("file", "sheet must have a header and at least one data row")
	}

	foods := make([]entity.Food, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return 0, apperr.Validation("file", "row "+strconv.Itoa(i+2)+" is incomplete")
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			return 0, apperr.Validation("file", "a row is missing the food name")
		}
		price, err := parsePrice(row[1])
		if err != nil {
			return 0, err
		}
		foods = append(foods, entity.Food{Name: name, Price: price, BranchID: branchID})
	}

	if err := s.foodRepo.CreateBatch(foods); err != nil {
		return 0, StoreErr(err, "food")
	}

	log.WithFields(log.Fields{"branch": branchID, "count": len(foods)}).Info("menu imported")
	return len(foods), nil
}
