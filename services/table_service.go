package services

import (
	"strings"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

type TableService struct {
	tableRepo  *repository.TableRepository
	branchRepo *repository.BranchRepository
}

func NewTableService(tableRepo *repository.TableRepository, branchRepo *repository.BranchRepository) *TableService {
	return &TableService{tableRepo: tableRepo, branchRepo: branchRepo}
}

func (s *TableService) Add(branchID uint, name string, capacity uint) (*entity.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name", "table name is required")
	}
	if capacity == 0 {
		return nil, apperr.Validation("capacity", "capacity must be at least 1")
	}
	if ok, err := s.branchRepo.Exists(branchID); err != nil {
		return nil, StoreErr(err, "branch")
	} else if !ok {
		return nil, apperr.NotFound("branch not found")
	}

	table := &entity.Table{
		Name:     name,
		Capacity: capacity,
		State:    entity.TableFree,
		BranchID: branchID,
	}
	if err := s.tableRepo.Create(table); err != nil {
		return nil, StoreErr(err, "table")
	}
	return table, nil
}

func (s *TableService) List(branchID uint, state entity.TableState) ([]entity.Table, error) {
	if state != "" && !state.Valid() {
		return nil, apperr.Validation("state", "state must be free or reserved")
	}
	tables, err := s.tableRepo.ListByBranch(branchID, state)
	if err != nil {
		return nil, StoreErr(err, "table")
	}
	return tables, nil
}

// MarkReserved reserves the whole set at once. There is no automatic
// expiry; a reserved table stays reserved until MarkFree.
func (s *TableService) MarkReserved(branchID uint, ids []uint) (int64, error) {
	return s.setState(branchID, ids, entity.TableReserved)
}

func (s *TableService) MarkFree(branchID uint, ids []uint) (int64, error) {
	return s.setState(branchID, ids, entity.TableFree)
}

func (s *TableService) setState(branchID uint, ids []uint, state entity.TableState) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("ids", "no tables selected")
	}
	n, err := s.tableRepo.SetState(branchID, ids, state)
	if err != nil {
		return 0, StoreErr(err, "table")
	}
	return n, nil
}
