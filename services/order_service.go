package services

import (
	"github.com/shopspring/decimal"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

type OrderService struct {
	orderRepo    *repository.OrderRepository
	foodRepo     *repository.FoodRepository
	tableRepo    *repository.TableRepository
	branchRepo   *repository.BranchRepository
	customerRepo *repository.CustomerRepository
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	foodRepo *repository.FoodRepository,
	tableRepo *repository.TableRepository,
	branchRepo *repository.BranchRepository,
	customerRepo *repository.CustomerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		foodRepo:     foodRepo,
		tableRepo:    tableRepo,
		branchRepo:   branchRepo,
		customerRepo: customerRepo,
	}
}

type OrderLineIn struct {
	FoodID   uint `json:"foodId"`
	Quantity int  `json:"quantity"`
}

type PlaceOrderIn struct {
	BranchID uint             `json:"branchId"`
	Type     entity.OrderType `json:"type"`
	TableID  uint             `json:"tableId"`
	Lines    []OrderLineIn    `json:"lines"`
}

// Place creates an order for the customer. Foods must belong to the
// branch; a dine-in order needs a table of the same branch.
func (s *OrderService) Place(customerID uint, in PlaceOrderIn) (*entity.Order, error) {
	if !in.Type.Valid() {
		return nil, apperr.Validation("type", "order type must be takeaway or dineIn")
	}
	if len(in.Lines) == 0 {
		return nil, apperr.Validation("lines", "an order needs at least one food")
	}

	if _, err := s.customerRepo.FindByUserID(customerID); err != nil {
		return nil, StoreErr(err, "customer")
	}
	if ok, err := s.branchRepo.Exists(in.BranchID); err != nil {
		return nil, StoreErr(err, "branch")
	} else if !ok {
		return nil, apperr.NotFound("branch not found")
	}

	foodIDs := make([]uint, 0, len(in.Lines))
	lines := make([]entity.OrderFood, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			l.Quantity = 1
		}
		foodIDs = append(foodIDs, l.FoodID)
		lines = append(lines, entity.OrderFood{FoodID: l.FoodID, Quantity: l.Quantity})
	}
	count, err := s.foodRepo.CountInBranch(foodIDs, in.BranchID)
	if err != nil {
		return nil, StoreErr(err, "food")
	}
	if count != int64(len(foodIDs)) {
		return nil, apperr.Integrity("a food is not on this branch's menu")
	}

	order := &entity.Order{
		Type:       in.Type,
		CustomerID: customerID,
		BranchID:   in.BranchID,
	}

	if in.Type == entity.OrderDineIn && in.TableID == 0 {
		return nil, apperr.Validation("tableId", "a dine-in order needs a table")
	}
	if in.TableID != 0 {
		ok, err := s.tableRepo.BelongsToBranch(in.TableID, in.BranchID)
		if err != nil {
			return nil, StoreErr(err, "table")
		}
		if !ok {
			return nil, apperr.Integrity("table is not in this branch")
		}
		tableID := in.TableID
		order.TableID = &tableID
	}

	if err := s.orderRepo.Create(order, lines); err != nil {
		return nil, StoreErr(err, "order")
	}
	return order, nil
}

// ComputeTotal sums price×quantity over the lines against the given food
// prices. Pure over its inputs; an empty order totals zero.
func ComputeTotal(lines []entity.OrderFood, foods []entity.Food) decimal.Decimal {
	prices := make(map[uint]decimal.Decimal, len(foods))
	for _, f := range foods {
		prices[f.ID] = f.Price
	}

	total := decimal.Zero
	for _, l := range lines {
		qty := l.Quantity
		if qty <= 0 {
			qty = 1
		}
		total = total.Add(prices[l.FoodID].Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// Total reads the order's total off the current menu prices. Repricing a
// food retroactively changes the total of orders referencing it; that is
// the intended behavior, not a defect.
func (s *OrderService) Total(orderID uint) (decimal.Decimal, error) {
	lines, err := s.orderRepo.Lines(orderID)
	if err != nil {
		return decimal.Zero, StoreErr(err, "order")
	}
	foods, err := s.orderRepo.LineFoods(orderID)
	if err != nil {
		return decimal.Zero, StoreErr(err, "order")
	}
	return ComputeTotal(lines, foods), nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, []entity.OrderFood, decimal.Decimal, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, nil, decimal.Zero, StoreErr(err, "order")
	}
	lines, err := s.orderRepo.Lines(orderID)
	if err != nil {
		return nil, nil, decimal.Zero, StoreErr(err, "order")
	}
	foods, err := s.orderRepo.LineFoods(orderID)
	if err != nil {
		return nil, nil, decimal.Zero, StoreErr(err, "order")
	}
	return order, lines, ComputeTotal(lines, foods), nil
}

func (s *OrderService) ListForCustomer(customerID uint) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, StoreErr(err, "order")
	}
	return orders, nil
}

func (s *OrderService) ListForBranch(branchID uint) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListByBranch(branchID)
	if err != nil {
		return nil, StoreErr(err, "order")
	}
	return orders, nil
}
