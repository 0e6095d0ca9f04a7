package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create writes the order and its food lines as one transaction.
func (r *OrderRepository) Create(order *entity.Order, lines []entity.OrderFood) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		return tx.Create(&lines).Error
	})
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.DB.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Lines returns the join rows of one order.
func (r *OrderRepository) Lines(orderID uint) ([]entity.OrderFood, error) {
	var lines []entity.OrderFood
	err := r.DB.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}

// LineFoods loads the current food rows behind an order's lines. Prices
// come from here at read time, so the total always reflects the menu as
// it stands now.
func (r *OrderRepository) LineFoods(orderID uint) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.
		Joins("JOIN order_foods ON order_foods.food_id = foods.id").
		Where("order_foods.order_id = ?", orderID).
		Find(&foods).Error
	return foods, err
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByBranch(branchID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("branch_id = ?", branchID).Order("id DESC").Find(&orders).Error
	return orders, err
}
