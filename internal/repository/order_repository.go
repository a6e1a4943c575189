package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	// CreateWithItems writes the order row and all item rows in a single
	// transaction so the aggregate becomes visible atomically.
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	GetByID(id string) (*models.Order, error)
	GetByBusinessID(businessID string) ([]models.Order, error)
	GetByCustomerID(customerID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id string) error
	// DeleteWithItems removes the order and its items together so item rows
	// are never orphaned by an order deletion.
	DeleteWithItems(id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return apperrors.InvalidElement("failed to insert order", err)
	}
	return nil
}

func (r *orderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.InvalidElement("failed to insert order with items", err)
	}
	return nil
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, apperrors.Storage("failed to get order", err)
	}
	return &order, nil
}

func (r *orderRepository) GetByBusinessID(businessID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("business_id = ?", businessID).Find(&orders).Error; err != nil {
		return nil, apperrors.Storage("failed to get orders for business", err)
	}
	return orders, nil
}

func (r *orderRepository) GetByCustomerID(customerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("customer_id = ?", customerID).Find(&orders).Error; err != nil {
		return nil, apperrors.Storage("failed to get orders for customer", err)
	}
	return orders, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, apperrors.Storage("failed to get all orders", err)
	}
	return orders, nil
}

func (r *orderRepository) Update(order *models.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		return apperrors.InvalidElement("failed to update order", err)
	}
	return nil
}

func (r *orderRepository) Delete(id string) error {
	res := r.db.Delete(&models.Order{}, "order_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete order", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("order", id)
	}
	return nil
}

func (r *orderRepository) DeleteWithItems(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Order{}, "order_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("order", id)
	}
	if err != nil {
		return apperrors.Storage("failed to delete order with items", err)
	}
	return nil
}
