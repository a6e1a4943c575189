package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Create(orderItem *models.OrderItem) error
	GetByID(id string) (*models.OrderItem, error)
	GetByOrderID(orderID string) ([]models.OrderItem, error)
	GetAll() ([]models.OrderItem, error)
	Update(orderItem *models.OrderItem) error
	Delete(id string) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(orderItem *models.OrderItem) error {
	if err := r.db.Create(orderItem).Error; err != nil {
		return apperrors.InvalidElement("failed to insert order item", err)
	}
	return nil
}

func (r *orderItemRepository) GetByID(id string) (*models.OrderItem, error) {
	var orderItem models.OrderItem
	err := r.db.First(&orderItem, "order_item_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order item", id)
		}
		return nil, apperrors.Storage("failed to get order item", err)
	}
	return &orderItem, nil
}

func (r *orderItemRepository) GetByOrderID(orderID string) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Find(&orderItems).Error; err != nil {
		return nil, apperrors.Storage("failed to get items for order", err)
	}
	return orderItems, nil
}

func (r *orderItemRepository) GetAll() ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	if err := r.db.Find(&orderItems).Error; err != nil {
		return nil, apperrors.Storage("failed to get all order items", err)
	}
	return orderItems, nil
}

func (r *orderItemRepository) Update(orderItem *models.OrderItem) error {
	if err := r.db.Save(orderItem).Error; err != nil {
		return apperrors.InvalidElement("failed to update order item", err)
	}
	return nil
}

func (r *orderItemRepository) Delete(id string) error {
	res := r.db.Delete(&models.OrderItem{}, "order_item_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete order item", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("order item", id)
	}
	return nil
}
