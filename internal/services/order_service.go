package services

import (
	"fmt"
	"log"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CreateOrderItemInput struct {
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	ProductSizeID *string `json:"productSizeId,omitempty"`
}

type CreateOrderInput struct {
	BusinessID    string                 `json:"businessId"`
	CustomerID    string                 `json:"customerId"`
	OrderSource   string                 `json:"orderSource"`
	PaymentMethod string                 `json:"paymentMethod"`
	Items         []CreateOrderItemInput `json:"items"`
	PromoCodeID   *string                `json:"promoCodeId,omitempty"`
}

// UpdateOrderInput carries a partial order update. Nil fields keep their
// current value; a pointer to the empty string clears promoCodeId.
type UpdateOrderInput struct {
	OrderStatus   *string `json:"orderStatus"`
	OrderSource   *string `json:"orderSource"`
	PaymentMethod *string `json:"paymentMethod"`
	PromoCodeID   *string `json:"promoCodeId"`
}

type OrderTotals struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// OrderSequencer issues monotonically increasing per-day counters for display
// order numbers. A nil sequencer falls back to timestamp-derived numbers.
type OrderSequencer interface {
	NextOrderSequence(day string) (int64, error)
}

type OrderService interface {
	CreateOrder(input CreateOrderInput) (string, error)
	GetOrderByID(orderID string) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByBusiness(businessID string) ([]models.Order, error)
	GetOrdersByCustomer(customerID string) ([]models.Order, error)
	UpdateOrder(orderID string, input UpdateOrderInput) (*models.Order, error)
	DeleteOrder(orderID string) error
	GetOrderItems(orderID string) ([]models.OrderItem, error)
	AddItem(orderID string, input CreateOrderItemInput) error
	RemoveItem(orderItemID string) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	sequencer     OrderSequencer
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	sequencer OrderSequencer,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		sequencer:     sequencer,
	}
}

func (s *orderService) CreateOrder(input CreateOrderInput) (string, error) {
	if input.BusinessID == "" || input.CustomerID == "" {
		return "", apperrors.Validation("business and customer are required")
	}
	if len(input.Items) == 0 {
		return "", apperrors.Validation("at least one item is required")
	}

	// Fetch every referenced product exactly once.
	productsByID := make(map[string]*models.Product)
	for _, it := range input.Items {
		if it.ProductID == "" {
			return "", apperrors.Validation("item productId is required")
		}
		if it.Quantity <= 0 {
			return "", apperrors.Validation("item quantity must be > 0")
		}
		if _, ok := productsByID[it.ProductID]; ok {
			continue
		}
		product, err := s.productRepo.GetByID(it.ProductID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return "", apperrors.ProductNotFound(it.ProductID)
			}
			return "", fmt.Errorf("failed to fetch product %s for order creation: %w", it.ProductID, err)
		}
		productsByID[it.ProductID] = product
	}

	totals := calculateTotals(input.Items, productsByID)
	orderID := ids.New("order")
	order, err := models.NewOrder(models.Order{
		OrderID:       orderID,
		OrderNumber:   s.generateOrderNumber(),
		BusinessID:    input.BusinessID,
		CustomerID:    input.CustomerID,
		OrderStatus:   models.OrderStatusPending,
		OrderSource:   input.OrderSource,
		PaymentMethod: input.PaymentMethod,
		TotalPrice:    totals.Total,
		PromoCodeID:   input.PromoCodeID,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return "", err
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		item, err := models.NewOrderItem(models.OrderItem{
			OrderItemID:   ids.New("oitem"),
			OrderID:       orderID,
			ProductID:     it.ProductID,
			ProductSizeID: it.ProductSizeID,
			Quantity:      it.Quantity,
		})
		if err != nil {
			return "", err
		}
		items = append(items, *item)
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return "", err
	}

	log.Printf("Order created %s with %d items", orderID, len(items))
	return orderID, nil
}

func (s *orderService) GetOrderByID(orderID string) (*models.Order, error) {
	return s.orderRepo.GetByID(orderID)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByBusiness(businessID string) ([]models.Order, error) {
	return s.orderRepo.GetByBusinessID(businessID)
}

func (s *orderService) GetOrdersByCustomer(customerID string) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) UpdateOrder(orderID string, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// Status is a free-form string by the API contract; no transition
	// checks happen here. Totals are deliberately not recomputed.
	if input.OrderStatus != nil {
		order.OrderStatus = *input.OrderStatus
	}
	if input.OrderSource != nil {
		order.OrderSource = *input.OrderSource
	}
	if input.PaymentMethod != nil {
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.PromoCodeID != nil {
		if *input.PromoCodeID == "" {
			order.PromoCodeID = nil
		} else {
			order.PromoCodeID = input.PromoCodeID
		}
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(orderID string) error {
	if err := s.orderRepo.DeleteWithItems(orderID); err != nil {
		return err
	}
	log.Printf("Order deleted %s", orderID)
	return nil
}

func (s *orderService) GetOrderItems(orderID string) ([]models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}

func (s *orderService) AddItem(orderID string, input CreateOrderItemInput) error {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return err
	}
	if input.ProductID == "" {
		return apperrors.Validation("item productId is required")
	}
	if input.Quantity <= 0 {
		return apperrors.Validation("item quantity must be > 0")
	}
	if _, err := s.productRepo.GetByID(input.ProductID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ProductNotFound(input.ProductID)
		}
		return fmt.Errorf("failed to fetch product %s for order item: %w", input.ProductID, err)
	}

	item, err := models.NewOrderItem(models.OrderItem{
		OrderItemID:   ids.New("oitem"),
		OrderID:       orderID,
		ProductID:     input.ProductID,
		ProductSizeID: input.ProductSizeID,
		Quantity:      input.Quantity,
	})
	if err != nil {
		return err
	}
	if err := s.orderItemRepo.Create(item); err != nil {
		return err
	}

	return s.recalculateTotals(orderID)
}

func (s *orderService) RemoveItem(orderItemID string) error {
	item, err := s.orderItemRepo.GetByID(orderItemID)
	if err != nil {
		return err
	}
	if err := s.orderItemRepo.Delete(orderItemID); err != nil {
		return err
	}
	return s.recalculateTotals(item.OrderID)
}

// recalculateTotals re-derives the order total from its current item set at
// current product prices and rewrites only the stored total. A product that
// has since been deleted surfaces as ProductNotFound rather than a partial
// total.
func (s *orderService) recalculateTotals(orderID string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	items, err := s.orderItemRepo.GetByOrderID(orderID)
	if err != nil {
		return err
	}

	subtotal := 0.0
	prices := make(map[string]float64)
	for _, item := range items {
		price, ok := prices[item.ProductID]
		if !ok {
			product, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return apperrors.ProductNotFound(item.ProductID)
				}
				return fmt.Errorf("failed to fetch product %s for recalculating totals: %w", item.ProductID, err)
			}
			price = product.SellPrice
			prices[item.ProductID] = price
		}
		subtotal += price * float64(item.Quantity)
	}

	// Promo code discount is stored on the order but not applied yet.
	discount := 0.0
	order.TotalPrice = subtotal - discount
	return s.orderRepo.Update(order)
}

func calculateTotals(items []CreateOrderItemInput, productsByID map[string]*models.Product) OrderTotals {
	subtotal := 0.0
	for _, it := range items {
		product := productsByID[it.ProductID]
		subtotal += product.SellPrice * float64(it.Quantity)
	}
	// Promo code discount is stored on the order but not applied yet.
	discount := 0.0
	return OrderTotals{Subtotal: subtotal, Discount: discount, Total: subtotal - discount}
}

// generateOrderNumber builds a display order number. With a sequencer it is
// ORD-YYYYMMDD-NNNN from the daily counter; without one (or when the counter
// is unreachable) it degrades to a timestamp-derived number. Uniqueness is
// best effort either way.
func (s *orderService) generateOrderNumber() string {
	now := time.Now()
	if s.sequencer != nil {
		day := now.Format("20060102")
		n, err := s.sequencer.NextOrderSequence(day)
		if err == nil {
			return fmt.Sprintf("ORD-%s-%04d", day, n)
		}
		log.Printf("Order sequence unavailable, falling back to timestamp: %v", err)
	}
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}
