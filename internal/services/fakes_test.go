package services

import (
	"errors"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// In-memory repositories used across the service tests.

type fakeOrderRepo struct {
	orders map[string]models.Order
	items  *fakeOrderItemRepo
}

func newFakeOrderRepo(items *fakeOrderItemRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]models.Order), items: items}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.orders[order.OrderID] = *order
	return nil
}

func (r *fakeOrderRepo) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	r.orders[order.OrderID] = *order
	for i := range items {
		r.items.items[items[i].OrderItemID] = items[i]
	}
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order", id)
	}
	return &order, nil
}

func (r *fakeOrderRepo) GetByBusinessID(businessID string) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.BusinessID == businessID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID string) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.OrderID]; !ok {
		return apperrors.NotFound("order", order.OrderID)
	}
	r.orders[order.OrderID] = *order
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	if _, ok := r.orders[id]; !ok {
		return apperrors.NotFound("order", id)
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) DeleteWithItems(id string) error {
	if _, ok := r.orders[id]; !ok {
		return apperrors.NotFound("order", id)
	}
	delete(r.orders, id)
	for itemID, item := range r.items.items {
		if item.OrderID == id {
			delete(r.items.items, itemID)
		}
	}
	return nil
}

type fakeOrderItemRepo struct {
	items map[string]models.OrderItem
}

func newFakeOrderItemRepo() *fakeOrderItemRepo {
	return &fakeOrderItemRepo{items: make(map[string]models.OrderItem)}
}

func (r *fakeOrderItemRepo) Create(item *models.OrderItem) error {
	r.items[item.OrderItemID] = *item
	return nil
}

func (r *fakeOrderItemRepo) GetByID(id string) (*models.OrderItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.NotFound("order item", id)
	}
	return &item, nil
}

func (r *fakeOrderItemRepo) GetByOrderID(orderID string) ([]models.OrderItem, error) {
	out := make([]models.OrderItem, 0)
	for _, item := range r.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) GetAll() ([]models.OrderItem, error) {
	out := make([]models.OrderItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeOrderItemRepo) Update(item *models.OrderItem) error {
	if _, ok := r.items[item.OrderItemID]; !ok {
		return apperrors.NotFound("order item", item.OrderItemID)
	}
	r.items[item.OrderItemID] = *item
	return nil
}

func (r *fakeOrderItemRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NotFound("order item", id)
	}
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]models.Product
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]models.Product)}
	for _, p := range products {
		r.products[p.ProductID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	r.products[product.ProductID] = *product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	return &product, nil
}

func (r *fakeProductRepo) GetByBusinessID(businessID string) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for _, p := range r.products {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByInventoryID(inventoryID string) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for _, p := range r.products {
		if p.InventoryID != nil && *p.InventoryID == inventoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetAll() ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	if _, ok := r.products[product.ProductID]; !ok {
		return apperrors.NotFound("product", product.ProductID)
	}
	r.products[product.ProductID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return apperrors.NotFound("product", id)
	}
	delete(r.products, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]models.Customer)}
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	r.customers[customer.CustomerID] = *customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, apperrors.NotFound("customer", id)
	}
	return &customer, nil
}

func (r *fakeCustomerRepo) GetByBusinessID(businessID string) ([]models.Customer, error) {
	out := make([]models.Customer, 0)
	for _, c := range r.customers {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(customer *models.Customer) error {
	if _, ok := r.customers[customer.CustomerID]; !ok {
		return apperrors.NotFound("customer", customer.CustomerID)
	}
	r.customers[customer.CustomerID] = *customer
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	if _, ok := r.customers[id]; !ok {
		return apperrors.NotFound("customer", id)
	}
	delete(r.customers, id)
	return nil
}

type fakePromoCodeRepo struct {
	promoCodes map[string]models.PromoCode
}

func newFakePromoCodeRepo() *fakePromoCodeRepo {
	return &fakePromoCodeRepo{promoCodes: make(map[string]models.PromoCode)}
}

func (r *fakePromoCodeRepo) Create(promoCode *models.PromoCode) error {
	r.promoCodes[promoCode.PromoCodeID] = *promoCode
	return nil
}

func (r *fakePromoCodeRepo) GetByID(id string) (*models.PromoCode, error) {
	promoCode, ok := r.promoCodes[id]
	if !ok {
		return nil, apperrors.NotFound("promo code", id)
	}
	return &promoCode, nil
}

func (r *fakePromoCodeRepo) GetByBusinessID(businessID string) ([]models.PromoCode, error) {
	out := make([]models.PromoCode, 0)
	for _, p := range r.promoCodes {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePromoCodeRepo) GetAll() ([]models.PromoCode, error) {
	out := make([]models.PromoCode, 0, len(r.promoCodes))
	for _, p := range r.promoCodes {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePromoCodeRepo) Update(promoCode *models.PromoCode) error {
	if _, ok := r.promoCodes[promoCode.PromoCodeID]; !ok {
		return apperrors.NotFound("promo code", promoCode.PromoCodeID)
	}
	r.promoCodes[promoCode.PromoCodeID] = *promoCode
	return nil
}

func (r *fakePromoCodeRepo) Delete(id string) error {
	if _, ok := r.promoCodes[id]; !ok {
		return apperrors.NotFound("promo code", id)
	}
	delete(r.promoCodes, id)
	return nil
}

type fakeCheckoutLinkRepo struct {
	links map[string]models.CheckoutLink
}

func newFakeCheckoutLinkRepo() *fakeCheckoutLinkRepo {
	return &fakeCheckoutLinkRepo{links: make(map[string]models.CheckoutLink)}
}

func (r *fakeCheckoutLinkRepo) Create(link *models.CheckoutLink) error {
	r.links[link.LinkID] = *link
	return nil
}

func (r *fakeCheckoutLinkRepo) GetByID(id string) (*models.CheckoutLink, error) {
	link, ok := r.links[id]
	if !ok {
		return nil, apperrors.NotFound("checkout link", id)
	}
	return &link, nil
}

func (r *fakeCheckoutLinkRepo) GetByToken(token string) (*models.CheckoutLink, error) {
	for _, link := range r.links {
		if link.UniqueToken == token {
			return &link, nil
		}
	}
	return nil, apperrors.NotFound("checkout link", token)
}

func (r *fakeCheckoutLinkRepo) GetByOrderID(orderID string) ([]models.CheckoutLink, error) {
	out := make([]models.CheckoutLink, 0)
	for _, link := range r.links {
		if link.OrderID == orderID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (r *fakeCheckoutLinkRepo) GetAll() ([]models.CheckoutLink, error) {
	out := make([]models.CheckoutLink, 0, len(r.links))
	for _, link := range r.links {
		out = append(out, link)
	}
	return out, nil
}

func (r *fakeCheckoutLinkRepo) Update(link *models.CheckoutLink) error {
	if _, ok := r.links[link.LinkID]; !ok {
		return apperrors.NotFound("checkout link", link.LinkID)
	}
	r.links[link.LinkID] = *link
	return nil
}

func (r *fakeCheckoutLinkRepo) Delete(id string) error {
	if _, ok := r.links[id]; !ok {
		return apperrors.NotFound("checkout link", id)
	}
	delete(r.links, id)
	return nil
}

// fakeSequencer hands out deterministic per-day counters.
type fakeSequencer struct {
	counts map[string]int64
	err    error
}

func (s *fakeSequencer) NextOrderSequence(day string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.counts == nil {
		s.counts = make(map[string]int64)
	}
	s.counts[day]++
	return s.counts[day], nil
}

// fakeTokenCache is a map-backed TokenCache.
type fakeTokenCache struct {
	tokens map[string]string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{tokens: make(map[string]string)}
}

func (c *fakeTokenCache) SetCheckoutToken(token, orderID string, _ time.Duration) error {
	c.tokens[token] = orderID
	return nil
}

func (c *fakeTokenCache) GetCheckoutToken(token string) (string, error) {
	orderID, ok := c.tokens[token]
	if !ok {
		return "", errors.New("checkout token not cached")
	}
	return orderID, nil
}

func (c *fakeTokenCache) DeleteCheckoutToken(token string) error {
	delete(c.tokens, token)
	return nil
}
