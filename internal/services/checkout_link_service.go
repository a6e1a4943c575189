package services

import (
	"log"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"

	"github.com/google/uuid"
)

// TokenCache fronts checkout-token resolution with a short-lived cache.
// A nil cache disables caching; cache failures are logged and ignored.
type TokenCache interface {
	SetCheckoutToken(token, orderID string, ttl time.Duration) error
	GetCheckoutToken(token string) (string, error)
	DeleteCheckoutToken(token string) error
}

type CheckoutLinkService interface {
	CreateCheckoutLink(orderID string) (*models.CheckoutLink, error)
	GetCheckoutLinkByID(linkID string) (*models.CheckoutLink, error)
	GetCheckoutLinksByOrder(orderID string) ([]models.CheckoutLink, error)
	GetAllCheckoutLinks() ([]models.CheckoutLink, error)
	// ResolveToken returns the order a checkout token points at, provided
	// the link is still active.
	ResolveToken(token string) (*models.Order, error)
	DeactivateCheckoutLink(linkID string) (*models.CheckoutLink, error)
	DeleteCheckoutLink(linkID string) error
}

type checkoutLinkService struct {
	linkRepo  repository.CheckoutLinkRepository
	orderRepo repository.OrderRepository
	cache     TokenCache
	cacheTTL  time.Duration
}

func NewCheckoutLinkService(
	linkRepo repository.CheckoutLinkRepository,
	orderRepo repository.OrderRepository,
	cache TokenCache,
	cacheTTL time.Duration,
) CheckoutLinkService {
	return &checkoutLinkService{
		linkRepo:  linkRepo,
		orderRepo: orderRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *checkoutLinkService) CreateCheckoutLink(orderID string) (*models.CheckoutLink, error) {
	if orderID == "" {
		return nil, apperrors.Validation("order id is required")
	}
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, err
	}

	link, err := models.NewCheckoutLink(models.CheckoutLink{
		LinkID:      ids.New("link"),
		OrderID:     orderID,
		UniqueToken: uuid.NewString(),
		IsActive:    true,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.linkRepo.Create(link); err != nil {
		return nil, err
	}
	s.cacheToken(link.UniqueToken, orderID)
	log.Printf("Checkout link created %s for order %s", link.LinkID, orderID)
	return link, nil
}

func (s *checkoutLinkService) GetCheckoutLinkByID(linkID string) (*models.CheckoutLink, error) {
	return s.linkRepo.GetByID(linkID)
}

func (s *checkoutLinkService) GetCheckoutLinksByOrder(orderID string) ([]models.CheckoutLink, error) {
	return s.linkRepo.GetByOrderID(orderID)
}

func (s *checkoutLinkService) GetAllCheckoutLinks() ([]models.CheckoutLink, error) {
	return s.linkRepo.GetAll()
}

func (s *checkoutLinkService) ResolveToken(token string) (*models.Order, error) {
	if token == "" {
		return nil, apperrors.Validation("checkout token is required")
	}

	if s.cache != nil {
		if orderID, err := s.cache.GetCheckoutToken(token); err == nil {
			return s.orderRepo.GetByID(orderID)
		}
	}

	link, err := s.linkRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if !link.IsActive {
		return nil, apperrors.Validation("checkout link is no longer active")
	}

	s.cacheToken(token, link.OrderID)
	return s.orderRepo.GetByID(link.OrderID)
}

func (s *checkoutLinkService) DeactivateCheckoutLink(linkID string) (*models.CheckoutLink, error) {
	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return nil, err
	}
	link.IsActive = false
	if err := s.linkRepo.Update(link); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.DeleteCheckoutToken(link.UniqueToken); err != nil {
			log.Printf("Failed to evict checkout token from cache: %v", err)
		}
	}
	log.Printf("Checkout link deactivated %s", linkID)
	return link, nil
}

func (s *checkoutLinkService) DeleteCheckoutLink(linkID string) error {
	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return err
	}
	if err := s.linkRepo.Delete(linkID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.DeleteCheckoutToken(link.UniqueToken); err != nil {
			log.Printf("Failed to evict checkout token from cache: %v", err)
		}
	}
	log.Printf("Checkout link deleted %s", linkID)
	return nil
}

func (s *checkoutLinkService) cacheToken(token, orderID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetCheckoutToken(token, orderID, s.cacheTTL); err != nil {
		log.Printf("Failed to cache checkout token: %v", err)
	}
}
