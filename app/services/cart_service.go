package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/repositories"
	"github.com/vishubh/bizbilling/app/utils/sessions"
)

// CartService applies cart mutations to the visitor's session cart.
// Every mutation saves the cart back to the cookie and returns the
// refreshed state, which the handlers echo to the page for re-render.
type CartService struct {
	store       sessions.Store
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(store sessions.Store, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{store: store, productRepo: productRepo}
}

// Get returns the current session cart without mutating it.
func (s *CartService) Get(r *http.Request) *models.Cart {
	return s.store.GetCart(r)
}

// AddProduct looks the product up in the catalog and adds it to the
// cart; re-adding an existing product bumps its quantity by 1.
func (s *CartService) AddProduct(ctx context.Context, w http.ResponseWriter, r *http.Request, productID string) (*models.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, fmt.Errorf("product not found")
	}

	cart := s.store.GetCart(r)
	cart.AddProduct(product)

	if err := s.store.SaveCart(w, r, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) RemoveProduct(w http.ResponseWriter, r *http.Request, productID string) (*models.Cart, error) {
	cart := s.store.GetCart(r)
	cart.RemoveProduct(productID)

	if err := s.store.SaveCart(w, r, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// UpdateQuantity applies raw quantity input to an item; values that do
// not parse, or parse to <= 0, remove the item.
func (s *CartService) UpdateQuantity(w http.ResponseWriter, r *http.Request, productID, value string) (*models.Cart, error) {
	cart := s.store.GetCart(r)
	cart.UpdateQuantity(productID, value)

	if err := s.store.SaveCart(w, r, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) SetDiscount(w http.ResponseWriter, r *http.Request, value string) (*models.Cart, error) {
	cart := s.store.GetCart(r)
	cart.SetDiscount(value)

	if err := s.store.SaveCart(w, r, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) SetReceivedAmount(w http.ResponseWriter, r *http.Request, value string) (*models.Cart, error) {
	cart := s.store.GetCart(r)
	cart.SetReceivedAmount(value)

	if err := s.store.SaveCart(w, r, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// Clear empties the cart after an invoice is generated or on request.
func (s *CartService) Clear(w http.ResponseWriter, r *http.Request) (*models.Cart, error) {
	cart := s.store.GetCart(r)
	cart.Clear()

	if err := s.store.SaveCart(w, r, cart); err != nil {
		log.Warn().Err(err).Msg("cart: failed to save cleared cart")
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}
