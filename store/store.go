// Package store holds the persistence layer. Every entity is reached through
// an explicit accessor returning owned value copies; there are no lazy
// relationship traversals.
package store

import (
	"errors"
	"time"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrNoDraft    = errors.New("no checkout draft")
)

// DraftTTL is how long a checkout draft survives before it behaves like a
// missing one.
const DraftTTL = 30 * time.Minute

// Store is the full persistence surface of the storefront. Mutating cart
// operations take the acting user's id and treat rows owned by anyone else as
// ErrNotFound, so a guessed line id cannot touch another user's cart.
type Store interface {
	// Users
	CreateUser(u *models.User) error
	UserByEmail(email string) (models.User, error)
	UserByID(id uint) (models.User, error)

	// Catalog
	Products(search string) ([]models.Product, error)
	ProductByID(id uint) (models.Product, error)
	ProductCount() (int64, error)
	CreateProduct(p *models.Product) error

	// Cart
	CartLinesForUser(userID uint) ([]models.CartLine, error)
	AddToCart(userID, productID uint) error
	IncreaseCartLine(userID, lineID uint) error
	DecreaseCartLine(userID, lineID uint) error
	RemoveCartLine(userID, lineID uint) error

	// Checkout draft
	SaveDraft(d *models.CheckoutDraft) error
	DraftForUser(userID uint) (models.CheckoutDraft, error)
	DeleteDraft(userID uint) error

	// Orders
	PlaceOrder(userID uint, draft models.CheckoutDraft, paymentMethod string) (models.Order, error)
	OrdersForUser(userID uint) ([]models.Order, error)
}
