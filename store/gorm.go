package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/pricing"
)

// Gorm is the Postgres-backed Store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

var _ Store = (*Gorm)(nil)

// Migrate creates or updates the schema.
func (s *Gorm) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.CheckoutDraft{},
	)
}

// -------- Users --------

func (s *Gorm) CreateUser(u *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return s.db.Create(u).Error
}

func (s *Gorm) UserByEmail(email string) (models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

func (s *Gorm) UserByID(id uint) (models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

// -------- Catalog --------

func (s *Gorm) Products(search string) ([]models.Product, error) {
	var products []models.Product
	q := s.db.Order("id")
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Gorm) ProductByID(id uint) (models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return models.Product{}, notFound(err)
	}
	return p, nil
}

func (s *Gorm) ProductCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (s *Gorm) CreateProduct(p *models.Product) error {
	return s.db.Create(p).Error
}

// -------- Cart --------

func (s *Gorm) CartLinesForUser(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart increments the user's existing line for the product, or inserts a
// new line with quantity 1. Done in a transaction so the lookup and write stay
// consistent.
func (s *Gorm) AddToCart(userID, productID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return notFound(err)
		}

		var line models.CartLine
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.CartLine{
				UserID:    userID,
				ProductID: productID,
				Quantity:  1,
				AddedAt:   time.Now(),
			}).Error
		}
		if err != nil {
			return err
		}
		line.Quantity++
		return tx.Save(&line).Error
	})
}

func (s *Gorm) IncreaseCartLine(userID, lineID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		line, err := ownedLine(tx, userID, lineID)
		if err != nil {
			return err
		}
		line.Quantity++
		return tx.Save(&line).Error
	})
}

// DecreaseCartLine subtracts one unit; a quantity-1 line is deleted outright
// so a stored quantity of zero can never exist.
func (s *Gorm) DecreaseCartLine(userID, lineID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		line, err := ownedLine(tx, userID, lineID)
		if err != nil {
			return err
		}
		if line.Quantity <= 1 {
			return tx.Delete(&line).Error
		}
		line.Quantity--
		return tx.Save(&line).Error
	})
}

func (s *Gorm) RemoveCartLine(userID, lineID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartLine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ownedLine fetches a cart line only if it belongs to the user; anyone else's
// line is indistinguishable from a missing one.
func ownedLine(tx *gorm.DB, userID, lineID uint) (models.CartLine, error) {
	var line models.CartLine
	if err := tx.Where("id = ? AND user_id = ?", lineID, userID).First(&line).Error; err != nil {
		return models.CartLine{}, notFound(err)
	}
	return line, nil
}

// -------- Checkout draft --------

func (s *Gorm) SaveDraft(d *models.CheckoutDraft) error {
	d.ExpiresAt = time.Now().Add(DraftTTL)
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CheckoutDraft
		err := tx.Where("user_id = ?", d.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(d).Error
		}
		if err != nil {
			return err
		}
		d.ID = existing.ID
		return tx.Save(d).Error
	})
}

func (s *Gorm) DraftForUser(userID uint) (models.CheckoutDraft, error) {
	var d models.CheckoutDraft
	if err := s.db.Where("user_id = ?", userID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CheckoutDraft{}, ErrNoDraft
		}
		return models.CheckoutDraft{}, err
	}
	if d.Expired(time.Now()) {
		_ = s.db.Delete(&d).Error
		return models.CheckoutDraft{}, ErrNoDraft
	}
	return d, nil
}

func (s *Gorm) DeleteDraft(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CheckoutDraft{}).Error
}

// -------- Orders --------

// PlaceOrder materializes the user's cart into an order inside a single
// transaction: price the lines as they stand, create the order and one order
// line per cart line with the unit price captured now, then delete the cart
// lines and the draft. A crash mid-way leaves no partial state.
func (s *Gorm) PlaceOrder(userID uint, draft models.CheckoutDraft, paymentMethod string) (models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		quote := pricing.ForCart(lines)

		order = models.Order{
			UserID:        userID,
			OrderRef:      newOrderRef(),
			TotalPrice:    quote.TotalPrice,
			Name:          draft.Name,
			PhoneNumber:   draft.PhoneNumber,
			AddressLine1:  draft.AddressLine1,
			AddressLine2:  draft.AddressLine2,
			City:          draft.City,
			State:         draft.State,
			Pincode:       draft.Pincode,
			Landmark:      draft.Landmark,
			PaymentMethod: paymentMethod,
			CreatedAt:     time.Now(),
		}
		for _, line := range lines {
			order.Lines = append(order.Lines, models.OrderLine{
				ProductID:   line.ProductID,
				ProductName: line.Product.Name,
				Quantity:    line.Quantity,
				Price:       line.Product.Price,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CheckoutDraft{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *Gorm) OrdersForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.
		Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
