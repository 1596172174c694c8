package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/pricing"
)

// Memory is an in-memory Store. It backs the tests and lets the app run
// without a database; a single mutex stands in for transactions.
type Memory struct {
	mu sync.Mutex

	nextUserID    uint
	nextProductID uint
	nextLineID    uint
	nextDraftID   uint
	nextOrderID   uint

	users    map[uint]models.User
	products map[uint]models.Product
	lines    map[uint]models.CartLine
	drafts   map[uint]models.CheckoutDraft // keyed by user id
	orders   map[uint]models.Order
}

func NewMemory() *Memory {
	return &Memory{
		nextUserID:    1,
		nextProductID: 1,
		nextLineID:    1,
		nextDraftID:   1,
		nextOrderID:   1,
		users:         make(map[uint]models.User),
		products:      make(map[uint]models.Product),
		lines:         make(map[uint]models.CartLine),
		drafts:        make(map[uint]models.CheckoutDraft),
		orders:        make(map[uint]models.Order),
	}
}

var _ Store = (*Memory)(nil)

// -------- Users --------

func (m *Memory) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = m.nextUserID
	m.nextUserID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UserByEmail(email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) UserByID(id uint) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

// -------- Catalog --------

func (m *Memory) Products(search string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var products []models.Product
	needle := strings.ToLower(search)
	for _, p := range m.products {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *Memory) ProductByID(id uint) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) ProductCount() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.products)), nil
}

func (m *Memory) CreateProduct(p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextProductID
	m.nextProductID++
	m.products[p.ID] = *p
	return nil
}

// -------- Cart --------

func (m *Memory) CartLinesForUser(userID uint) ([]models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cartLinesLocked(userID), nil
}

func (m *Memory) cartLinesLocked(userID uint) []models.CartLine {
	var lines []models.CartLine
	for _, line := range m.lines {
		if line.UserID == userID {
			line.Product = m.products[line.ProductID]
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines
}

func (m *Memory) AddToCart(userID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[productID]; !ok {
		return ErrNotFound
	}
	for id, line := range m.lines {
		if line.UserID == userID && line.ProductID == productID {
			line.Quantity++
			m.lines[id] = line
			return nil
		}
	}
	line := models.CartLine{
		ID:        m.nextLineID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		AddedAt:   time.Now(),
	}
	m.nextLineID++
	m.lines[line.ID] = line
	return nil
}

func (m *Memory) IncreaseCartLine(userID, lineID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	line, ok := m.lines[lineID]
	if !ok || line.UserID != userID {
		return ErrNotFound
	}
	line.Quantity++
	m.lines[lineID] = line
	return nil
}

func (m *Memory) DecreaseCartLine(userID, lineID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	line, ok := m.lines[lineID]
	if !ok || line.UserID != userID {
		return ErrNotFound
	}
	if line.Quantity <= 1 {
		delete(m.lines, lineID)
		return nil
	}
	line.Quantity--
	m.lines[lineID] = line
	return nil
}

func (m *Memory) RemoveCartLine(userID, lineID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	line, ok := m.lines[lineID]
	if !ok || line.UserID != userID {
		return ErrNotFound
	}
	delete(m.lines, lineID)
	return nil
}

// -------- Checkout draft --------

func (m *Memory) SaveDraft(d *models.CheckoutDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ExpiresAt = time.Now().Add(DraftTTL)
	if existing, ok := m.drafts[d.UserID]; ok {
		d.ID = existing.ID
	} else {
		d.ID = m.nextDraftID
		m.nextDraftID++
	}
	m.drafts[d.UserID] = *d
	return nil
}

func (m *Memory) DraftForUser(userID uint) (models.CheckoutDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[userID]
	if !ok {
		return models.CheckoutDraft{}, ErrNoDraft
	}
	if d.Expired(time.Now()) {
		delete(m.drafts, userID)
		return models.CheckoutDraft{}, ErrNoDraft
	}
	return d, nil
}

func (m *Memory) DeleteDraft(userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, userID)
	return nil
}

// -------- Orders --------

func (m *Memory) PlaceOrder(userID uint, draft models.CheckoutDraft, paymentMethod string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.cartLinesLocked(userID)
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	quote := pricing.ForCart(lines)

	order := models.Order{
		ID:            m.nextOrderID,
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
	m.nextOrderID++
	for _, line := range lines {
		order.Lines = append(order.Lines, models.OrderLine{
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
		delete(m.lines, line.ID)
	}
	m.orders[order.ID] = order
	delete(m.drafts, userID)
	return order, nil
}

func (m *Memory) OrdersForUser(userID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			o.Lines = append([]models.OrderLine(nil), o.Lines...)
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
