// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"telegram-shop-bot/internal/domain"
	"telegram-shop-bot/internal/domain/model"
	"telegram-shop-bot/internal/domain/ports/adapter"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// memStateRepo is a small in-memory state store used by the engine tests.
type memStateRepo struct {
	mu       sync.Mutex
	states   map[int64]model.ConversationState
	getErr   error
	setErr   error
	setCalls int
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{states: make(map[int64]model.ConversationState)}
}

func (m *memStateRepo) Get(ctx context.Context, chatID int64) (model.ConversationState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	s, ok := m.states[chatID]
	return s, ok, nil
}

func (m *memStateRepo) Set(ctx context.Context, chatID int64, state model.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.states[chatID] = state
	return nil
}

// seed stores a state without counting as an engine write.
func (m *memStateRepo) seed(chatID int64, state model.ConversationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = state
}

func (m *memStateRepo) stateOf(chatID int64) (model.ConversationState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[chatID]
	return s, ok
}

type addCall struct {
	productID string
	quantity  int
}

// mockCommerce implements adapter.CommerceClient over an in-memory catalog
// and cart. Func fields override individual operations, usually to inject
// failures.
type mockCommerce struct {
	mu         sync.Mutex
	products   []model.Product
	cents      map[string]int // unit price per product id
	images     map[string]string
	lines      []model.CartLine
	registered []string
	addCalls   []addCall

	ListProductsFunc     func(ctx context.Context) ([]model.Product, error)
	GetProductFunc       func(ctx context.Context, productID string) (*model.Product, error)
	GetImageURLFunc      func(ctx context.Context, imageID string) (string, error)
	GetCartFunc          func(ctx context.Context, chatID int64) (*model.Cart, error)
	AddCartLineFunc      func(ctx context.Context, chatID int64, productID string, quantity int) error
	RemoveCartLineFunc   func(ctx context.Context, chatID int64, lineID string) error
	RegisterCustomerFunc func(ctx context.Context, chatID int64, email string) error
}

var _ adapter.CommerceClient = (*mockCommerce)(nil)

func newMockCommerce() *mockCommerce {
	return &mockCommerce{
		products: []model.Product{
			{ID: "P1", Name: "Smoked salmon", Description: "Cold-smoked fillet", Price: "$12.00", WeightKG: 0.5, ImageID: "img-1"},
			{ID: "P2", Name: "Tuna steak", Description: "Yellowfin, sashimi grade", Price: "$9.50", WeightKG: 0.3, ImageID: "img-2"},
		},
		cents: map[string]int{"P1": 1200, "P2": 950},
		images: map[string]string{
			"img-1": "https://cdn.example.com/img-1.jpg",
			"img-2": "https://cdn.example.com/img-2.jpg",
		},
	}
}

func formatCents(c int) string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

func (m *mockCommerce) ListProducts(ctx context.Context) ([]model.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockCommerce) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, productID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == productID {
			cp := p
			return &cp, nil
		}
	}
	return nil, &domain.RemoteError{Status: 404, Body: "product not found"}
}

func (m *mockCommerce) GetImageURL(ctx context.Context, imageID string) (string, error) {
	if m.GetImageURLFunc != nil {
		return m.GetImageURLFunc(ctx, imageID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.images[imageID]
	if !ok {
		return "", &domain.RemoteError{Status: 404, Body: "file not found"}
	}
	return u, nil
}

func (m *mockCommerce) GetCart(ctx context.Context, chatID int64) (*model.Cart, error) {
	if m.GetCartFunc != nil {
		return m.GetCartFunc(ctx, chatID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := &model.Cart{Lines: make([]model.CartLine, len(m.lines))}
	copy(cart.Lines, m.lines)
	total := 0
	for _, l := range m.lines {
		total += l.Quantity * m.cents[l.ProductID]
	}
	cart.Total = formatCents(total)
	return cart, nil
}

func (m *mockCommerce) AddCartLine(ctx context.Context, chatID int64, productID string, quantity int) error {
	if m.AddCartLineFunc != nil {
		return m.AddCartLineFunc(ctx, chatID, productID, quantity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls = append(m.addCalls, addCall{productID: productID, quantity: quantity})
	unit, ok := m.cents[productID]
	if !ok {
		return &domain.RemoteError{Status: 404, Body: "product not found"}
	}
	var name string
	for _, p := range m.products {
		if p.ID == productID {
			name = p.Name
		}
	}
	for i, l := range m.lines {
		if l.ProductID == productID {
			m.lines[i].Quantity += quantity
			m.lines[i].LineTotal = formatCents(m.lines[i].Quantity * unit)
			return nil
		}
	}
	m.lines = append(m.lines, model.CartLine{
		ID:        "line-" + productID,
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: formatCents(unit),
		LineTotal: formatCents(quantity * unit),
	})
	return nil
}

func (m *mockCommerce) RemoveCartLine(ctx context.Context, chatID int64, lineID string) error {
	if m.RemoveCartLineFunc != nil {
		return m.RemoveCartLineFunc(ctx, chatID, lineID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.lines {
		if l.ID == lineID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return nil
		}
	}
	return &domain.RemoteError{Status: 404, Body: "cart line not found"}
}

func (m *mockCommerce) RegisterCustomer(ctx context.Context, chatID int64, email string) error {
	if m.RegisterCustomerFunc != nil {
		return m.RegisterCustomerFunc(ctx, chatID, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registered = append(m.registered, email)
	return nil
}

type sentCall struct {
	kind   string // message | buttons | photo | edit | delete
	chatID int64
	msgID  int // edit and delete only
	text   string
	rows   [][]adapter.InlineButton
}

// mockTransport records outbound renders.
type mockTransport struct {
	mu      sync.Mutex
	sent    []sentCall
	sendErr error // when set, every call fails with it
}

var _ adapter.ChatTransport = (*mockTransport)(nil)

func (m *mockTransport) record(c sentCall) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, c)
	return nil
}

func (m *mockTransport) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.record(sentCall{kind: "message", chatID: chatID, text: text})
}

func (m *mockTransport) SendButtons(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) error {
	return m.record(sentCall{kind: "buttons", chatID: chatID, text: text, rows: rows})
}

func (m *mockTransport) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, rows [][]adapter.InlineButton) error {
	return m.record(sentCall{kind: "photo", chatID: chatID, text: caption, rows: rows})
}

func (m *mockTransport) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	return m.record(sentCall{kind: "edit", chatID: chatID, msgID: messageID, text: text})
}

func (m *mockTransport) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return m.record(sentCall{kind: "delete", chatID: chatID, msgID: messageID})
}

func (m *mockTransport) calls() []sentCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentCall, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *mockTransport) last() (sentCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentCall{}, false
	}
	return m.sent[len(m.sent)-1], true
}

func (m *mockTransport) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}
