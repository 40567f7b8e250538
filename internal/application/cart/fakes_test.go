package cart_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// memStore emula la BD en memoria. El mutex cumple el papel de la
// transacción con bloqueo de fila: mientras una mutación está dentro de
// Run, ninguna otra puede leer-modificar-escribir la misma línea.
type memStore struct {
	mu       sync.Mutex
	products map[string]entity.Product
	items    map[string]entity.CartItem // clave userID|productID
	order    []string                   // orden de inserción de claves
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]entity.Product),
		items:    make(map[string]entity.CartItem),
	}
}

func (s *memStore) putProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *memStore) setPrice(productID string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.products[productID]
	p.Price = price
	s.products[productID] = p
}

func (s *memStore) setActive(productID string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.products[productID]
	p.IsActive = active
	s.products[productID] = p
}

func itemKey(userID, productID string) string { return userID + "|" + productID }

// memCartRepo implementa repository.CartRepository sobre memStore.
// locked=false cuando el repo vive dentro de Run (el mutex ya está tomado).
type memCartRepo struct {
	s      *memStore
	locked bool
}

func (r *memCartRepo) acquire() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memCartRepo) Get(_ context.Context, userID, productID string) (*entity.CartItem, error) {
	defer r.acquire()()
	if item, ok := r.s.items[itemKey(userID, productID)]; ok {
		cp := item
		return &cp, nil
	}
	return nil, nil
}

func (r *memCartRepo) GetForUpdate(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	return r.Get(ctx, userID, productID)
}

func (r *memCartRepo) Create(_ context.Context, item *entity.CartItem) error {
	defer r.acquire()()
	key := itemKey(item.UserID, item.ProductID)
	if _, ok := r.s.items[key]; ok {
		return domain.ErrConflict
	}
	r.s.items[key] = *item
	r.s.order = append(r.s.order, key)
	return nil
}

func (r *memCartRepo) UpdateQuantity(_ context.Context, item *entity.CartItem) error {
	defer r.acquire()()
	key := itemKey(item.UserID, item.ProductID)
	if _, ok := r.s.items[key]; !ok {
		return domain.ErrNotFound
	}
	r.s.items[key] = *item
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, userID, productID string) (bool, error) {
	defer r.acquire()()
	key := itemKey(userID, productID)
	if _, ok := r.s.items[key]; !ok {
		return false, nil
	}
	delete(r.s.items, key)
	return true, nil
}

func (r *memCartRepo) DeleteAll(_ context.Context, userID string) (int64, error) {
	defer r.acquire()()
	var n int64
	for key, item := range r.s.items {
		if item.UserID == userID {
			delete(r.s.items, key)
			n++
		}
	}
	return n, nil
}

func (r *memCartRepo) ListByUser(_ context.Context, userID string) ([]*entity.CartLine, error) {
	defer r.acquire()()
	// Más reciente primero, como el ORDER BY created_at DESC del adaptador real.
	var lines []*entity.CartLine
	for i := len(r.s.order) - 1; i >= 0; i-- {
		item, ok := r.s.items[r.s.order[i]]
		if !ok || item.UserID != userID {
			continue
		}
		p := r.s.products[item.ProductID]
		lines = append(lines, &entity.CartLine{
			Item:          item,
			ProductName:   p.Name,
			ProductSlug:   p.Slug,
			Price:         p.Price,
			Images:        p.Images,
			StockQuantity: p.StockQuantity,
			ProductActive: p.IsActive,
		})
	}
	return lines, nil
}

// memProductRepo implementa el directorio de productos sobre memStore.
type memProductRepo struct {
	s      *memStore
	locked bool
}

func (r *memProductRepo) acquire() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.acquire()()
	if p, ok := r.s.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetBySlug(string) (*entity.Product, error) { return nil, nil }

func (r *memProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *memProductRepo) ListFeatured(int) ([]*entity.Product, error) { return nil, nil }

func (r *memProductRepo) ListByCategory(string, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

// memTxRunner serializa las mutaciones con el mutex del store, igual que
// la transacción real serializa por fila bloqueada.
type memTxRunner struct {
	s *memStore
}

func (t *memTxRunner) Run(_ context.Context, fn func(repository.CartRepository, repository.ProductRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&memCartRepo{s: t.s, locked: true}, &memProductRepo{s: t.s, locked: true})
}

// conflictTxRunner falla con ErrConflict las primeras fails ejecuciones y
// después delega, para ejercitar el reintento del caso de uso.
type conflictTxRunner struct {
	inner cart.TxRunner
	fails int
	calls int
}

func (t *conflictTxRunner) Run(ctx context.Context, fn func(repository.CartRepository, repository.ProductRepository) error) error {
	t.calls++
	if t.calls <= t.fails {
		return domain.ErrConflict
	}
	return t.inner.Run(ctx, fn)
}

// newCartUseCase arma el caso de uso completo sobre un memStore.
func newCartUseCase(s *memStore) *cart.UseCase {
	return cart.NewUseCase(&memTxRunner{s: s}, &memCartRepo{s: s}, &memProductRepo{s: s})
}
