// Package memstore implementa en memoria todos los puertos de persistencia y un
// TxRunner con rollback por snapshot. Solo para tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

type state struct {
	items      map[string]entity.Item // por ID
	warehouses map[string]entity.Warehouse
	locations  map[string]entity.Location
	suppliers  map[string]entity.Supplier
	users      map[string]entity.User
	movements  []entity.Movement
	nextID     int64
}

func (s *state) clone() *state {
	c := &state{
		items:      make(map[string]entity.Item, len(s.items)),
		warehouses: make(map[string]entity.Warehouse, len(s.warehouses)),
		locations:  make(map[string]entity.Location, len(s.locations)),
		suppliers:  make(map[string]entity.Supplier, len(s.suppliers)),
		users:      make(map[string]entity.User, len(s.users)),
		movements:  make([]entity.Movement, len(s.movements)),
		nextID:     s.nextID,
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	copy(c.movements, s.movements)
	return c
}

// Store almacén en memoria. Las transacciones se serializan (equivale a que todas
// bloqueen la misma fila) y se revierten restaurando el snapshot previo.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   *state

	failAppend error
}

// New crea un store vacío.
func New() *Store {
	return &Store{st: &state{
		items:      map[string]entity.Item{},
		warehouses: map[string]entity.Warehouse{},
		locations:  map[string]entity.Location{},
		suppliers:  map[string]entity.Supplier{},
		users:      map[string]entity.User{},
	}}
}

// FailNextAppend hace que el próximo Append devuelva err (para probar rollback).
func (s *Store) FailNextAppend(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAppend = err
}

// Repos devuelve los repositorios sin transacción.
func (s *Store) Repos() inventory.Repos {
	return inventory.Repos{
		Items:      s.Items(),
		Movements:  s.Movements(),
		Suppliers:  s.Suppliers(),
		Warehouses: s.Warehouses(),
		Locations:  s.Locations(),
	}
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Items() repository.ItemRepository           { return itemRepo{s} }
func (s *Store) Movements() repository.MovementRepository   { return movementRepo{s} }
func (s *Store) Suppliers() repository.SupplierRepository   { return supplierRepo{s} }
func (s *Store) Warehouses() repository.WarehouseRepository { return warehouseRepo{s} }
func (s *Store) Locations() repository.LocationRepository   { return locationRepo{s} }
func (s *Store) Users() repository.UserRepository           { return userRepo{s} }

// ─── Items ─────────────────────────────────────────────────────────────────

type itemRepo struct{ s *Store }

func (r itemRepo) find(material string) (entity.Item, bool) {
	for _, it := range r.s.st.items {
		if it.Material == material {
			return it, true
		}
	}
	return entity.Item{}, false
}

func (r itemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.find(item.Material); ok {
		return domain.ErrDuplicateMaterial
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.s.st.items[item.ID] = *item
	return nil
}

func (r itemRepo) GetByMaterial(ctx context.Context, material string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.find(material)
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r itemRepo) GetByMaterialForUpdate(ctx context.Context, material string) (*entity.Item, error) {
	return r.GetByMaterial(ctx, material)
}

func (r itemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	upd := *item
	upd.Stock = cur.Stock
	r.s.st.items[item.ID] = upd
	return nil
}

func (r itemRepo) SetStock(ctx context.Context, itemID string, stock decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Stock = stock
	cur.UpdatedAt = time.Now()
	r.s.st.items[itemID] = cur
	return nil
}

func (r itemRepo) sorted(keep func(entity.Item) bool) []*entity.Item {
	out := make([]*entity.Item, 0)
	for _, it := range r.s.st.items {
		if keep(it) {
			it := it
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Material < out[j].Material })
	return out
}

func (r itemRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	out := r.sorted(func(it entity.Item) bool {
		return strings.Contains(strings.ToLower(it.Material), q) ||
			strings.Contains(strings.ToLower(it.Description), q)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r itemRepo) ListBelowMinimum(ctx context.Context) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(it entity.Item) bool { return it.BelowMinimum() }), nil
}

func (r itemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(entity.Item) bool { return true }), nil
}

func (r itemRepo) Stats(ctx context.Context) (repository.ItemStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st := repository.ItemStats{TotalStock: decimal.Zero}
	for _, it := range r.s.st.items {
		st.TotalItems++
		if it.BelowMinimum() {
			st.BelowMinimum++
		}
		st.TotalStock = st.TotalStock.Add(it.Stock)
	}
	return st, nil
}

// ─── Movements ─────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r movementRepo) Append(ctx context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failAppend; err != nil {
		r.s.failAppend = nil
		return err
	}
	r.s.st.nextID++
	m.ID = r.s.st.nextID
	m.CreatedAt = time.Now()
	stored := *m
	stored.Material, stored.Description, stored.SupplierName = "", "", ""
	r.s.st.movements = append(r.s.st.movements, stored)
	return nil
}

func (r movementRepo) List(ctx context.Context, filter string, limit int) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := strings.ToLower(filter)
	out := make([]*entity.Movement, 0)
	for i := len(r.s.st.movements) - 1; i >= 0; i-- {
		m := r.s.st.movements[i]
		it := r.s.st.items[m.ItemID]
		if f != "" && !strings.Contains(strings.ToLower(it.Material), f) &&
			!strings.Contains(strings.ToLower(it.Description), f) {
			continue
		}
		m.Material, m.Description = it.Material, it.Description
		if m.SupplierID != nil {
			for _, sp := range r.s.st.suppliers {
				if sp.ID == *m.SupplierID {
					m.SupplierName = sp.Name
				}
			}
		}
		out = append(out, &m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r movementRepo) SumByItem(ctx context.Context) (map[string]decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]decimal.Decimal{}
	for i := range r.s.st.movements {
		m := r.s.st.movements[i]
		out[m.ItemID] = out[m.ItemID].Add(m.Delta())
	}
	return out, nil
}

// Count número de asientos del libro.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.movements)
}

// ─── Catálogo ──────────────────────────────────────────────────────────────

type warehouseRepo struct{ s *Store }

func (r warehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.warehouses[w.Code]; ok {
		return domain.ErrDuplicateKey
	}
	r.s.st.warehouses[w.Code] = *w
	return nil
}

func (r warehouseRepo) GetByCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.st.warehouses[code]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r warehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Warehouse, 0, len(r.s.st.warehouses))
	for _, w := range r.s.st.warehouses {
		w := w
		out = append(out, &w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type locationRepo struct{ s *Store }

func (r locationRepo) Create(ctx context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.locations[l.Code]; ok {
		return domain.ErrDuplicateKey
	}
	r.s.st.locations[l.Code] = *l
	return nil
}

func (r locationRepo) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.st.locations[code]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r locationRepo) List(ctx context.Context, limit int) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Location, 0, len(r.s.st.locations))
	for _, l := range r.s.st.locations {
		l := l
		out = append(out, &l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type supplierRepo struct{ s *Store }

func (r supplierRepo) FindOrCreate(ctx context.Context, name string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sp, ok := r.s.st.suppliers[name]; ok {
		return &sp, nil
	}
	sp := entity.Supplier{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	r.s.st.suppliers[name] = sp
	return &sp, nil
}

func (r supplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.s.st.suppliers))
	for _, sp := range r.s.st.suppliers {
		sp := sp
		out = append(out, &sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ─── Users ─────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.users[u.Username]; ok {
		return domain.ErrDuplicateKey
	}
	r.s.st.users[u.Username] = *u
	return nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.st.users))
	for _, u := range r.s.st.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}
