package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre el
// store en memoria.
type TransactionRepo struct {
	s       *Store
	guarded bool
}

// NewTransactionRepository construye el adaptador de persistencia del ledger.
func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s, guarded: true}
}

// Create persiste una nueva transacción.
func (r *TransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	if r.guarded {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.transactions[tx.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.transactions[tx.ID] = cloneTransaction(tx)
	return nil
}

// GetByID obtiene una transacción por ID; (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return cloneTransaction(r.s.transactions[id]), nil
}

// GetByIDForUpdate en memoria equivale a GetByID (ver OrderRepo).
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza la transacción.
func (r *TransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	if r.guarded {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.transactions[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.transactions[tx.ID] = cloneTransaction(tx)
	return nil
}

// ListBySupplier lista las transacciones de un proveedor, más recientes primero.
func (r *TransactionRepo) ListBySupplier(_ context.Context, supplierID string) ([]*entity.Transaction, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.SupplierID == supplierID {
			out = append(out, cloneTransaction(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
