package memory

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/application/balance"
	"github.com/jhoicas/cambio-api/internal/application/ledger"
	"github.com/jhoicas/cambio-api/internal/application/orders"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ balance.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con el lock exclusivo del store tomado. Los
// repos que recibe fn no vuelven a tomar el lock (guarded=false). No hay
// rollback: los casos de uso validan todo antes de mutar, así que un fn que
// falla no deja escrituras parciales.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos de pedidos y usuarios bajo el lock exclusivo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&OrderRepo{s: r.s}, &UserRepo{s: r.s})
}

// RunLedger ejecuta fn con repos de pedidos y transacciones bajo el lock
// exclusivo. El lock es global, así que supplierID no necesita tratamiento
// especial: cualquier par de operaciones del ledger queda serializado.
func (r *TxRunner) RunLedger(ctx context.Context, supplierID string, fn func(
	orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&OrderRepo{s: r.s}, &TransactionRepo{s: r.s})
}
