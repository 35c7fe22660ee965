package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, supplier_id, amount_yuan, kind, status, date`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	db DB
}

// NewTransactionRepository construye el adaptador de persistencia del ledger.
func NewTransactionRepository(db DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create persiste una nueva transacción.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		tx.ID, tx.SupplierID, tx.AmountYuan, tx.Kind, tx.Status, tx.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID; (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

// GetByIDForUpdate lee la transacción bloqueando la fila; entre dos
// resoluciones concurrentes solo una gana.
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
}

func (r *TransactionRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.SupplierID, &t.AmountYuan, &t.Kind, &t.Status, &t.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update escribe el estado de la transacción (única mutación permitida).
func (r *TransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	_, err := r.db.Exec(ctx, `UPDATE transactions SET status = $2 WHERE id = $1`, tx.ID, tx.Status)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// ListBySupplier lista las transacciones de un proveedor, más recientes primero.
func (r *TransactionRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE supplier_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.SupplierID, &t.AmountYuan, &t.Kind, &t.Status, &t.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
