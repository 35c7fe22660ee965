// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, sin dependencias externas. Un único RWMutex cubre
// las tres colecciones: las lecturas del reconciliador ven un snapshot
// consistente de pedidos y transacciones, y las mutaciones dentro del
// TxRunner corren con el lock exclusivo tomado.
package memory

import (
	"sync"

	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

// Store tablas en memoria del marketplace.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*entity.User
	orders       map[string]*entity.Order
	transactions map[string]*entity.Transaction
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]*entity.User),
		orders:       make(map[string]*entity.Order),
		transactions: make(map[string]*entity.Transaction),
	}
}

// Los repos devuelven copias: el caller nunca recibe un puntero a la fila
// interna, así una mutación fuera del repo no toca el estado del store.

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.FeePercentage != nil {
		fee := *u.FeePercentage
		cp.FeePercentage = &fee
	}
	return &cp
}

func cloneOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	cp := *o
	if o.ShippingPhotos != nil {
		cp.ShippingPhotos = append([]string(nil), o.ShippingPhotos...)
	}
	return &cp
}

func cloneTransaction(t *entity.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
