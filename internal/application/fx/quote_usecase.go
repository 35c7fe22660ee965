// Package fx expone la cotización con resolución de tarifa por cliente.
package fx

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	domainfx "github.com/jhoicas/cambio-api/internal/domain/fx"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// Config tasa de cambio y tarifa por defecto del proceso. La tasa es una
// constante de configuración (no hay fetching en tiempo real).
type Config struct {
	RateCNYBRL        decimal.Decimal
	DefaultFeePercent decimal.Decimal
}

// QuoteUseCase cotiza montos CNY -> BRL resolviendo la tarifa del cliente.
type QuoteUseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewQuoteUseCase construye el caso de uso de cotización.
func NewQuoteUseCase(users repository.UserRepository, cfg Config) *QuoteUseCase {
	return &QuoteUseCase{users: users, cfg: cfg}
}

// QuoteForClient cotiza con el override de tarifa del cliente si existe, o la
// tarifa por defecto. Un clientID desconocido o vacío cotiza con la tarifa
// por defecto: la cotización es una lectura, no valida identidad.
func (uc *QuoteUseCase) QuoteForClient(ctx context.Context, clientID string, amountYuan decimal.Decimal) (*dto.QuoteResponse, error) {
	fee := uc.cfg.DefaultFeePercent
	if clientID != "" {
		u, err := uc.users.GetByID(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if u != nil && u.FeePercentage != nil {
			fee = *u.FeePercentage
		}
	}

	conv, err := domainfx.Convert(amountYuan, uc.cfg.RateCNYBRL, fee)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		AmountYuan: conv.AmountYuan,
		Rate:       conv.Rate,
		FeePercent: conv.FeePercent,
		ValueBRL:   conv.ValueBRL,
		FeeBRL:     conv.FeeBRL,
		TotalBRL:   conv.TotalBRL,
	}, nil
}

// Rate devuelve la tasa vigente (para mostrarla en la UI).
func (uc *QuoteUseCase) Rate() decimal.Decimal {
	return uc.cfg.RateCNYBRL
}
