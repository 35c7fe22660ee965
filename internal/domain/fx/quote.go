// Package fx implementa la conversión de moneda del marketplace (servicio de
// dominio puro, sin estado). La cotización nunca se persiste: se recalcula en
// cada consulta con la tasa y la tarifa vigentes.
package fx

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Conversion es el desglose de una cotización CNY -> BRL.
//
//	ValueBRL = amountYuan * rate
//	FeeBRL   = ValueBRL * feePercent / 100
//	TotalBRL = ValueBRL + FeeBRL
type Conversion struct {
	AmountYuan decimal.Decimal
	Rate       decimal.Decimal
	FeePercent decimal.Decimal
	ValueBRL   decimal.Decimal
	FeeBRL     decimal.Decimal
	TotalBRL   decimal.Decimal
}

// Convert calcula la cotización para un monto en yuanes.
// Rechaza monto o tasa no positivos y tarifa negativa con ErrInvalidInput.
func Convert(amountYuan, rate, feePercent decimal.Decimal) (Conversion, error) {
	if amountYuan.LessThanOrEqual(decimal.Zero) {
		return Conversion{}, domain.ErrInvalidInput
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return Conversion{}, domain.ErrInvalidInput
	}
	if feePercent.IsNegative() {
		return Conversion{}, domain.ErrInvalidInput
	}
	valueBRL := amountYuan.Mul(rate)
	feeBRL := valueBRL.Mul(feePercent).Div(hundred)
	return Conversion{
		AmountYuan: amountYuan,
		Rate:       rate,
		FeePercent: feePercent,
		ValueBRL:   valueBRL,
		FeeBRL:     feeBRL,
		TotalBRL:   valueBRL.Add(feeBRL),
	}, nil
}
