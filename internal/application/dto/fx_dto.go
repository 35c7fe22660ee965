package dto

import "github.com/shopspring/decimal"

// QuoteResponse desglose de una cotización CNY -> BRL con la tasa y la
// tarifa vigentes al momento de la consulta.
type QuoteResponse struct {
	AmountYuan decimal.Decimal `json:"amount_yuan"`
	Rate       decimal.Decimal `json:"rate"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	ValueBRL   decimal.Decimal `json:"value_brl"`
	FeeBRL     decimal.Decimal `json:"fee_brl"`
	TotalBRL   decimal.Decimal `json:"total_brl"`
}
