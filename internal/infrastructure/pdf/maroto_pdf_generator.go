// Package pdf implementa la generación del comprobante del pedido: la
// representación gráfica de la cotización vigente CNY -> BRL.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marketplace  │  N° Pedido + Fecha + Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + CPF + contacto                            │
//	│  PROVEEDOR: Nombre + código público                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Valor ¥ | Tasa | Tarifa % | Total R$   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Valor base / Tarifa / TOTAL A PAGAR                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/cambio-api/internal/application/billing"
	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

var _ billing.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formatea números con separadores brasileños (1.234,56).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// MarotoPDFGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	client, supplier *entity.User,
	quote *dto.QuoteResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(supplierRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(quoteHeaderRow())
	m.AddRows(quoteDetailRow(order, quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quote))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(quote))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marca (izq) y N° de pedido + fecha + estado (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Câmbio Marketplace", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprovante de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Status: "+order.Status, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente.
func clientRow(client *entity.User) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   CPF: %s   |   Tel: %s",
				client.Name,
				nonEmpty(client.CPF, "—"),
				nonEmpty(client.Phone, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// supplierRow: datos del proveedor con su código público.
func supplierRow(supplier *entity.User) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FORNECEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Código: %s",
				supplier.Name,
				nonEmpty(supplier.SupplierCode, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func quoteHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Descrição", 5, align.Left),
		h("Valor ¥", 2, align.Right),
		h("Taxa", 2, align.Right),
		h("Tarifa %", 1, align.Right),
		h("Total R$", 2, align.Right),
	)
}

func quoteDetailRow(order *entity.Order, quote *dto.QuoteResponse) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(order.Description, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(brl(quote.AmountYuan), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(quote.Rate.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(quote.FeePercent.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(brl(quote.TotalBRL), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func totalsRow(quote *dto.QuoteResponse) core.Row {
	return row.New(16).Add(
		col.New(7),
		col.New(5).Add(
			text.New("Valor base: R$ "+brl(quote.ValueBRL), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Tarifa: R$ "+brl(quote.FeeBRL), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
			text.New("TOTAL A PAGAR: R$ "+brl(quote.TotalBRL), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 11, Color: colorPrimary,
			}),
		),
	)
}

func footerRow(quote *dto.QuoteResponse) core.Row {
	leyenda := fmt.Sprintf(
		"Cotação calculada com a taxa vigente (1 CNY = %s BRL) e a tarifa do cliente (%s%%). Valores sujeitos a alteração até a confirmação do pagamento.",
		quote.Rate.String(), quote.FeePercent.String(),
	)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(leyenda, props.Text{Size: 7, Color: colorGray, Top: 2}),
		),
	)
}

// brl formatea un decimal con separadores pt-BR y dos decimales.
func brl(d decimal.Decimal) string {
	return ptBR.Sprintf("%.2f", d.InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
