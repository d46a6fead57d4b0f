// Package pdf genera la representación impresa de los comprobantes de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Tipo + N° de doc + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre / condición / moneda                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Importe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IGV / TOTAL                            │
//	│  FOOTER: desglose de pagos + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

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

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator genera el PDF de un comprobante de venta usando Maroto v2.
// Si OutputDir no está vacío, además guarda una copia en disco.
type ReceiptGenerator struct {
	BusinessName string
	OutputDir    string
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(businessName, outputDir string) *ReceiptGenerator {
	return &ReceiptGenerator{BusinessName: businessName, OutputDir: outputDir}
}

// GenerateSaleReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateSaleReceipt(sale *entity.SaleRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docTypeLabel(sale.DocType)+" "+sale.DocNumber, true).
		WithAuthor(g.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(sale.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range paymentFooterRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	bytes := doc.GetBytes()

	if g.OutputDir != "" {
		if err := g.save(sale, bytes); err != nil {
			return nil, err
		}
	}
	return bytes, nil
}

func (g *ReceiptGenerator) save(sale *entity.SaleRecord, data []byte) error {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("pdf: crear directorio de comprobantes: %w", err)
	}
	name := fmt.Sprintf("%s-%s.pdf", sale.DocType, strings.ReplaceAll(sale.DocNumber, "/", "-"))
	if err := os.WriteFile(filepath.Join(g.OutputDir, name), data, 0o644); err != nil {
		return fmt.Errorf("pdf: guardar comprobante: %w", err)
	}
	return nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y tipo + número + fecha (der).
func (g *ReceiptGenerator) headerRow(sale *entity.SaleRecord) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Punto de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(docTypeLabel(sale.DocType), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+sale.DocNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: cliente, condición de pago y moneda.
func clientRow(sale *entity.SaleRecord) core.Row {
	condition := "CONTADO"
	if sale.Condition == entity.CondicionCredito {
		condition = fmt.Sprintf("CRÉDITO %d DÍAS", sale.CreditDays)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Condición: %s   |   Moneda: %s   |   T.C.: %s",
				condition, sale.Currency, sale.ExchangeRate.StringFixed(2),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableLineRows: una fila por línea congelada del comprobante.
func tableLineRows(lines []entity.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				l.LineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sale *entity.SaleRecord) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(d decimal.Decimal) core.Component {
		return text.New(sale.Currency+" "+d.StringFixed(2),
			props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(sale.Currency+" "+sale.GrandTotal.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("IGV:"),
			grandLabel,
		),
		col.New(3).Add(
			value(sale.Subtotal),
			value(sale.Tax),
			grandValue,
		),
		col.New(3),
	)
}

// paymentFooterRows: desglose de pagos por método + leyenda.
func paymentFooterRows(sale *entity.SaleRecord) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("FORMA DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	families := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Efectivo", sale.Breakdown.Cash},
		{"Yape/Plin", sale.Breakdown.Yape},
		{"Tarjeta", sale.Breakdown.Card},
		{"Depósito/Transferencia", sale.Breakdown.Bank},
		{"Saldo a favor", sale.Breakdown.Wallet},
	}
	printed := false
	for _, f := range families {
		if f.amount.IsZero() {
			continue
		}
		printed = true
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s: %s %s", f.label, sale.Currency, f.amount.StringFixed(2)),
				props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
		)))
	}
	if !printed {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Venta a crédito: pendiente de cobro.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Gracias por su compra. Conserve este comprobante para cambios y devoluciones.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// docTypeLabel devuelve el rótulo del comprobante. Los tipos de documento ya
// son etiquetas legibles, así que solo hay un fallback para valores extraños.
func docTypeLabel(t entity.DocumentType) string {
	if t == "" {
		return string(entity.DocTicketVenta)
	}
	return string(t)
}
