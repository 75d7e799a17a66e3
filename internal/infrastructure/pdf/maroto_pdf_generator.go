// Package pdf genera la factura de una venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + N° factura + fecha + estado                │
//	│  CLIENTE: nombre, email, teléfono, dirección                 │
//	│  VENDEDOR                                                    │
//	│  TABLA: Producto | Cant | P.Unit | Total                     │
//	│  TOTALES: Subtotal / Descuento / Impuestos / TOTAL           │
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

	"github.com/jhoicas/crm-api/internal/application/ports"
)

var _ ports.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa ports.InvoicePDFGenerator con Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator los importes se formatean con separadores del idioma dado.
func NewMarotoPDFGenerator(lang language.Tag) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(lang)}
}

func (g *MarotoPDFGenerator) GenerateSaleInvoice(_ context.Context, inv ports.SaleInvoice) ([]byte, error) {
	if inv.Sale == nil || inv.Customer == nil {
		return nil, fmt.Errorf("pdf: venta o cliente vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.Sale.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(inv))
	if inv.SalesPerson != nil {
		m.AddRows(salesPersonRow(inv))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.lineRows(inv.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(inv ports.SaleInvoice) core.Row {
	s := inv.Sale
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Status: "+s.Status.String(), props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(s.InvoiceNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2}),
			text.New("Date: "+s.SaleDate.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func customerRow(inv ports.SaleInvoice) core.Row {
	c := inv.Customer
	name := c.FullName()
	if c.CompanyName != nil && *c.CompanyName != "" {
		name = *c.CompanyName + " (" + name + ")"
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(fmt.Sprintf("Email: %s   |   Phone: %s   |   Address: %s",
				nonEmpty(c.Email, "-"), nonEmpty(c.Phone, "-"), nonEmpty(c.Address, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func salesPersonRow(inv ports.SaleInvoice) core.Row {
	u := inv.SalesPerson
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Sales person: %s %s <%s>", u.FirstName, u.LastName, u.Email),
				props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func (g *MarotoPDFGenerator) lineRows(lines []ports.SaleInvoiceLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("No products", props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Center}),
		))}
	}
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row.New(7).Add(
			col.New(6).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.money(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.money(l.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func (g *MarotoPDFGenerator) totalsRow(inv ports.SaleInvoice) core.Row {
	s := inv.Sale
	label := func(v string, top float64, bold bool) core.Component {
		p := props.Text{Size: 9, Align: align.Right, Right: 2, Top: top}
		if bold {
			p.Style = fontstyle.Bold
			p.Color = colorPrimary
		}
		return text.New(v, p)
	}
	return row.New(28).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1, false),
			label("Discount:", 7, false),
			label("Tax:", 13, false),
			label("TOTAL:", 19, true),
		),
		col.New(3).Add(
			label(g.money(s.TotalAmount), 1, false),
			label(g.money(s.Discount.Neg()), 7, false),
			label(g.money(s.Tax), 13, false),
			label(g.money(s.FinalAmount), 19, true),
		),
	)
}

// money formatea con dos decimales y separador de miles según el idioma.
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
