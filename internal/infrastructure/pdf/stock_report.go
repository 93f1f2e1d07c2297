// Package pdf genera el reporte imprimible de inventario:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación + total de ítems      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA STOCK: Ítem | Descripción | Ubicación | UM | QOH      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AUDITORÍA: últimos N movimientos (más reciente primero)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

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

	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// DefaultAuditRows cantidad de movimientos recientes que se listan si no se indica otra.
const DefaultAuditRows = 25

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 97, Blue: 206}
	colorDark    = &props.Color{Red: 0, Green: 45, Blue: 86}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title     string
	auditRows int
}

// NewMarotoReportGenerator construye el generador. auditRows <= 0 usa DefaultAuditRows.
func NewMarotoReportGenerator(title string, auditRows int) *MarotoReportGenerator {
	if auditRows <= 0 {
		auditRows = DefaultAuditRows
	}
	return &MarotoReportGenerator{title: title, auditRows: auditRows}
}

// GenerateStockReport genera el PDF del documento y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, data *entity.InventoryData, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt, len(data.Items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("EXISTENCIAS POR UBICACIÓN"))
	m.AddRows(stockHeaderRow())
	m.AddRows(stockRows(data)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow(fmt.Sprintf("ÚLTIMOS %d MOVIMIENTOS", g.auditRows)))
	m.AddRows(auditHeaderRow())
	m.AddRows(auditRows(data.AuditLogs, g.auditRows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time, items int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorDark, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Ítems en catálogo: "+strconv.Itoa(items), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorDark, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func stockHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Ítem", 2, align.Left),
		headerCell("Descripción", 4, align.Left),
		headerCell("Ubicación", 3, align.Left),
		headerCell("UM", 1, align.Center),
		headerCell("QOH", 2, align.Right),
	)
}

// stockRows una fila por ubicación, agrupadas por ítem y ubicación en orden alfabético.
func stockRows(data *entity.InventoryData) []core.Row {
	byNumber := make(map[string]entity.InventoryItem, len(data.Items))
	for _, it := range data.Items {
		byNumber[it.ItemNumber] = it
	}
	locs := append([]entity.ItemLocation(nil), data.Locations...)
	sort.SliceStable(locs, func(i, j int) bool {
		if locs[i].ItemNumber != locs[j].ItemNumber {
			return locs[i].ItemNumber < locs[j].ItemNumber
		}
		return locs[i].Location < locs[j].Location
	})

	if len(locs) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin existencias registradas.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}

	rows := make([]core.Row, 0, len(locs))
	for _, l := range locs {
		item := byNumber[l.ItemNumber]
		rows = append(rows, row.New(6).Add(
			cell(l.ItemNumber, 2, align.Left),
			cell(nonEmpty(item.Description, "-"), 4, align.Left),
			cell(l.Location, 3, align.Left),
			cell(nonEmpty(item.UnitOfMeasure, "-"), 1, align.Center),
			cell(strconv.Itoa(l.QuantityOnHand), 2, align.Right),
		))
	}
	return rows
}

func auditHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Fecha", 3, align.Left),
		headerCell("Tipo", 2, align.Left),
		headerCell("Ítem", 2, align.Left),
		headerCell("Desde / Hacia", 3, align.Left),
		headerCell("Cant.", 2, align.Right),
	)
}

func auditRows(logs []entity.AuditLog, limit int) []core.Row {
	if len(logs) > limit {
		logs = logs[:limit]
	}
	rows := make([]core.Row, 0, len(logs))
	for _, e := range logs {
		rows = append(rows, row.New(6).Add(
			cell(e.Timestamp.Format("2006-01-02 15:04"), 3, align.Left),
			cell(string(e.Type), 2, align.Left),
			cell(e.ItemNumber, 2, align.Left),
			cell(route(e), 3, align.Left),
			cell(strconv.Itoa(e.Quantity), 2, align.Right),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func route(e entity.AuditLog) string {
	switch {
	case e.FromLocation != "" && e.ToLocation != "":
		return e.FromLocation + " > " + e.ToLocation
	case e.FromLocation != "":
		return e.FromLocation
	case e.ToLocation != "":
		return e.ToLocation
	}
	return "-"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
