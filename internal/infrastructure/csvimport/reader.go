// Package csvimport lee catálogos de ítems en CSV para la importación masiva.
//
// Columnas: itemNumber,description,category,uom,notes[,location,qoh].
// La primera fila se omite si es un encabezado (primera celda "itemNumber" o "item_number").
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Inventario-local/internal/application/inventory"
)

const (
	colItemNumber = iota
	colDescription
	colCategory
	colUOM
	colNotes
	colLocation
	colQOH
)

// Row fila del catálogo. Line es la línea del archivo; Location vacío significa que la fila no trae existencias.
type Row struct {
	Line     int
	Item     inventory.NewItem
	Location string
	QOH      int
}

// HasStock indica si la fila debe registrarse como ingreso (RECEIVED).
func (r Row) HasStock() bool {
	return r.Location != "" && r.QOH > 0
}

// Options opciones de lectura.
type Options struct {
	// Latin1 decodifica la entrada como ISO-8859-1 (exportaciones de Excel en Windows).
	Latin1 bool
}

// Read parsea el CSV completo. Un qoh no numérico o negativo aborta la lectura indicando la línea.
func Read(r io.Reader, opts Options) ([]Row, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		if isBlank(rec) {
			continue
		}
		row, err := parseRecord(rec, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(rec []string, line int) (Row, error) {
	row := Row{
		Line: line,
		Item: inventory.NewItem{
			ItemNumber:    field(rec, colItemNumber),
			Description:   field(rec, colDescription),
			Category:      field(rec, colCategory),
			UnitOfMeasure: field(rec, colUOM),
			Notes:         field(rec, colNotes),
		},
		Location: field(rec, colLocation),
	}
	if raw := field(rec, colQOH); raw != "" {
		qoh, err := strconv.Atoi(raw)
		if err != nil || qoh < 0 {
			return Row{}, fmt.Errorf("línea %d: qoh inválido %q", line, raw)
		}
		row.QOH = qoh
	}
	return row, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isHeader(rec []string) bool {
	first := strings.ToLower(strings.TrimPrefix(field(rec, colItemNumber), "\ufeff"))
	return first == "itemnumber" || first == "item_number"
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
