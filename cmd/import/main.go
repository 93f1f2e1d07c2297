// import carga un catálogo CSV en el documento de inventario configurado.
//
// Uso: go run ./cmd/import [--latin1] [--notes "texto"] catalogo.csv
// Columnas: itemNumber,description,category,uom,notes[,location,qoh]
// qoh es la existencia objetivo en location: solo se registra como ingreso (RECEIVED)
// la diferencia positiva frente a la existencia actual, así que reimportar el mismo
// archivo no duplica existencias. Nunca se descuenta stock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/csvimport"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-local/pkg/config"
	"github.com/jhoicas/Inventario-local/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar el CSV como ISO-8859-1")
	notes := flag.String("notes", inventory.ImportNote, "nota de las entradas IMPORT")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import [--latin1] [--notes texto] catalogo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := run(context.Background(), cfg, log, flag.Arg(0), *latin1, *notes); err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("importación fallida")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, path string, latin1 bool, notes string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	rows, err := csvimport.Read(f, csvimport.Options{Latin1: latin1})
	if err != nil {
		return err
	}

	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := inventory.NewStore(repo, cfg.Storage.Key, log)

	items := make([]inventory.NewItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.Item)
	}
	out, err := store.ImportItems(ctx, items, notes)
	if err != nil {
		return err
	}
	log.Info().
		Int("created", out.Created).
		Int("updated", out.Updated).
		Int("skipped", out.Skipped).
		Msg("catálogo importado")

	data := out.Data
	received := 0
	for _, r := range rows {
		if !r.HasStock() || r.Item.ItemNumber == "" {
			continue
		}
		current := 0
		if loc := data.FindLocation(r.Item.ItemNumber, r.Location); loc != nil {
			current = loc.QuantityOnHand
		}
		if r.QOH <= current {
			log.Debug().Int("line", r.Line).Str("item", r.Item.ItemNumber).Int("on_hand", current).Msg("existencia ya cubierta")
			continue
		}
		res, err := store.UpdateStock(ctx, r.Item.ItemNumber, inventory.ActionReceived, inventory.StockParams{
			Qty:      r.QOH - current,
			Location: r.Location,
			Notes:    notes,
		})
		if err != nil {
			return err
		}
		data = res.Data
		if !res.Applied {
			log.Warn().Int("line", r.Line).Str("item", r.Item.ItemNumber).Str("reason", string(res.Reason)).Msg("existencia no registrada")
			continue
		}
		received++
	}
	log.Info().Int("received", received).Str("slot", cfg.Storage.Key).Msg("existencias registradas")
	return nil
}
