package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-local/internal/domain/inventory"
	"github.com/jhoicas/Inventario-local/internal/domain/repository"
	"github.com/jhoicas/Inventario-local/pkg/logger"
)

// Acciones de stock aceptadas por UpdateStock.
const (
	ActionReceived = "RECEIVED"
	ActionUsage    = "USAGE"
	ActionTransfer = "TRANSFER"
)

// DeletionNote nota fija de la entrada REMOVE que deja DeleteItem.
const DeletionNote = "Permanent Part Deletion"

// Result resultado de una operación de inventario.
// Data es siempre el documento vigente (ya persistido); Applied=false indica un rechazo de negocio
// y Reason explica el motivo. Los rechazos nunca se devuelven como error.
type Result struct {
	Data    *entity.InventoryData
	Applied bool
	Reason  domain.RejectReason
}

// StockParams parámetros de UpdateStock.
// RECEIVED y USAGE usan Location; TRANSFER usa FromLocation y ToLocation.
type StockParams struct {
	Qty          int
	Location     string
	FromLocation string
	ToLocation   string
	Notes        string
}

// Store dueño del documento de inventario persistido en un slot.
// Cada operación es un ciclo completo load → mutación en memoria → save, serializado por mu
// (un único escritor aunque la API HTTP atienda peticiones concurrentes).
type Store struct {
	repo repository.DocumentRepository
	key  string
	log  *logger.Logger
	now  func() time.Time
	mu   sync.Mutex
}

// NewStore construye el store sobre un slot. key nombra el slot; log puede ser nil.
func NewStore(repo repository.DocumentRepository, key string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{repo: repo, key: key, log: log, now: time.Now}
}

// Key devuelve el nombre del slot que usa el store.
func (s *Store) Key() string { return s.key }

// Load devuelve el documento actual. Si el slot está vacío o no se puede parsear devuelve el documento
// por defecto; si parsea, superpone lo persistido sobre la forma por defecto.
func (s *Store) Load(ctx context.Context) (*entity.InventoryData, error) {
	raw, found, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("leer slot %q: %w", s.key, err)
	}
	if !found || len(raw) == 0 {
		return entity.NewDefaultInventoryData(), nil
	}
	var parsed entity.InventoryData
	if err := json.Unmarshal(raw, &parsed); err != nil {
		s.log.Warn().Err(err).Str("slot", s.key).Msg("documento persistido ilegible, se usa el documento por defecto")
		return entity.NewDefaultInventoryData(), nil
	}
	return overlayDefaults(&parsed), nil
}

// overlayDefaults completa los campos ausentes (null o no presentes) con los del documento por defecto.
// Una lista de vocabulario vacía pero presente se respeta.
func overlayDefaults(parsed *entity.InventoryData) *entity.InventoryData {
	def := entity.NewDefaultInventoryData()
	if parsed.Items == nil {
		parsed.Items = def.Items
	}
	if parsed.Locations == nil {
		parsed.Locations = def.Locations
	}
	if parsed.AuditLogs == nil {
		parsed.AuditLogs = def.AuditLogs
	}
	if parsed.Categories == nil {
		parsed.Categories = def.Categories
	}
	if parsed.MasterLocations == nil {
		parsed.MasterLocations = def.MasterLocations
	}
	return parsed
}

// Save serializa el documento completo y sobrescribe el slot en una sola escritura.
func (s *Store) Save(ctx context.Context, data *entity.InventoryData) error {
	if data == nil {
		return domain.ErrInvalidInput
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	if err := s.repo.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("escribir slot %q: %w", s.key, err)
	}
	return nil
}

// Reset borra el documento persistido y devuelve el documento por defecto. Irreversible.
func (s *Store) Reset(ctx context.Context) (*entity.InventoryData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.key); err != nil {
		return nil, fmt.Errorf("borrar slot %q: %w", s.key, err)
	}
	s.log.Info().Str("slot", s.key).Msg("documento de inventario reiniciado")
	return entity.NewDefaultInventoryData(), nil
}

// CreateAuditEntry construye una entrada de auditoría con ID nuevo y la hora actual. No persiste.
func (s *Store) CreateAuditEntry(itemNumber string, typ entity.AuditType, quantity int, notes, fromLocation, toLocation string) entity.AuditLog {
	return entity.AuditLog{
		ID:           uuid.New().String(),
		Timestamp:    s.now().UTC().Truncate(time.Millisecond),
		ItemNumber:   itemNumber,
		Type:         typ,
		FromLocation: fromLocation,
		ToLocation:   toLocation,
		Quantity:     quantity,
		Notes:        notes,
	}
}

// mutate ejecuta el ciclo load → fn → save bajo el candado del store.
// El documento se persiste siempre, también cuando fn rechaza la operación.
func (s *Store) mutate(ctx context.Context, op string, fn func(data *entity.InventoryData) domain.RejectReason) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	reason := fn(data)
	if err := s.Save(ctx, data); err != nil {
		return nil, err
	}

	ev := s.log.Debug().Str("slot", s.key).Str("op", op)
	if reason != domain.ReasonNone {
		ev.Str("reason", string(reason)).Msg("operación rechazada")
	} else {
		ev.Msg("operación aplicada")
	}
	return &Result{Data: data, Applied: reason == domain.ReasonNone, Reason: reason}, nil
}

// DeleteItem elimina el ítem, todas sus filas de ubicación y registra una entrada REMOVE con cantidad 0.
// Si el ID no existe el documento queda igual y Reason=unknown-item.
func (s *Store) DeleteItem(ctx context.Context, id string) (*Result, error) {
	return s.mutate(ctx, "delete_item", func(data *entity.InventoryData) domain.RejectReason {
		idx := data.FindItemByID(id)
		if idx < 0 {
			return domain.ReasonUnknownItem
		}
		item := data.Items[idx]

		items := make([]entity.InventoryItem, 0, len(data.Items)-1)
		for _, it := range data.Items {
			if it.ID != id {
				items = append(items, it)
			}
		}
		data.Items = items

		locations := make([]entity.ItemLocation, 0, len(data.Locations))
		for _, l := range data.Locations {
			if l.ItemNumber != item.ItemNumber {
				locations = append(locations, l)
			}
		}
		data.Locations = locations

		data.PrependAudit(s.CreateAuditEntry(item.ItemNumber, entity.AuditTypeRemove, 0, DeletionNote, "", ""))
		return domain.ReasonNone
	})
}

// UpdateStock aplica un movimiento de stock (RECEIVED, USAGE o TRANSFER) sobre itemNumber.
// Las solicitudes inválidas o sin stock suficiente no modifican nada y se informan en Result.Reason.
func (s *Store) UpdateStock(ctx context.Context, itemNumber, action string, p StockParams) (*Result, error) {
	return s.mutate(ctx, "update_stock:"+action, func(data *entity.InventoryData) domain.RejectReason {
		if p.Qty < 0 {
			return domain.ReasonInvalidRequest
		}
		switch action {
		case ActionReceived:
			return s.applyReceived(data, itemNumber, p)
		case ActionUsage:
			return s.applyUsage(data, itemNumber, p)
		case ActionTransfer:
			return s.applyTransfer(data, itemNumber, p)
		default:
			return domain.ReasonInvalidRequest
		}
	})
}

func (s *Store) applyReceived(data *entity.InventoryData, itemNumber string, p StockParams) domain.RejectReason {
	if p.Location == "" {
		return domain.ReasonInvalidRequest
	}
	if !domaininv.CanReceive(onHandAt(data, itemNumber, p.Location), p.Qty) {
		return domain.ReasonInvalidRequest
	}
	loc := findOrCreateLocation(data, itemNumber, p.Location)
	loc.QuantityOnHand += p.Qty
	data.PrependAudit(s.CreateAuditEntry(itemNumber, entity.AuditTypeReceived, p.Qty, p.Notes, "", p.Location))
	return domain.ReasonNone
}

func (s *Store) applyUsage(data *entity.InventoryData, itemNumber string, p StockParams) domain.RejectReason {
	if p.Location == "" {
		return domain.ReasonInvalidRequest
	}
	loc := data.FindLocation(itemNumber, p.Location)
	if loc == nil {
		return domain.ReasonUnknownLocation
	}
	loc.QuantityOnHand = domaininv.ConsumeQuantity(loc.QuantityOnHand, p.Qty)
	data.PrependAudit(s.CreateAuditEntry(itemNumber, entity.AuditTypeUsage, p.Qty, p.Notes, p.Location, ""))
	return domain.ReasonNone
}

func (s *Store) applyTransfer(data *entity.InventoryData, itemNumber string, p StockParams) domain.RejectReason {
	if p.FromLocation == "" || p.ToLocation == "" {
		return domain.ReasonInvalidRequest
	}
	source := data.FindLocation(itemNumber, p.FromLocation)
	if source == nil {
		return domain.ReasonUnknownLocation
	}
	if !domaininv.CanTransfer(source.QuantityOnHand, p.Qty) {
		return domain.ReasonInsufficientQuantity
	}
	targetOnHand := onHandAt(data, itemNumber, p.ToLocation)
	if p.ToLocation == p.FromLocation {
		targetOnHand = source.QuantityOnHand - p.Qty
	}
	if !domaininv.CanReceive(targetOnHand, p.Qty) {
		return domain.ReasonInvalidRequest
	}
	// Restar antes de crear el destino: el append puede reubicar el slice y dejar source obsoleto.
	source.QuantityOnHand -= p.Qty
	target := findOrCreateLocation(data, itemNumber, p.ToLocation)
	target.QuantityOnHand += p.Qty
	data.PrependAudit(s.CreateAuditEntry(itemNumber, entity.AuditTypeTransfer, p.Qty, p.Notes, p.FromLocation, p.ToLocation))
	return domain.ReasonNone
}

// onHandAt devuelve el QOH de la fila (itemNumber, location) o 0 si aún no existe.
func onHandAt(data *entity.InventoryData, itemNumber, location string) int {
	if loc := data.FindLocation(itemNumber, location); loc != nil {
		return loc.QuantityOnHand
	}
	return 0
}

// findOrCreateLocation materializa la fila (itemNumber, location) con QOH 0 si no existe.
func findOrCreateLocation(data *entity.InventoryData, itemNumber, location string) *entity.ItemLocation {
	if loc := data.FindLocation(itemNumber, location); loc != nil {
		return loc
	}
	data.Locations = append(data.Locations, entity.ItemLocation{
		ID:         uuid.New().String(),
		ItemNumber: itemNumber,
		Location:   location,
	})
	return &data.Locations[len(data.Locations)-1]
}
