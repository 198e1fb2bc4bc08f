// Package listing implementa el controlador genérico de listados: una sola
// abstracción parametrizada por entidad en lugar de cinco copias por
// módulo. Búsqueda del lado del servidor, scroll infinito, expansión de
// fila y mutaciones de status/priority con recarga completa.
package listing

import (
	"context"
	"sync"

	"github.com/housebanao/ops-console/internal/domain"
	"github.com/housebanao/ops-console/pkg/logger"
)

// Record registro listable: expone el identificador interno con el que se
// de-duplica la colección.
type Record interface {
	Key() string
}

// Fetcher trae una página del backend para esta entidad.
type Fetcher[T Record] func(ctx context.Context, search string, page, limit int) ([]T, error)

// Mutators mutaciones parciales disponibles para la entidad. Los módulos
// que no mutan ese campo dejan la función en nil.
type Mutators struct {
	Status   func(ctx context.Context, id, value string) error
	Priority func(ctx context.Context, id, value string) error
	Delete   func(ctx context.Context, id string) error
}

// Options ajustes del controlador.
type Options struct {
	Limit  int                 // tamaño de página; 5 por defecto
	Notify func(notice string) // aviso no bloqueante al usuario; opcional
}

// Controller posee la colección visible de una entidad. Las respuestas
// fuera de orden se descartan por número de secuencia: solo la última
// petición emitida puede aplicar su resultado.
type Controller[T Record] struct {
	fetch   Fetcher[T]
	mutate  Mutators
	limit   int
	notify  func(string)
	log     *logger.Logger

	mu       sync.Mutex
	rows     []T
	index    map[string]int // key -> posición en rows
	query    string
	page     int
	hasMore  bool
	expanded string
	inFlight bool
	seq      uint64
}

// NewController construye el controlador de un módulo.
func NewController[T Record](fetch Fetcher[T], mutate Mutators, opts Options, log *logger.Logger) *Controller[T] {
	limit := opts.Limit
	if limit <= 0 {
		limit = 5
	}
	notify := opts.Notify
	if notify == nil {
		notify = func(string) {}
	}
	return &Controller[T]{
		fetch:   fetch,
		mutate:  mutate,
		limit:   limit,
		notify:  notify,
		log:     log,
		index:   make(map[string]int),
		page:    1,
		hasMore: true,
	}
}

// Load trae una página con el término de búsqueda dado. La página 1
// reemplaza la colección; las siguientes se fusionan de-duplicando por
// identificador (gana lo traído más tarde). Ante fallo, la colección queda
// en su último estado bueno y se emite un aviso no bloqueante.
func (c *Controller[T]) Load(ctx context.Context, query string, page int) error {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	c.inFlight = true
	c.mu.Unlock()

	batch, err := c.fetch(ctx, query, page, c.limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if mySeq == c.seq {
		c.inFlight = false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("query", query).Int("page", page).Msg("fallo al cargar el listado")
		c.notify("No se pudo cargar el listado. Intente de nuevo.")
		return err
	}
	if mySeq != c.seq {
		// Llegó después de una petición más nueva: respuesta vieja, se ignora.
		c.log.Debug().Uint64("seq", mySeq).Msg("respuesta de listado obsoleta descartada")
		return nil
	}

	if page == 1 {
		c.rows = c.rows[:0]
		c.index = make(map[string]int)
	}
	for _, rec := range batch {
		if pos, ok := c.index[rec.Key()]; ok {
			c.rows[pos] = rec // lo traído más tarde gana
			continue
		}
		c.index[rec.Key()] = len(c.rows)
		c.rows = append(c.rows, rec)
	}
	c.query = query
	c.page = page
	c.hasMore = len(batch) == c.limit
	return nil
}

// LoadMore es el disparo del sentinel de scroll infinito: pide la página
// siguiente. Mientras hay una carga en vuelo, o ya no hay más páginas, los
// disparos se suprimen para no duplicar peticiones.
func (c *Controller[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	query, next := c.query, c.page+1
	c.mu.Unlock()
	return c.Load(ctx, query, next)
}

// Reload vuelve a la página 1 con el término de búsqueda vigente. Es la
// sincronización canónica tras cualquier mutación.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	query := c.query
	c.mu.Unlock()
	return c.Load(ctx, query, 1)
}

// Rows copia del estado visible.
func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

// HasMore informa si el sentinel debe seguir pidiendo páginas.
func (c *Controller[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Query término de búsqueda vigente.
func (c *Controller[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// ToggleExpand expande la fila o la colapsa si ya estaba expandida. A lo
// sumo una fila expandida por controlador.
func (c *Controller[T]) ToggleExpand(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.expanded == id {
		c.expanded = ""
		return
	}
	c.expanded = id
}

// Expanded identificador de la fila expandida; vacío si ninguna.
func (c *Controller[T]) Expanded() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded
}

// SetStatus mutación parcial de status y recarga desde la página 1. El
// estado en memoria no se toca ante fallo.
func (c *Controller[T]) SetStatus(ctx context.Context, id, status string) error {
	return c.partialUpdate(ctx, c.mutate.Status, id, status, "status")
}

// SetPriority mutación parcial de priority y recarga desde la página 1.
func (c *Controller[T]) SetPriority(ctx context.Context, id, priority string) error {
	return c.partialUpdate(ctx, c.mutate.Priority, id, priority, "priority")
}

// Remove elimina el registro y recarga desde la página 1.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	if c.mutate.Delete == nil {
		return domain.ErrInvalidInput
	}
	if err := c.mutate.Delete(ctx, id); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("fallo al eliminar el registro")
		c.notify("No se pudo eliminar el registro.")
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller[T]) partialUpdate(ctx context.Context, fn func(context.Context, string, string) error, id, value, field string) error {
	if fn == nil {
		return domain.ErrInvalidInput
	}
	if err := fn(ctx, id, value); err != nil {
		c.log.Warn().Err(err).Str("id", id).Str(field, value).Msg("fallo en la mutación parcial")
		c.notify("No se pudo actualizar el registro.")
		return err
	}
	return c.Reload(ctx)
}
