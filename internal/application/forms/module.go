// Package forms define los módulos de la consola: para cada entidad, el
// borrador tipado, los pasos del asistente con sus validadores y el cableado
// listado+asistente contra el cliente REST. Es la versión única y
// parametrizada del patrón que antes se repetía por módulo.
package forms

import (
	"context"

	"github.com/housebanao/ops-console/internal/application/listing"
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// Module listado + asistente de una entidad, con la categoría de permiso
// que las vistas consultan en el gate.
type Module[T listing.Record] struct {
	Category entity.Category
	Resource string
	List     *listing.Controller[T]
	Form     *wizard.Wizard[T]
}

// Options opciones comunes de construcción de módulos.
type Options struct {
	PageSize int
	Notify   func(notice string)
}

type mutations int

const (
	mutNone mutations = iota
	mutStatus
	mutStatusPriority
)

// newModule cablea fetcher, mutadores y envío de un recurso REST. El envío
// del asistente hace POST en alta y PUT en edición; con éxito, el listado
// recarga desde la página 1 con la búsqueda vigente.
func newModule[T listing.Record](
	api *rest.Client,
	cat entity.Category,
	resource string,
	steps []wizard.Step[T],
	template func() T,
	muts mutations,
	opts Options,
	log *logger.Logger,
) (*Module[T], error) {
	fetch := func(ctx context.Context, search string, page, limit int) ([]T, error) {
		var out []T
		if err := api.List(ctx, resource, search, page, limit, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	mut := listing.Mutators{
		Delete: func(ctx context.Context, id string) error {
			return api.Delete(ctx, resource, id)
		},
	}
	if muts >= mutStatus {
		mut.Status = func(ctx context.Context, id, value string) error {
			return api.PatchStatus(ctx, resource, id, value)
		}
	}
	if muts >= mutStatusPriority {
		mut.Priority = func(ctx context.Context, id, value string) error {
			return api.PatchPriority(ctx, resource, id, value)
		}
	}

	list := listing.NewController(fetch, mut, listing.Options{Limit: opts.PageSize, Notify: opts.Notify}, log)

	submit := func(ctx context.Context, editingID string, draft T) error {
		if editingID == "" {
			var created T
			return api.Create(ctx, resource, draft, &created)
		}
		return api.Update(ctx, resource, editingID, draft, nil)
	}
	form, err := wizard.New(steps, template, submit, func(ctx context.Context) {
		// La recarga garantiza ver el registro canónico del servidor, no una
		// inserción optimista.
		if err := list.Reload(ctx); err != nil {
			log.Warn().Err(err).Str("resource", resource).Msg("recarga tras envío fallida")
		}
	})
	if err != nil {
		return nil, err
	}

	return &Module[T]{Category: cat, Resource: resource, List: list, Form: form}, nil
}
