// Package wizard implementa el controlador genérico de formularios por
// pasos: una secuencia acotada de pasos con validación propia que arma un
// único borrador, enviado de forma atómica al final. El borrador vive solo
// mientras el modal está abierto; nunca se persiste a medias.
package wizard

import (
	"context"
	"fmt"

	"github.com/housebanao/ops-console/internal/domain"
	"github.com/housebanao/ops-console/internal/domain/validate"
)

// Step paso nombrado con su validador. Un validador nil equivale a un paso
// sin campos obligatorios.
type Step[D any] struct {
	Name     string
	Validate func(draft D) validate.ErrorSet
}

// Submitter envía el borrador al backend. editingID no vacío selecciona
// actualización (PUT); vacío, alta (POST).
type Submitter[D any] func(ctx context.Context, editingID string, draft D) error

// Wizard máquina de estados del formulario. No es segura para uso
// concurrente: pertenece a un único modal.
type Wizard[D any] struct {
	steps       []Step[D]
	newDraft    func() D
	submit      Submitter[D]
	afterSubmit func(ctx context.Context) // recarga del listado dueño; opcional

	draft     D
	step      int
	editingID string
	open      bool
	errs      validate.ErrorSet
}

// New construye el asistente. newDraft produce la plantilla vacía (con los
// defaults del módulo); submit realiza el envío final.
func New[D any](steps []Step[D], newDraft func() D, submit Submitter[D], afterSubmit func(ctx context.Context)) (*Wizard[D], error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: un asistente necesita al menos un paso", domain.ErrInvalidInput)
	}
	return &Wizard[D]{
		steps:       steps,
		newDraft:    newDraft,
		submit:      submit,
		afterSubmit: afterSubmit,
		draft:       newDraft(),
		step:        1,
	}, nil
}

// Open abre el modal de alta con la plantilla vacía.
func (w *Wizard[D]) Open() {
	w.draft = w.newDraft()
	w.editingID = ""
	w.step = 1
	w.errs = nil
	w.open = true
}

// OpenForEdit abre el modal con una copia del registro existente; el envío
// final hará PUT sobre id.
func (w *Wizard[D]) OpenForEdit(id string, record D) {
	w.draft = record
	w.editingID = id
	w.step = 1
	w.errs = nil
	w.open = true
}

// Close descarta el borrador y repone el estado inicial. Cancelar nunca
// persiste nada.
func (w *Wizard[D]) Close() {
	w.draft = w.newDraft()
	w.editingID = ""
	w.step = 1
	w.errs = nil
	w.open = false
}

// IsOpen informa si el modal está abierto.
func (w *Wizard[D]) IsOpen() bool { return w.open }

// Step paso actual (1..N).
func (w *Wizard[D]) Step() int { return w.step }

// Steps cantidad de pasos.
func (w *Wizard[D]) Steps() int { return len(w.steps) }

// StepName nombre del paso actual.
func (w *Wizard[D]) StepName() string { return w.steps[w.step-1].Name }

// Draft acceso al borrador para que la vista edite campos. El borrador es
// del modal: fuera de él no existe.
func (w *Wizard[D]) Draft() *D { return &w.draft }

// EditingID identificador en edición; vacío en un alta.
func (w *Wizard[D]) EditingID() string { return w.editingID }

// Errors errores del último intento de avance/envío.
func (w *Wizard[D]) Errors() validate.ErrorSet { return w.errs }

func (w *Wizard[D]) validateStep(n int) validate.ErrorSet {
	fn := w.steps[n-1].Validate
	if fn == nil {
		return validate.ErrorSet{}
	}
	return fn(w.draft)
}

// Next valida el paso actual y avanza si no hay errores. En el último paso
// no hace nada (ahí corresponde Submit).
func (w *Wizard[D]) Next() bool {
	w.errs = w.validateStep(w.step)
	if !w.errs.Empty() {
		return false
	}
	if w.step < len(w.steps) {
		w.step++
	}
	return true
}

// Back retrocede sin validar, con tope en el paso 1.
func (w *Wizard[D]) Back() {
	if w.step > 1 {
		w.step--
	}
	w.errs = nil
}

// JumpTo salta al paso indicado: hacia atrás siempre; hacia adelante solo
// si el paso actual valida (no se puede saltar por encima de un paso
// inválido).
func (w *Wizard[D]) JumpTo(step int) bool {
	if step < 1 || step > len(w.steps) {
		return false
	}
	if step <= w.step {
		w.step = step
		w.errs = nil
		return true
	}
	w.errs = w.validateStep(w.step)
	if !w.errs.Empty() {
		return false
	}
	w.step = step
	return true
}

// Submit solo se permite desde el último paso. Revalida el registro
// completo (todos los pasos) y envía: PUT si hay id en edición, POST si no.
// Con éxito el borrador se descarta, el modal se cierra y el listado dueño
// recarga desde la página 1.
func (w *Wizard[D]) Submit(ctx context.Context) error {
	if w.step != len(w.steps) {
		return fmt.Errorf("%w: el envío solo procede desde el último paso", domain.ErrInvalidInput)
	}

	w.errs = validate.ErrorSet{}
	for n := 1; n <= len(w.steps); n++ {
		w.errs.Merge(w.validateStep(n))
	}
	if !w.errs.Empty() {
		return fmt.Errorf("%w: el formulario tiene errores", domain.ErrInvalidInput)
	}

	if err := w.submit(ctx, w.editingID, w.draft); err != nil {
		// El borrador sigue vivo: el usuario corrige o reintenta.
		return err
	}

	w.Close()
	if w.afterSubmit != nil {
		w.afterSubmit(ctx)
	}
	return nil
}
