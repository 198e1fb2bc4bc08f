package forms

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/housebanao/ops-console/internal/domain"
)

// SetPath aplica un valor sobre el borrador siguiendo una ruta de campo con
// separador "." (ej. "poc.email", "basicDetails.city",
// "vehicleDetails.0.capacity"). La escritura es estructural: solo cambia la
// hoja indicada, los campos hermanos quedan intactos. Los índices numéricos
// recorren slices y los hacen crecer si hace falta. target debe ser puntero
// al borrador; las rutas se resuelven por tag json.
func SetPath(target any, path string, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: el borrador debe ser un puntero no nulo", domain.ErrInvalidInput)
	}
	parts := strings.Split(path, ".")
	if path == "" {
		return fmt.Errorf("%w: ruta de campo vacía", domain.ErrInvalidInput)
	}
	return setPath(rv.Elem(), parts, path, value)
}

func setPath(v reflect.Value, parts []string, full string, value any) error {
	head := parts[0]

	switch v.Kind() {
	case reflect.Struct:
		field, ok := fieldByJSONTag(v, head)
		if !ok {
			return fmt.Errorf("%w: campo %q de la ruta %q no existe", domain.ErrInvalidInput, head, full)
		}
		if len(parts) == 1 {
			return assign(field, full, value)
		}
		return setPath(field, parts[1:], full, value)

	case reflect.Slice:
		idx, err := strconv.Atoi(head)
		if err != nil || idx < 0 {
			return fmt.Errorf("%w: índice %q inválido en la ruta %q", domain.ErrInvalidInput, head, full)
		}
		for v.Len() <= idx {
			v.Set(reflect.Append(v, reflect.New(v.Type().Elem()).Elem()))
		}
		elem := v.Index(idx)
		if len(parts) == 1 {
			return assign(elem, full, value)
		}
		return setPath(elem, parts[1:], full, value)

	default:
		return fmt.Errorf("%w: la ruta %q atraviesa un campo no estructural", domain.ErrInvalidInput, full)
	}
}

func fieldByJSONTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag == name {
			return v.Field(i), true
		}
		if tag == "" && t.Field(i).Name == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func assign(field reflect.Value, full string, value any) error {
	if !field.CanSet() {
		return fmt.Errorf("%w: el campo de la ruta %q no es asignable", domain.ErrInvalidInput, full)
	}
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Los montos del BOQ llegan tecleados como texto.
	if s, ok := value.(string); ok && field.Type() == decimalType {
		if s == "" {
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("%w: %q no es un monto válido para %q", domain.ErrInvalidInput, s, full)
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	return fmt.Errorf("%w: no se puede asignar %T a la ruta %q", domain.ErrInvalidInput, value, full)
}
