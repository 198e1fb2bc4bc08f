package rest

import (
	"errors"
	"fmt"

	"github.com/housebanao/ops-console/internal/domain"
)

// HTTPError respuesta no-2xx del backend. Conserva el status y un extracto
// del cuerpo para el log; al usuario solo le llega un aviso no bloqueante.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Body)
}

// IsStatus informa si err es un HTTPError con ese status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == status
}

// netError envuelve un fallo de transporte (DNS, conexión, timeout) bajo el
// centinela de dominio.
func netError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
}
