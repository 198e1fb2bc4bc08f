// Package session gestiona el ciclo de vida de la sesión de la consola:
// login contra el backend, persistencia del estado en el almacén del
// cliente y logout. Fuera de este paquete la sesión es de solo lectura.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/housebanao/ops-console/internal/domain"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/internal/infrastructure/state"
	"github.com/housebanao/ops-console/pkg/logger"
	"github.com/housebanao/ops-console/pkg/token"
)

// Credentials datos del formulario de login.
type Credentials struct {
	Email    string
	Password string
	Role     entity.Role
}

// Validate reglas locales del formulario: email con formato y password
// presente. Se resuelven antes de tocar la red.
func (c Credentials) Validate() validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.RequiredEmail(errs, "email", c.Email, "Valid email is required")
	validate.Required(errs, "password", c.Password, "Password is required")
	if !c.Role.Valid() {
		errs.Add("role", "Role is required")
	}
	return errs
}

// Manager gestor de sesión. Lee y escribe el almacén de estado; el resto de
// la consola consulta Current().
type Manager struct {
	api   *rest.Client
	store state.Store
	log   *logger.Logger
	now   func() time.Time
}

// NewManager construye el gestor y registra el token source del cliente
// REST, de modo que toda petición posterior al login viaje autenticada.
func NewManager(api *rest.Client, store state.Store, log *logger.Logger) *Manager {
	m := &Manager{api: api, store: store, log: log, now: time.Now}
	api.SetTokenSource(m.currentToken)
	return m
}

func (m *Manager) currentToken() string {
	tok, ok, err := m.store.Get(state.KeyToken)
	if err != nil || !ok {
		return ""
	}
	return tok
}

// Login autentica contra el endpoint que corresponde al rol elegido. Un
// rechazo del backend se reporta siempre como ErrInvalidCredentials: el
// mensaje al usuario es genérico, sin filtrar detalle. Para roles no-admin
// se descargan y persisten los permisos con el token recién emitido.
func (m *Manager) Login(ctx context.Context, creds Credentials) (*entity.Session, error) {
	if errs := creds.Validate(); !errs.Empty() {
		return nil, fmt.Errorf("%w: formulario de login incompleto", domain.ErrInvalidInput)
	}

	tok, err := m.api.Login(ctx, creds.Role, creds.Email, creds.Password)
	if err != nil {
		var he *rest.HTTPError
		if errors.As(err, &he) {
			m.log.Warn().Int("status", he.Status).Str("role", string(creds.Role)).Msg("login rechazado")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	sess := &entity.Session{Token: tok, Role: creds.Role, Email: creds.Email}

	if creds.Role != entity.RoleAdmin {
		perms, err := m.api.Permissions(ctx, creds.Email, tok)
		if err != nil {
			// Sin matriz no hay gating posible: el login no se da por bueno.
			return nil, fmt.Errorf("descargar permisos: %w", err)
		}
		sess.Permissions = perms
	}

	if err := m.persist(sess); err != nil {
		return nil, err
	}
	m.log.Info().Str("email", sess.Email).Str("role", string(sess.Role)).Msg("sesión iniciada")
	return sess, nil
}

func (m *Manager) persist(sess *entity.Session) error {
	if err := m.store.Set(state.KeyToken, sess.Token); err != nil {
		return err
	}
	if err := m.store.Set(state.KeyRole, string(sess.Role)); err != nil {
		return err
	}
	if err := m.store.Set(state.KeyEmail, sess.Email); err != nil {
		return err
	}
	raw, err := json.Marshal(sess.Permissions)
	if err != nil {
		return fmt.Errorf("serializar permisos: %w", err)
	}
	return m.store.Set(state.KeyPermissions, string(raw))
}

// Current reconstruye la sesión desde el almacén. Devuelve nil (sin error)
// si no hay token o si el token declara una expiración ya pasada.
func (m *Manager) Current() (*entity.Session, error) {
	tok, ok, err := m.store.Get(state.KeyToken)
	if err != nil {
		return nil, err
	}
	if !ok || tok == "" {
		return nil, nil
	}
	if token.Expired(tok, m.now()) {
		m.log.Debug().Msg("token vencido; la sesión guardada se descarta")
		return nil, nil
	}

	sess := &entity.Session{Token: tok}
	if role, ok, _ := m.store.Get(state.KeyRole); ok {
		sess.Role = entity.Role(role)
	}
	if email, ok, _ := m.store.Get(state.KeyEmail); ok {
		sess.Email = email
	}
	if raw, ok, _ := m.store.Get(state.KeyPermissions); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &sess.Permissions); err != nil {
			return nil, fmt.Errorf("permisos corruptos en el almacén: %w", err)
		}
	}
	return sess, nil
}

// Logout limpia todas las claves persistidas. El caller redirige al login.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.log.Info().Msg("sesión cerrada")
	return nil
}

// SaveProfile persiste los campos editables del panel de perfil.
func (m *Manager) SaveProfile(p entity.Profile) error {
	pairs := map[string]string{
		state.KeyName:        p.Name,
		state.KeyPhone:       p.Phone,
		state.KeyDepartment:  p.Department,
		state.KeyDesignation: p.Designation,
	}
	for k, v := range pairs {
		if err := m.store.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Profile lee el perfil guardado; los campos ausentes quedan vacíos.
func (m *Manager) Profile() (entity.Profile, error) {
	var p entity.Profile
	read := func(key string, dst *string) error {
		v, ok, err := m.store.Get(key)
		if err != nil {
			return err
		}
		if ok {
			*dst = v
		}
		return nil
	}
	if err := read(state.KeyName, &p.Name); err != nil {
		return p, err
	}
	if err := read(state.KeyPhone, &p.Phone); err != nil {
		return p, err
	}
	if err := read(state.KeyDepartment, &p.Department); err != nil {
		return p, err
	}
	if err := read(state.KeyDesignation, &p.Designation); err != nil {
		return p, err
	}
	return p, nil
}
