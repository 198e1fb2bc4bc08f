package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housebanao/ops-console/internal/application/session"
	"github.com/housebanao/ops-console/internal/domain"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/internal/infrastructure/state"
	"github.com/housebanao/ops-console/pkg/config"
	"github.com/housebanao/ops-console/pkg/logger"
)

// backend falso: login de usuario/admin + permisos.
func fakeBackend(t *testing.T, loginStatus int) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch {
		case r.URL.Path == "/user/login" || r.URL.Path == "/admins/login":
			if loginStatus != http.StatusOK {
				http.Error(w, "unauthorized", loginStatus)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc"})
		case r.URL.Path == "/users/permissions/user@acme.com":
			require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"permissions": map[string]any{"customer": map[string]bool{"editor": true}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func newManager(t *testing.T, baseURL string) (*session.Manager, state.Store) {
	t.Helper()
	st := state.NewMemory()
	api := rest.NewClient(config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5}, logger.Nop())
	return session.NewManager(api, st, logger.Nop()), st
}

// Login de usuario: endpoint /user/login, descarga de permisos y persistencia.
func TestLogin_UsuarioDescargaPermisos(t *testing.T) {
	srv, paths := fakeBackend(t, http.StatusOK)
	m, st := newManager(t, srv.URL)

	sess, err := m.Login(context.Background(), session.Credentials{
		Email: "user@acme.com", Password: "secreto", Role: entity.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/user/login", "/users/permissions/user@acme.com"}, *paths)
	assert.True(t, sess.Permissions.Customer.Editor)

	tok, ok, _ := st.Get(state.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", tok)
	perms, ok, _ := st.Get(state.KeyPermissions)
	assert.True(t, ok)
	assert.Contains(t, perms, `"editor":true`)
}

// Login de admin: endpoint /admins/login y sin llamada de permisos.
func TestLogin_AdminNoDescargaPermisos(t *testing.T) {
	srv, paths := fakeBackend(t, http.StatusOK)
	m, _ := newManager(t, srv.URL)

	sess, err := m.Login(context.Background(), session.Credentials{
		Email: "admin@acme.com", Password: "secreto", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/admins/login"}, *paths)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
}

// Cualquier no-2xx del login se reporta como credenciales inválidas, sin
// detalle del backend.
func TestLogin_RechazoGenerico(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusUnauthorized)
	m, st := newManager(t, srv.URL)

	_, err := m.Login(context.Background(), session.Credentials{
		Email: "user@acme.com", Password: "mala", Role: entity.RoleUser,
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok, _ := st.Get(state.KeyToken)
	assert.False(t, ok, "un login fallido no persiste nada")
}

// La validación local corta antes de tocar la red.
func TestLogin_ValidacionLocal(t *testing.T) {
	m, _ := newManager(t, "http://127.0.0.1:0")
	_, err := m.Login(context.Background(), session.Credentials{Email: "no-es-email", Role: entity.RoleUser})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Current reconstruye la sesión persistida y Logout la destruye.
func TestCurrent_YLogout(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK)
	m, _ := newManager(t, srv.URL)

	_, err := m.Login(context.Background(), session.Credentials{
		Email: "user@acme.com", Password: "secreto", Role: entity.RoleUser,
	})
	require.NoError(t, err)

	sess, err := m.Current()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "user@acme.com", sess.Email)
	assert.True(t, sess.Permissions.Customer.Editor)

	require.NoError(t, m.Logout())
	sess, err = m.Current()
	require.NoError(t, err)
	assert.Nil(t, sess, "tras el logout no hay sesión")
}

// Un token JWT vencido guardado en el almacén se trata como sesión ausente.
func TestCurrent_TokenVencido(t *testing.T) {
	m, st := newManager(t, "http://127.0.0.1:0")

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)
	require.NoError(t, st.Set(state.KeyToken, tok))
	require.NoError(t, st.Set(state.KeyRole, "user"))

	sess, err := m.Current()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

// El perfil editable persiste y se relee completo.
func TestProfile_RoundTrip(t *testing.T) {
	m, _ := newManager(t, "http://127.0.0.1:0")

	in := entity.Profile{Name: "Admin", Phone: "6202105424", Department: "Product Designer", Designation: "Senior"}
	require.NoError(t, m.SaveProfile(in))

	out, err := m.Profile()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
