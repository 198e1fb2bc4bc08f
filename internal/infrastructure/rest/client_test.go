package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housebanao/ops-console/internal/domain"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/config"
	"github.com/housebanao/ops-console/pkg/logger"
)

func newClient(t *testing.T, handler http.Handler) (*rest.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := rest.NewClient(config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5, PageSize: 5}, logger.Nop())
	return c, srv
}

// List arma query string con search/page/limit y decodifica el arreglo.
func TestList_QueryYDecodificacion(t *testing.T) {
	var gotQuery map[string]string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		gotQuery = map[string]string{
			"search": r.URL.Query().Get("search"),
			"page":   r.URL.Query().Get("page"),
			"limit":  r.URL.Query().Get("limit"),
		}
		json.NewEncoder(w).Encode([]entity.Customer{{ID: "c1", CompanyName: "Acme"}})
	}))

	var out []entity.Customer
	err := c.List(context.Background(), "customers", "acme", 2, 5, &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"search": "acme", "page": "2", "limit": "5"}, gotQuery)
	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].CompanyName)
}

// Toda petición lleva Bearer (cuando hay token) y un X-Request-ID.
func TestDo_HeadersDeAutenticacionYCorrelacion(t *testing.T) {
	var auth, reqID string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		reqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	c.SetTokenSource(func() string { return "tok-123" })

	var out []entity.Lead
	require.NoError(t, c.List(context.Background(), "leads", "", 1, 5, &out))
	assert.Equal(t, "Bearer tok-123", auth)
	assert.NotEmpty(t, reqID, "cada petición lleva un id de correlación")
}

// Un no-2xx se convierte en *HTTPError con el status original.
func TestDo_No2xxEsHTTPError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	var out []entity.Customer
	err := c.List(context.Background(), "customers", "", 1, 5, &out)
	require.Error(t, err)
	assert.True(t, rest.IsStatus(err, http.StatusBadGateway))
}

// Un fallo de transporte se envuelve bajo domain.ErrNetwork.
func TestDo_FalloDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // el puerto queda muerto

	c := rest.NewClient(config.APIConfig{BaseURL: base, TimeoutSeconds: 1}, logger.Nop())
	var out []entity.Customer
	err := c.List(context.Background(), "customers", "", 1, 5, &out)
	require.ErrorIs(t, err, domain.ErrNetwork)
}

// PatchStatus/PatchPriority pegan al sub-recurso con el cuerpo parcial.
func TestPatch_StatusYPriority(t *testing.T) {
	type hit struct {
		path string
		body map[string]string
	}
	var hits []hit
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		hits = append(hits, hit{path: r.URL.Path, body: body})
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.PatchStatus(context.Background(), "customers", "c1", "inactive"))
	require.NoError(t, c.PatchPriority(context.Background(), "leads", "l1", "High"))

	require.Len(t, hits, 2)
	assert.Equal(t, "/customers/c1/status", hits[0].path)
	assert.Equal(t, map[string]string{"status": "inactive"}, hits[0].body)
	assert.Equal(t, "/leads/l1/priority", hits[1].path)
	assert.Equal(t, map[string]string{"priority": "High"}, hits[1].body)
}

// Login elige el endpoint según el rol.
func TestLogin_EndpointPorRol(t *testing.T) {
	var paths []string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
	}))

	_, err := c.Login(context.Background(), entity.RoleAdmin, "a@b.com", "x")
	require.NoError(t, err)
	_, err = c.Login(context.Background(), entity.RoleUser, "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"/admins/login", "/user/login"}, paths)
}

// Permissions va con el token recién emitido y decodifica la matriz.
func TestPermissions_ConBearer(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/permissions/a@b.com", r.URL.Path)
		require.Equal(t, "Bearer tok-fresco", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"permissions": map[string]any{"lead": map[string]bool{"editor": true}},
		})
	}))

	m, err := c.Permissions(context.Background(), "a@b.com", "tok-fresco")
	require.NoError(t, err)
	assert.True(t, m.Lead.Editor)
	assert.False(t, m.Customer.Editor)
}
