// Package rest implementa el cliente tipado hacia el backend de la consola.
// Una familia de recursos por entidad, con forma consistente:
//
//	GET    /{resource}?search=&page=&limit=
//	POST   /{resource}
//	PUT    /{resource}/{id}
//	PATCH  /{resource}/{id}/status | /priority
//	DELETE /{resource}/{id}
//
// Las llamadas llevan timeout acotado: una petición colgada no debe dejar a
// la consola cargando para siempre.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/pkg/config"
	"github.com/housebanao/ops-console/pkg/logger"
)

// Client cliente REST del backend. Seguro para uso concurrente siempre que
// el token source lo sea.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
	tokenFn func() string
}

// NewClient construye el cliente con el timeout de la configuración.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:     log,
	}
}

// SetTokenSource registra el proveedor del token Bearer. Si devuelve vacío,
// la petición sale sin Authorization (login, signup).
func (c *Client) SetTokenSource(fn func() string) { c.tokenFn = fn }

// do ejecuta una petición JSON y decodifica la respuesta en out (si no es nil).
// No-2xx ⇒ *HTTPError; fallo de transporte ⇒ domain.ErrNetwork envuelto.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenFn != nil {
		if tok := c.tokenFn(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("fallo de red contra el backend")
		return netError(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("petición al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// ── Familia de recursos ───────────────────────────────────────────────────────

// List GET /{resource}?search=&page=&limit=. out debe ser puntero a slice.
func (c *Client) List(ctx context.Context, resource, search string, page, limit int, out any) error {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return c.do(ctx, http.MethodGet, "/"+resource, q, nil, out)
}

// Create POST /{resource}. El backend devuelve el registro canónico creado.
func (c *Client) Create(ctx context.Context, resource string, payload, out any) error {
	return c.do(ctx, http.MethodPost, "/"+resource, nil, payload, out)
}

// Update PUT /{resource}/{id}.
func (c *Client) Update(ctx context.Context, resource, id string, payload, out any) error {
	return c.do(ctx, http.MethodPut, "/"+resource+"/"+url.PathEscape(id), nil, payload, out)
}

// Delete DELETE /{resource}/{id}.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+resource+"/"+url.PathEscape(id), nil, nil, nil)
}

// PatchStatus PATCH /{resource}/{id}/status con cuerpo {"status": value}.
func (c *Client) PatchStatus(ctx context.Context, resource, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/"+resource+"/"+url.PathEscape(id)+"/status", nil, body, nil)
}

// PatchPriority PATCH /{resource}/{id}/priority con cuerpo {"priority": value}.
func (c *Client) PatchPriority(ctx context.Context, resource, id, priority string) error {
	body := map[string]string{"priority": priority}
	return c.do(ctx, http.MethodPatch, "/"+resource+"/"+url.PathEscape(id)+"/priority", nil, body, nil)
}

// ── Autenticación ─────────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login POST /admins/login o /user/login según el rol elegido. Devuelve el
// token emitido por el backend.
func (c *Client) Login(ctx context.Context, role entity.Role, email, password string) (string, error) {
	path := "/user/login"
	if role == entity.RoleAdmin {
		path = "/admins/login"
	}
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, path, nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

type permissionsResponse struct {
	Permissions entity.PermissionMatrix `json:"permissions"`
}

// Permissions GET /users/permissions/{email} con el token recién emitido.
func (c *Client) Permissions(ctx context.Context, email, tok string) (entity.PermissionMatrix, error) {
	endpoint := c.baseURL + "/users/permissions/" + url.PathEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.PermissionMatrix{}, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.PermissionMatrix{}, netError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return entity.PermissionMatrix{}, &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out permissionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entity.PermissionMatrix{}, fmt.Errorf("decodificar permisos: %w", err)
	}
	return out.Permissions, nil
}
