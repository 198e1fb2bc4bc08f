package state_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housebanao/ops-console/internal/infrastructure/state"
	"github.com/housebanao/ops-console/pkg/config"
)

// Cada backend debe cumplir el mismo contrato.
func runStoreContract(t *testing.T, s state.Store) {
	t.Helper()

	// Clave inexistente: ok=false sin error.
	_, ok, err := s.Get(state.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Set + Get round-trip; Set sobre clave existente actualiza.
	require.NoError(t, s.Set(state.KeyToken, "tok-1"))
	require.NoError(t, s.Set(state.KeyRole, "user"))
	require.NoError(t, s.Set(state.KeyToken, "tok-2"))

	v, ok, err := s.Get(state.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-2", v)

	// Delete quita una sola clave.
	require.NoError(t, s.Delete(state.KeyToken))
	_, ok, _ = s.Get(state.KeyToken)
	assert.False(t, ok)
	_, ok, _ = s.Get(state.KeyRole)
	assert.True(t, ok)

	// Clear deja el almacén vacío (logout).
	require.NoError(t, s.Set(state.KeyPermissions, `{"lead":{"editor":true}}`))
	require.NoError(t, s.Clear())
	_, ok, _ = s.Get(state.KeyRole)
	assert.False(t, ok)
	_, ok, _ = s.Get(state.KeyPermissions)
	assert.False(t, ok)
}

func TestMemory_Contrato(t *testing.T) {
	runStoreContract(t, state.NewMemory())
}

func TestSQLite_Contrato(t *testing.T) {
	s, err := state.OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	runStoreContract(t, s)
}

// La persistencia sqlite sobrevive a reabrir el archivo.
func TestSQLite_Persistencia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s1, err := state.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(state.KeyEmail, "a@b.com"))
	require.NoError(t, s1.Close())

	s2, err := state.OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()
	v, ok, err := s2.Get(state.KeyEmail)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", v)
}

// La fábrica respeta el backend configurado y rechaza los desconocidos.
func TestOpen_Fabrica(t *testing.T) {
	mem, err := state.Open(config.StateConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &state.Memory{}, mem)

	sq, err := state.Open(config.StateConfig{Backend: "sqlite", Path: filepath.Join(t.TempDir(), "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &state.SQLite{}, sq)
	sq.Close()

	_, err = state.Open(config.StateConfig{Backend: "redis"})
	assert.Error(t, err)
}
