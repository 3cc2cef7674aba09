package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisasterScopeValid(t *testing.T) {
	assert.False(t, DisasterScope{}.Valid())
	assert.False(t, DisasterScope{DisasterID: 0, Name: "x"}.Valid())
	assert.True(t, DisasterScope{DisasterID: 7, Name: "Banjir Agam 2025"}.Valid())
}

func TestSessionStore_NilClientFailsClosed(t *testing.T) {
	var store *SessionStore

	sc, err := store.Get(context.Background(), "admin-1")
	assert.NoError(t, err)
	assert.False(t, sc.Valid())

	assert.NoError(t, store.Set(context.Background(), "admin-1", DisasterScope{DisasterID: 1}))
	assert.NoError(t, store.Clear(context.Background(), "admin-1"))
}
