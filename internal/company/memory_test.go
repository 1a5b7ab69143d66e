package company

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizapi/internal/apperr"
)

func strPtr(s string) *string { return &s }

func TestMemoryRepository_Create(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	t.Run("generates id, cif and timestamps", func(t *testing.T) {
		created, err := repo.Create(ctx, Request{Name: strPtr("Acme")})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Acme", created.Name)
		require.NotNil(t, created.CIFNumber)
		assert.True(t, strings.HasPrefix(*created.CIFNumber, "CIF-"))
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("keeps a provided cif", func(t *testing.T) {
		created, err := repo.Create(ctx, Request{Name: strPtr("Globex"), CIFNumber: strPtr("B12345678")})

		require.NoError(t, err)
		require.NotNil(t, created.CIFNumber)
		assert.Equal(t, "B12345678", *created.CIFNumber)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := repo.Create(ctx, Request{})

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestMemoryRepository_List(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, Request{Name: strPtr("Acme Corp")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, Request{Name: strPtr("Globex")})
	require.NoError(t, err)

	t.Run("no filter lists everything", func(t *testing.T) {
		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("filter is a case-insensitive substring match", func(t *testing.T) {
		got, err := repo.List(ctx, "ACME")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Acme Corp", got[0].Name)
	})

	t.Run("non-matching filter yields empty list", func(t *testing.T) {
		got, err := repo.List(ctx, "initech")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryRepository_Get(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, Request{Name: strPtr("Acme")})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown id is an empty result, not a failure", func(t *testing.T) {
		got, err := repo.Get(ctx, "does-not-exist")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, Request{
		Name:      strPtr("Acme"),
		City:      strPtr("Madrid"),
		CIFNumber: strPtr("B00000001"),
	})
	require.NoError(t, err)

	t.Run("present fields overwrite, absent fields persist", func(t *testing.T) {
		time.Sleep(time.Millisecond)
		updated, err := repo.Update(ctx, created.ID, Request{Name: strPtr("Acme Corp")})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Acme Corp", updated.Name)
		require.NotNil(t, updated.City)
		assert.Equal(t, "Madrid", *updated.City)
		require.NotNil(t, updated.CIFNumber)
		assert.Equal(t, "B00000001", *updated.CIFNumber)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("unknown id is an empty result", func(t *testing.T) {
		updated, err := repo.Update(ctx, "does-not-exist", Request{Name: strPtr("x")})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestMemoryRepository_Duplicate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, Request{Name: strPtr("Acme"), City: strPtr("Madrid")})
	require.NoError(t, err)

	t.Run("copies fields under a fresh identity", func(t *testing.T) {
		dup, err := repo.Duplicate(ctx, created.ID)

		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, "Acme (copia)", dup.Name)
		assert.NotEqual(t, created.ID, dup.ID)
		require.NotNil(t, dup.CIFNumber)
		assert.NotEqual(t, *created.CIFNumber, *dup.CIFNumber)
		assert.True(t, strings.HasPrefix(*dup.CIFNumber, "CIF-"))
		require.NotNil(t, dup.City)
		assert.Equal(t, "Madrid", *dup.City)

		// The duplicate is persisted, not just returned.
		stored, err := repo.Get(ctx, dup.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored)
	})

	t.Run("unknown id is an empty result", func(t *testing.T) {
		dup, err := repo.Duplicate(ctx, "does-not-exist")
		assert.NoError(t, err)
		assert.Nil(t, dup)
	})
}
