package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buelldocs/docgen/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(kind domain.DocumentKind, name string, createdAt time.Time) domain.DocumentRecord {
	return domain.DocumentRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		CreatedAt: createdAt,
		HTML:      "<html><body>" + name + "</body></html>",
	}
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := record(domain.PaystubDocument, "Paystubs - John Doe", time.Now().UTC())
	require.NoError(t, store.Save(ctx, saved))

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, domain.PaystubDocument, got.Kind)
	assert.Equal(t, saved.Name, got.Name)
	assert.Equal(t, saved.HTML, got.HTML)
	assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Second)
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing-id")
	assert.ErrorContains(t, err, "not found")
}

func TestSave_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := record(domain.PaystubDocument, "Paystubs - John Doe", time.Now().UTC())
	require.NoError(t, store.Save(ctx, saved))
	assert.Error(t, store.Save(ctx, saved))
}

func TestListAll_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	oldest := record(domain.PaystubDocument, "oldest", base)
	middle := record(domain.StatementDocument, "middle", base.Add(time.Hour))
	newest := record(domain.PaystubDocument, "newest", base.Add(2*time.Hour))

	for _, r := range []domain.DocumentRecord{oldest, newest, middle} {
		require.NoError(t, store.Save(ctx, r))
	}

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "newest", records[0].Name)
	assert.Equal(t, "middle", records[1].Name)
	assert.Equal(t, "oldest", records[2].Name)

	// listings omit the HTML body
	assert.Empty(t, records[0].HTML)
}

func TestListByKind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, record(domain.PaystubDocument, "stubs", now)))
	require.NoError(t, store.Save(ctx, record(domain.StatementDocument, "statement", now)))

	stubs, err := store.ListByKind(ctx, domain.PaystubDocument)
	require.NoError(t, err)
	require.Len(t, stubs, 1)
	assert.Equal(t, "stubs", stubs[0].Name)

	statements, err := store.ListByKind(ctx, domain.StatementDocument)
	require.NoError(t, err)
	require.Len(t, statements, 1)

	none, err := store.ListByKind(ctx, domain.DocumentKind("invoice"))
	require.NoError(t, err)
	assert.Empty(t, none)
}
