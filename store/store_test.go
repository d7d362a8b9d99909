package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/models"
)

func openMemory(t *testing.T) *SQLStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndList(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	for i, kind := range []string{"analyze", "launch", "analyze"} {
		rec := &models.HistoryRecord{
			Kind:      kind,
			Input:     "input",
			Summary:   "summary",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.Save(ctx, rec))
		require.NotEmpty(t, rec.ID)
	}

	all, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, base.Add(2*time.Minute), all[0].CreatedAt)
	require.Equal(t, base, all[2].CreatedAt)

	analyses, err := s.List(ctx, "analyze", 1)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	require.Equal(t, "analyze", analyses[0].Kind)
	require.Equal(t, base.Add(2*time.Minute), analyses[0].CreatedAt)
}

func TestSaveAssignsTime(t *testing.T) {
	s := openMemory(t)
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	rec := &models.HistoryRecord{Kind: "keywords", Input: "https://www.amazon.com/dp/B0ABCDEF12"}
	require.NoError(t, s.Save(context.Background(), rec))
	require.Equal(t, at, rec.CreatedAt)

	got, err := s.List(context.Background(), "keywords", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, *rec, got[0])
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		dsn, driver, source string
	}{
		{"postgres://u:p@localhost/db", "postgres", "postgres://u:p@localhost/db"},
		{"postgresql://localhost/db", "postgres", "postgresql://localhost/db"},
		{"libsql://history.turso.io?authToken=x", "libsql", "libsql://history.turso.io?authToken=x"},
		{"https://history.turso.io", "libsql", "https://history.turso.io"},
		{"file:history.db?cache=shared", "sqlite", "file:history.db?cache=shared"},
		{"sqlite://data/history.db", "sqlite", "data/history.db"},
		{":memory:", "sqlite", ":memory:"},
		{"history.db", "sqlite", "history.db"},
	}
	for _, tt := range tests {
		driver, source := driverFor(tt.dsn)
		if driver != tt.driver || source != tt.source {
			t.Errorf("driverFor(%q) = %q, %q; want %q, %q", tt.dsn, driver, source, tt.driver, tt.source)
		}
	}
}

func TestRebind(t *testing.T) {
	pg := &SQLStore{postgres: true}
	require.Equal(t, "SELECT a FROM t WHERE k = $1 LIMIT $2", pg.rebind("SELECT a FROM t WHERE k = ? LIMIT ?"))

	lite := &SQLStore{}
	require.Equal(t, "LIMIT ?", lite.rebind("LIMIT ?"))
}

func TestNop(t *testing.T) {
	var s Store = Nop{}
	require.NoError(t, s.Save(context.Background(), &models.HistoryRecord{}))
	got, err := s.List(context.Background(), "", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}
