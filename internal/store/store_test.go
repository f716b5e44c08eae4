package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/notmytype/internal/model"
)

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.UnixMilli(1_700_000_000_000)
	s := New(filepath.Join(t.TempDir(), "nested", "saved.json"), WithClock(func() time.Time { return now }))
	return s, &now
}

func TestStore_ListEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	records, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_SaveDerivesID(t *testing.T) {
	s, _ := newTestStore(t)

	saved, err := s.Save(context.Background(), model.FontPairing{
		HeadingFont: "Playfair Display",
		BodyFont:    "Inter",
		Tags:        []string{"editorial"},
	})
	require.NoError(t, err)

	assert.Equal(t, "playfair-display-inter", saved.ID)
	assert.Equal(t, int64(1_700_000_000_000), saved.SavedAt)
	assert.True(t, saved.Custom)

	exists, err := s.Exists(context.Background(), "playfair-display-inter")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_SaveUpserts(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, model.FontPairing{HeadingFont: "Lora", BodyFont: "Inter", Tags: []string{"a"}})
	require.NoError(t, err)
	_, err = s.Save(ctx, model.FontPairing{HeadingFont: "Oswald", BodyFont: "Inter"})
	require.NoError(t, err)

	*now = now.Add(time.Minute)
	_, err = s.Save(ctx, model.FontPairing{HeadingFont: "Lora", BodyFont: "Inter", Tags: []string{"b"}})
	require.NoError(t, err)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "lora-inter", records[0].ID)
	assert.Equal(t, []string{"b"}, records[0].Tags)
	assert.Equal(t, now.UnixMilli(), records[0].SavedAt)
	assert.Equal(t, "oswald-inter", records[1].ID)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	n := 40

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Save(ctx, model.FontPairing{HeadingFont: fmt.Sprintf("Font %d", i), BodyFont: "Inter"})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, n)
}

func TestStore_ConcurrentSavesAndDeletes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := s.Save(ctx, model.FontPairing{HeadingFont: fmt.Sprintf("Old %d", i), BodyFont: "Lora"})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Delete(ctx, fmt.Sprintf("old-%d-lora", i)))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := s.Save(ctx, model.FontPairing{HeadingFont: fmt.Sprintf("New %d", i), BodyFont: "Lora"})
			assert.NoError(t, err)
			_, err = s.List(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 20)
	for _, r := range records {
		assert.Equal(t, "New", r.HeadingFont[:3], "unexpected survivor %s", r.ID)
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, model.FontPairing{HeadingFont: "Lora", BodyFont: "Inter"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "lora-inter"))
	require.NoError(t, s.Delete(ctx, "lora-inter"), "deleting a missing id is a no-op")

	exists, err := s.Exists(ctx, "lora-inter")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_GetNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_MalformedFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	records, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = s.Save(context.Background(), model.FontPairing{HeadingFont: "Lora", BodyFont: "Inter"})
	require.NoError(t, err)

	records, err = s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStore_SkipsMalformedRecords(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))
	data := `[
  {"id":"lora-inter","headingFont":"Lora","bodyFont":"Inter","tags":[],"savedAt":1},
  {"id":"","headingFont":"Oswald","bodyFont":"Inter","tags":[],"savedAt":2},
  {"id":"x","headingFont":"","bodyFont":"Inter","tags":[],"savedAt":3}
]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(data), 0644))

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "lora-inter", records[0].ID)
}

func TestStore_LockedByOtherHolder(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))

	other := flock.New(s.Path() + ".lock")
	ok, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer func() { _ = other.Unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = s.Save(ctx, model.FontPairing{HeadingFont: "Lora", BodyFont: "Inter"})
	assert.ErrorIs(t, err, ErrLocked)
}

func TestStore_FileFormat(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Save(context.Background(), model.FontPairing{HeadingFont: "Lora", BodyFont: "Inter", Tags: []string{"warm"}})
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"headingFont": "Lora"`)
	assert.Contains(t, string(data), `"savedAt": 1700000000000`)
	assert.Contains(t, string(data), `"custom": true`)
}
