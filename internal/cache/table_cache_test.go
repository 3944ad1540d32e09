package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
)

type fakeSource struct {
	reads   map[string]int
	failing bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{reads: make(map[string]int)}
}

func (f *fakeSource) ReadTable(_ context.Context, table string) ([]models.Record, error) {
	if f.failing {
		return nil, fmt.Errorf("sheet unavailable")
	}
	f.reads[table]++
	return []models.Record{{"Table": table, "Read": fmt.Sprint(f.reads[table])}}, nil
}

func (f *fakeSource) AppendRecord(context.Context, string, models.Record, []string) error {
	return nil
}

func TestReadTable_ServesCachedWithinTTL(t *testing.T) {
	src := newFakeSource()
	c := New(src, 30*time.Second, nil)

	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	if _, err := c.ReadTable(context.Background(), "Store Master"); err != nil {
		t.Fatalf("first read: %v", err)
	}

	clock = clock.Add(10 * time.Second)
	if _, err := c.ReadTable(context.Background(), "Store Master"); err != nil {
		t.Fatalf("second read: %v", err)
	}

	if src.reads["Store Master"] != 1 {
		t.Fatalf("expected 1 source read within TTL, got %d", src.reads["Store Master"])
	}
}

func TestReadTable_RefreshesAfterTTL(t *testing.T) {
	src := newFakeSource()
	c := New(src, 30*time.Second, nil)

	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	if _, err := c.ReadTable(context.Background(), "Sales Data"); err != nil {
		t.Fatalf("first read: %v", err)
	}

	clock = clock.Add(31 * time.Second)
	if _, err := c.ReadTable(context.Background(), "Sales Data"); err != nil {
		t.Fatalf("expired read: %v", err)
	}

	if src.reads["Sales Data"] != 2 {
		t.Fatalf("expected refresh after TTL, got %d reads", src.reads["Sales Data"])
	}
}

func TestInvalidate_ForcesSourceRead(t *testing.T) {
	src := newFakeSource()
	c := New(src, time.Hour, nil)

	if _, err := c.ReadTable(context.Background(), "Config"); err != nil {
		t.Fatalf("first read: %v", err)
	}

	c.Invalidate()

	if _, err := c.ReadTable(context.Background(), "Config"); err != nil {
		t.Fatalf("post-invalidate read: %v", err)
	}

	if src.reads["Config"] != 2 {
		t.Fatalf("invalidate should force a source read, got %d", src.reads["Config"])
	}
}

func TestWarmUp_LoadsReferenceTables(t *testing.T) {
	src := newFakeSource()
	c := New(src, time.Hour, nil)

	if err := c.WarmUp(context.Background()); err != nil {
		t.Fatalf("warm up: %v", err)
	}

	for _, table := range []string{"Store Master", "SKU Master", "Sales Data", "Config"} {
		if src.reads[table] != 1 {
			t.Fatalf("table %s should be warmed once, got %d", table, src.reads[table])
		}
	}

	// Warmed entries are served without another source hit.
	if _, err := c.ReadTable(context.Background(), "Config"); err != nil {
		t.Fatalf("read after warm up: %v", err)
	}
	if src.reads["Config"] != 1 {
		t.Fatalf("warmed table should be cached, got %d reads", src.reads["Config"])
	}
}

func TestWarmUp_ReportsFailure(t *testing.T) {
	src := newFakeSource()
	src.failing = true
	c := New(src, time.Hour, nil)

	if err := c.WarmUp(context.Background()); err == nil {
		t.Fatal("expected warm-up error when source is unavailable")
	}
}
