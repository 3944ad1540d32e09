package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/sheets"
)

// TableCache serves reference tables with bounded staleness: entries are
// reused until the TTL elapses or an explicit invalidation occurs, then the
// next read falls through to the spreadsheet.
type TableCache struct {
	source sheets.Repository
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	records   []models.Record
	fetchedAt time.Time
}

// New wires a table cache in front of the given repository.
func New(source sheets.Repository, ttl time.Duration, logger *zap.Logger) *TableCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TableCache{
		source:  source,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// ReadTable returns the cached rows for the table, refreshing from the source
// when the entry is missing or older than the TTL.
func (c *TableCache) ReadTable(ctx context.Context, table string) ([]models.Record, error) {
	c.mu.Lock()
	if cached, ok := c.entries[table]; ok && c.now().Sub(cached.fetchedAt) < c.ttl {
		records := cached.records
		c.mu.Unlock()
		return records, nil
	}
	c.mu.Unlock()

	records, err := c.source.ReadTable(ctx, table)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[table] = entry{records: records, fetchedAt: c.now()}
	c.mu.Unlock()

	c.logger.Debug("table cache refreshed", zap.String("table", table), zap.Int("records", len(records)))
	return records, nil
}

// Invalidate drops every cached table so the next read hits the source.
func (c *TableCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()

	c.logger.Info("table cache invalidated")
}

// WarmUp force-reloads all reference tables, replacing any cached copies.
// Individual table failures are collected so a transient error on one table
// does not leave the others stale.
func (c *TableCache) WarmUp(ctx context.Context) error {
	var firstErr error

	for _, table := range sheets.ReferenceTables() {
		records, err := c.source.ReadTable(ctx, table)
		if err != nil {
			c.logger.Warn("cache warm-up failed for table", zap.String("table", table), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("warm up table %s: %w", table, err)
			}
			continue
		}

		c.mu.Lock()
		c.entries[table] = entry{records: records, fetchedAt: c.now()}
		c.mu.Unlock()
	}

	return firstErr
}
