package cache

import (
	"encoding/json"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
)

// ReportCache layers memory over disk and speaks reports rather than
// raw bytes. Disk hits are promoted to the memory layer.
type ReportCache struct {
	memory Cache
	disk   Cache
	ttl    time.Duration
}

// NewReportCache creates a layered report cache.
func NewReportCache(dir string, ttl time.Duration) *ReportCache {
	return &ReportCache{
		memory: NewMemoryCache(ttl, 10*time.Minute),
		disk:   NewDiskCache(dir, ttl),
		ttl:    ttl,
	}
}

// Lookup returns the cached report for a submission, marked with the
// cache source, or nil on a miss.
func (c *ReportCache) Lookup(sub model.Submission) *model.Report {
	key := Key(sub.Identity())

	data, found := c.memory.Get(key)
	if !found {
		data, found = c.disk.Get(key)
		if found {
			_ = c.memory.Set(key, data, 0)
		}
	}
	if !found {
		return nil
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		// A corrupt entry behaves like a miss.
		_ = c.Invalidate(sub)
		return nil
	}

	report.Source = model.SourceCache
	return &report
}

// Store caches the report under the submission's identity.
func (c *ReportCache) Store(sub model.Submission, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	key := Key(sub.Identity())
	if err := c.memory.Set(key, data, c.ttl); err != nil {
		return err
	}
	return c.disk.Set(key, data, c.ttl)
}

// Invalidate drops the cached report for a submission.
func (c *ReportCache) Invalidate(sub model.Submission) error {
	key := Key(sub.Identity())
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear drops both layers.
func (c *ReportCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
