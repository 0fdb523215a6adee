package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/darklua-go/darklua/pkg/evidence"
)

// MemoryStorage implements evidence.Storage with an in-memory map. It is
// intended for tests and small local runs, not long-lived production use.
type MemoryStorage struct {
	records map[string]*evidence.RunRecord
	mu      sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string]*evidence.RunRecord)}
}

// Store persists a run record.
func (s *MemoryStorage) Store(ctx context.Context, record *evidence.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordCopy := *record
	s.records[record.ID] = &recordCopy
	return nil
}

// Query retrieves run records matching the query filters, sorted by
// StartedAt descending unless query.SortOrder says otherwise.
func (s *MemoryStorage) Query(ctx context.Context, query *evidence.Query) ([]*evidence.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*evidence.RunRecord
	for _, record := range s.records {
		if matchesQuery(record, query) {
			recordCopy := *record
			results = append(results, &recordCopy)
		}
	}

	sortRecords(results, query)
	return paginate(results, query), nil
}

// QueryStream streams matching records on a buffered channel.
func (s *MemoryStorage) QueryStream(ctx context.Context, query *evidence.Query) (<-chan *evidence.RunRecord, <-chan error, error) {
	recordsCh := make(chan *evidence.RunRecord, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(recordsCh)
		defer close(errCh)

		records, err := s.Query(ctx, query)
		if err != nil {
			errCh <- err
			return
		}

		for _, record := range records {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case recordsCh <- record:
			}
		}
	}()

	return recordsCh, errCh, nil
}

// Count returns the number of run records matching the query filters.
func (s *MemoryStorage) Count(ctx context.Context, query *evidence.Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, record := range s.records {
		if matchesQuery(record, query) {
			count++
		}
	}
	return count, nil
}

// Delete removes run records matching the query filters.
func (s *MemoryStorage) Delete(ctx context.Context, query *evidence.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var toDelete []string
	for id, record := range s.records {
		if matchesQuery(record, query) {
			toDelete = append(toDelete, id)
		}
	}
	for _, id := range toDelete {
		delete(s.records, id)
	}
	return int64(len(toDelete)), nil
}

// Close resets the in-memory store.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]*evidence.RunRecord)
	return nil
}

// Size returns the number of records in storage (for tests).
func (s *MemoryStorage) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func matchesQuery(record *evidence.RunRecord, query *evidence.Query) bool {
	if query == nil {
		return true
	}
	if query.StartTime != nil && record.StartedAt.Before(*query.StartTime) {
		return false
	}
	if query.EndTime != nil && record.StartedAt.After(*query.EndTime) {
		return false
	}
	if query.Input != "" && !strings.HasPrefix(record.Input, query.Input) {
		return false
	}
	if query.Rule != "" && !containsRule(record.RuleStack, query.Rule) {
		return false
	}
	if query.OnlyFailed && record.FilesFailed == 0 {
		return false
	}
	return true
}

func containsRule(stack []string, rule string) bool {
	for _, name := range stack {
		if name == rule {
			return true
		}
	}
	return false
}

func sortRecords(records []*evidence.RunRecord, query *evidence.Query) {
	descending := query == nil || query.SortOrder != "asc"
	sort.Slice(records, func(i, j int) bool {
		if descending {
			return records[i].StartedAt.After(records[j].StartedAt)
		}
		return records[i].StartedAt.Before(records[j].StartedAt)
	})
}

func paginate(records []*evidence.RunRecord, query *evidence.Query) []*evidence.RunRecord {
	if query == nil || query.Limit <= 0 {
		return records
	}
	start := query.Offset
	if start > len(records) {
		return []*evidence.RunRecord{}
	}
	end := start + query.Limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
