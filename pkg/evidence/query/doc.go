// Package query validates and defaults filters for run-ledger lookups.
//
// # Query Validation
//
// Validate ensures query parameters are sane before they reach a storage
// backend:
//
//   - Limit >= 0 and <= MaxLimit
//   - Offset >= 0
//   - Sort field is one of ValidSortFields
//   - Sort order is "asc" or "desc"
//   - Time range is valid (start <= end)
//
// ApplyDefaults fills in a default limit, sort field, and sort order for
// a query that leaves them unset.
//
// # Basic Usage
//
//	q := &evidence.Query{
//	    StartTime:  &startTime,
//	    EndTime:    &endTime,
//	    OnlyFailed: true,
//	    Limit:      100,
//	    SortBy:     "started_at",
//	    SortOrder:  "desc",
//	}
//
//	if err := query.Validate(q); err != nil {
//	    log.Fatal(err)
//	}
//	query.ApplyDefaults(q)
//
//	records, err := store.Query(ctx, q)
package query
