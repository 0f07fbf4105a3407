package service

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/lr-explorer-server/internal/catalog"
	"github.com/lr-explorer-server/internal/domain"
)

// FilterRecords returns the records passing the condition filter and the
// free-text query. The condition sentinel domain.AllConditions disables the
// condition filter; an empty query matches everything. The query matches
// case-insensitively as a substring of either the test name or the condition.
func FilterRecords(records []domain.TestRecord, query, condition string) []domain.TestRecord {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.TestRecord, 0, len(records))
	for _, rec := range records {
		if condition != domain.AllConditions && rec.Condition != condition {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Test), needle) &&
			!strings.Contains(strings.ToLower(rec.Condition), needle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SortRecords returns a new slice ordered by the given key and direction.
// The sort is stable: equal keys preserve their relative input order, so
// re-sorting by the same key never reorders ties. The input is not mutated.
func SortRecords(records []domain.TestRecord, key domain.SortKey, dir domain.SortDirection) []domain.TestRecord {
	out := make([]domain.TestRecord, len(records))
	copy(out, records)

	cmp := comparatorFor(key)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == domain.DESCENDING {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparatorFor(key domain.SortKey) func(a, b domain.TestRecord) int {
	if key.IsNumeric() {
		field := numericField(key)
		return func(a, b domain.TestRecord) int {
			av, bv := field(a), field(b)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	}
	return func(a, b domain.TestRecord) int {
		if key == domain.SortByCondition {
			return strings.Compare(a.Condition, b.Condition)
		}
		return strings.Compare(a.Test, b.Test)
	}
}

func numericField(key domain.SortKey) func(domain.TestRecord) float64 {
	switch key {
	case domain.SortBySensitivity:
		return func(r domain.TestRecord) float64 { return r.Sensitivity }
	case domain.SortBySpecificity:
		return func(r domain.TestRecord) float64 { return r.Specificity }
	case domain.SortByLRPlus:
		return func(r domain.TestRecord) float64 { return r.LRPlus }
	default:
		return func(r domain.TestRecord) float64 { return r.LRMinus }
	}
}

// ViewKey identifies one filtered/sorted view of the catalog.
type ViewKey struct {
	Query     string
	Condition string
	SortKey   domain.SortKey
	SortDir   domain.SortDirection
}

// ViewEngine produces filtered, ordered views of the immutable catalog.
// Because the catalog never changes, computed views are memoized in an LRU
// cache keyed by the full query state.
type ViewEngine struct {
	logger  *logrus.Logger
	catalog *catalog.Catalog
	cache   *lru.Cache[ViewKey, []domain.TestRecord]
}

// NewViewEngine creates a view engine with an LRU cache of the given size.
func NewViewEngine(cat *catalog.Catalog, cacheSize int, logger *logrus.Logger) (*ViewEngine, error) {
	cache, err := lru.New[ViewKey, []domain.TestRecord](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create view cache: %w", err)
	}
	return &ViewEngine{logger: logger, catalog: cat, cache: cache}, nil
}

// View returns the filtered, ordered record list for the given query state.
// The returned slice is a fresh copy each time; callers may not observe or
// cause mutation of the cached view.
func (e *ViewEngine) View(query, condition string, key domain.SortKey, dir domain.SortDirection) []domain.TestRecord {
	vk := ViewKey{Query: query, Condition: condition, SortKey: key, SortDir: dir}

	view, ok := e.cache.Get(vk)
	if !ok {
		view = SortRecords(FilterRecords(e.catalog.Records(), query, condition), key, dir)
		e.cache.Add(vk, view)
		e.logger.WithFields(logrus.Fields{
			"query":     query,
			"condition": condition,
			"sort_key":  key.String(),
			"sort_dir":  dir.String(),
			"matches":   len(view),
		}).Debug("Computed record view")
	}

	out := make([]domain.TestRecord, len(view))
	copy(out, view)
	return out
}

// Conditions returns the distinct condition values for the filter dropdown.
func (e *ViewEngine) Conditions() []string {
	return e.catalog.Conditions()
}
