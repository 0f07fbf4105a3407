// Package catalog holds the compiled-in table of diagnostic test records and
// the study notes annotating them. The catalog is constructed once at process
// start and is immutable for the lifetime of the process.
package catalog

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lr-explorer-server/internal/domain"
)

// Catalog is the immutable set of test records and their study notes.
type Catalog struct {
	logger  *logrus.Logger
	records []domain.TestRecord
	byKey   map[domain.RecordKey]int
	notes   map[domain.RecordKey]domain.StudyNote
}

// New builds the catalog from the compiled-in tables and validates the
// (test, condition) natural-key uniqueness invariant.
func New(logger *logrus.Logger) (*Catalog, error) {
	c := &Catalog{
		logger:  logger,
		records: testRecords,
		byKey:   make(map[domain.RecordKey]int, len(testRecords)),
		notes:   make(map[domain.RecordKey]domain.StudyNote, len(studyNotes)),
	}

	for i, rec := range c.records {
		if rec.Test == "" {
			return nil, fmt.Errorf("record %d has an empty test name", i)
		}
		key := rec.Key()
		if prev, exists := c.byKey[key]; exists {
			return nil, fmt.Errorf("duplicate record key (%s, %s) at indexes %d and %d",
				key.Test, key.Condition, prev, i)
		}
		c.byKey[key] = i
	}

	for _, note := range studyNotes {
		key := domain.RecordKey{Test: note.Test, Condition: note.Condition}
		if _, exists := c.byKey[key]; !exists {
			return nil, fmt.Errorf("study note (%s, %s) has no matching record", note.Test, note.Condition)
		}
		c.notes[key] = note
	}

	logger.WithFields(logrus.Fields{
		"records":    len(c.records),
		"notes":      len(c.notes),
		"conditions": len(c.Conditions()),
	}).Info("Initialized diagnostic test catalog")

	return c, nil
}

// Records returns a copy of the full record list in catalog order.
func (c *Catalog) Records() []domain.TestRecord {
	out := make([]domain.TestRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Find looks up a record by its natural key.
func (c *Catalog) Find(test, condition string) (*domain.TestRecord, bool) {
	i, ok := c.byKey[domain.RecordKey{Test: test, Condition: condition}]
	if !ok {
		return nil, false
	}
	rec := c.records[i]
	return &rec, true
}

// StudyNotesFor looks up the study note for a record by exact key match.
// Absence is a valid state (no notes available), not an error.
func (c *Catalog) StudyNotesFor(test, condition string) (*domain.StudyNote, bool) {
	note, ok := c.notes[domain.RecordKey{Test: test, Condition: condition}]
	if !ok {
		return nil, false
	}
	return &note, true
}

// Conditions returns the sorted distinct condition values present in the
// catalog, for the condition filter.
func (c *Catalog) Conditions() []string {
	seen := make(map[string]bool, len(c.records))
	var out []string
	for _, rec := range c.records {
		if !seen[rec.Condition] {
			seen[rec.Condition] = true
			out = append(out, rec.Condition)
		}
	}
	sort.Strings(out)
	return out
}
