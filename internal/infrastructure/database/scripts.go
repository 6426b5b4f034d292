package database

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Script keys the bill source needs. Deleted bills and current period are
// distinct queries with distinct keys.
const (
	ScriptUnpaidBills   = "unpaidBills"
	ScriptDeletedBills  = "deletedBills"
	ScriptCurrentPeriod = "currentPeriod"
	ScriptMinUnpaidDate = "minUnpaidDate"
	ScriptSettledBills  = "settledBills"
)

var requiredScripts = []string{
	ScriptUnpaidBills,
	ScriptDeletedBills,
	ScriptCurrentPeriod,
	ScriptMinUnpaidDate,
	ScriptSettledBills,
}

// ScriptSet holds the SQL statements the bill source runs, loaded from an
// external file so operators can adjust them without a rebuild. Each value
// is stored as an array of lines and joined with single spaces.
type ScriptSet struct {
	queries map[string]string
}

type scriptFile struct {
	Queries map[string][]string `json:"queries"`
}

// LoadScripts reads and validates a scripts file. Every required key must
// be present and non-empty.
func LoadScripts(path string) (*ScriptSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scripts: %w", err)
	}
	var f scriptFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scripts: %w", err)
	}

	queries := make(map[string]string, len(f.Queries))
	for name, lines := range f.Queries {
		queries[name] = strings.TrimSpace(strings.Join(lines, " "))
	}
	for _, name := range requiredScripts {
		if queries[name] == "" {
			return nil, fmt.Errorf("scripts file missing query %q", name)
		}
	}
	return &ScriptSet{queries: queries}, nil
}

// Query returns the SQL for a script key.
func (s *ScriptSet) Query(name string) (string, error) {
	q, ok := s.queries[name]
	if !ok {
		return "", fmt.Errorf("unknown query %q", name)
	}
	return q, nil
}
