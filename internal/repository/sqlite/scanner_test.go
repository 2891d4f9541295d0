package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		case *sql.NullString:
			*v = ts.data[i].(sql.NullString)
		case *bool:
			*v = ts.data[i].(bool)
		}
	}

	return nil
}

// TestRows feeds a fixed set of scanners through the Rows interface
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanEntry(t *testing.T) {
	due := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Entry
		expectError bool
	}{
		{
			name: "entry with due date",
			scanner: &TestScanner{
				data: []interface{}{
					int64(1), "Buy milk", "2%", "2026-10-19",
					sql.NullString{String: "2030-01-01", Valid: true}, true,
				},
			},
			expected: &Entry{
				ID:           1,
				Title:        "Buy milk",
				Description:  "2%",
				CreationDate: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
				DueDate:      &due,
				IsDone:       true,
			},
		},
		{
			name: "entry without due date",
			scanner: &TestScanner{
				data: []interface{}{
					int64(2), "Call mom", "Sunday", "2026-10-19",
					sql.NullString{}, false,
				},
			},
			expected: &Entry{
				ID:           2,
				Title:        "Call mom",
				Description:  "Sunday",
				CreationDate: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "malformed creation date",
			scanner: &TestScanner{
				data: []interface{}{
					int64(3), "x", "y", "yesterday",
					sql.NullString{}, false,
				},
			},
			expectError: true,
		},
		{
			name: "malformed due date",
			scanner: &TestScanner{
				data: []interface{}{
					int64(4), "x", "y", "2026-10-19",
					sql.NullString{String: "soon", Valid: true}, false,
				},
			},
			expectError: true,
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanEntry(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanEntries(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		{data: []interface{}{int64(1), "a", "b", "2026-10-19", sql.NullString{}, false}},
		{data: []interface{}{int64(2), "c", "d", "2026-10-20", sql.NullString{}, true}},
	}}

	entries, err := ScanEntries(rows)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, int64(2), entries[1].ID)
	assert.True(t, entries[1].IsDone)
}

func TestScanEntries_RowsError(t *testing.T) {
	rows := &TestRows{err: errors.New("cursor failed")}

	entries, err := ScanEntries(rows)
	assert.Error(t, err)
	assert.Nil(t, entries)
}
