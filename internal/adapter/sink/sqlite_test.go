package sink

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteSink(t *testing.T) *SQLiteSink {
	t.Helper()
	s, err := NewSQLiteSink(filepath.Join(t.TempDir(), "dataset.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteWriteStoresRunAndRecords(t *testing.T) {
	s := newTestSQLiteSink(t)
	records := testRecords(t)

	n, err := s.Write(context.Background(), "01TESTRUN", records)
	require.NoError(t, err)
	assert.Equal(t, len(records), n)

	var count int
	require.NoError(t, s.db.QueryRow(
		"SELECT COUNT(*) FROM records WHERE run_id = ?", "01TESTRUN").Scan(&count))
	assert.Equal(t, len(records), count)

	var recorded int
	require.NoError(t, s.db.QueryRow(
		"SELECT record_count FROM runs WHERE id = ?", "01TESTRUN").Scan(&recorded))
	assert.Equal(t, len(records), recorded)
}

func TestSQLiteWritePreservesRecordOrder(t *testing.T) {
	s := newTestSQLiteSink(t)
	records := testRecords(t)

	_, err := s.Write(context.Background(), "01TESTRUN", records)
	require.NoError(t, err)

	rows, err := s.db.Query(
		"SELECT input FROM records WHERE run_id = ? ORDER BY seq", "01TESTRUN")
	require.NoError(t, err)
	defer rows.Close()

	i := 0
	for rows.Next() {
		var input string
		require.NoError(t, rows.Scan(&input))
		assert.Equal(t, records[i].Input, input)
		i++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, len(records), i)
}

func TestSQLiteRunsAccumulate(t *testing.T) {
	s := newTestSQLiteSink(t)
	records := testRecords(t)

	_, err := s.Write(context.Background(), "01RUNA", records)
	require.NoError(t, err)
	_, err = s.Write(context.Background(), "01RUNB", records[:1])
	require.NoError(t, err)

	var runs int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs))
	assert.Equal(t, 2, runs)

	var total int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&total))
	assert.Equal(t, len(records)+1, total)
}

func TestSQLiteDuplicateRunIDFails(t *testing.T) {
	s := newTestSQLiteSink(t)
	records := testRecords(t)

	_, err := s.Write(context.Background(), "01SAME", records)
	require.NoError(t, err)

	_, err = s.Write(context.Background(), "01SAME", records)
	assert.Error(t, err)

	// The failed run must not leave partial rows behind.
	var total int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&total))
	assert.Equal(t, len(records), total)
}
