package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, DialectSQLite))
	require.NoError(t, Migrate(db, DialectSQLite))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"tasks", "schedule_blocks", "routines", "blocked_ranges", "settings"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_tasks_status",
		"idx_schedule_blocks_start",
		"idx_schedule_blocks_task",
		"idx_blocked_ranges_date",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_TaskCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO tasks (id, title, estimated_minutes, deadline, importance, preferred_time, focus_need, status, created_at, updated_at)
		VALUES (?, 'Task', ?, '2025-06-20T00:00:00Z', ?, ?, ?, ?, '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`

	_, err := db.Exec(insert, "t1", 60, 3, "any", "medium", "pending")
	require.NoError(t, err)

	_, err = db.Exec(insert, "t2", -1, 3, "any", "medium", "pending")
	assert.Error(t, err, "negative estimate should be rejected")
	_, err = db.Exec(insert, "t3", 60, 6, "any", "medium", "pending")
	assert.Error(t, err, "importance above 5 should be rejected")
	_, err = db.Exec(insert, "t4", 60, 3, "night", "medium", "pending")
	assert.Error(t, err, "unknown preferred time should be rejected")
	_, err = db.Exec(insert, "t5", 60, 3, "any", "extreme", "pending")
	assert.Error(t, err, "unknown focus need should be rejected")
	_, err = db.Exec(insert, "t6", 60, 3, "any", "medium", "archived")
	assert.Error(t, err, "unknown status should be rejected")
}

func TestMigrate_DeletingTaskDetachesBlocks(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO tasks (id, title, deadline, created_at, updated_at)
		VALUES ('t1', 'Task', '2025-06-20T00:00:00Z', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO schedule_blocks (id, task_id, title, start_at, end_at, created_at)
		VALUES ('b1', 't1', 'Task', '2025-06-16T09:00:00Z', '2025-06-16T10:00:00Z', '2025-06-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM tasks WHERE id = 't1'`)
	require.NoError(t, err)

	var taskID sql.NullString
	require.NoError(t, db.QueryRow(`SELECT task_id FROM schedule_blocks WHERE id = 'b1'`).Scan(&taskID))
	assert.False(t, taskID.Valid, "block survives with a NULL task reference")
}
