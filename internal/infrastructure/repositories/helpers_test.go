package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		trust_score REAL NOT NULL DEFAULT 1.0,
		auth_method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		last_active_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		user_id TEXT PRIMARY KEY,
		age_range TEXT NOT NULL,
		attribute TEXT NOT NULL,
		school_or_work TEXT NOT NULL,
		district TEXT NOT NULL,
		nearest_station TEXT NOT NULL,
		interests TEXT NOT NULL,
		bio TEXT,
		photos TEXT NOT NULL,
		instagram_handle TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInteractionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE interactions (
		id TEXT PRIMARY KEY,
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (from_user_id, to_user_id, kind)
	);`)
	mustExec(t, db, `CREATE TABLE blocks (
		blocker_id TEXT NOT NULL,
		blocked_id TEXT NOT NULL,
		created_at DATETIME,
		PRIMARY KEY (blocker_id, blocked_id)
	);`)
}

func createMatchTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE matches (
		id TEXT PRIMARY KEY,
		user_a_id TEXT NOT NULL,
		user_b_id TEXT NOT NULL,
		pair_key TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'active',
		matched_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reports (
		id TEXT PRIMARY KEY,
		reporter_id TEXT NOT NULL,
		reported_user_id TEXT NOT NULL,
		reason TEXT NOT NULL,
		details TEXT,
		created_at DATETIME
	);`)
}

func createCommunityTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE communities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		district TEXT NOT NULL,
		interest_tag TEXT NOT NULL,
		participant_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE community_members (
		community_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		PRIMARY KEY (community_id, user_id)
	);`)
}
