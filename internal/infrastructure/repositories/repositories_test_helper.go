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

func createUsersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		phone TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT,
		date_of_birth DATETIME,
		pan_number TEXT,
		role TEXT NOT NULL,
		kyc_status TEXT NOT NULL,
		is_email_verified BOOLEAN,
		is_phone_verified BOOLEAN,
		is_active BOOLEAN,
		profile_image_url TEXT,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createInvestmentPlansTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investment_plans (
		id TEXT PRIMARY KEY,
		plan_code TEXT UNIQUE NOT NULL,
		plan_name TEXT NOT NULL,
		description TEXT,
		investment_type TEXT NOT NULL,
		risk_level TEXT NOT NULL,
		min_investment_amount REAL NOT NULL,
		expected_returns TEXT,
		is_active BOOLEAN,
		display_order INTEGER,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserInvestmentsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE user_investments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		plan_id TEXT NOT NULL,
		investment_type TEXT NOT NULL,
		sip_amount REAL,
		sip_date INTEGER,
		sip_frequency TEXT,
		lump_sum_amount REAL,
		start_date DATETIME NOT NULL,
		status TEXT NOT NULL,
		total_invested REAL NOT NULL,
		current_value REAL NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createKycDocumentsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_documents (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		document_type TEXT NOT NULL,
		document_number TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		verification_status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createConsultationRequestsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE consultation_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		message TEXT,
		preferred_date DATETIME,
		preferred_time TEXT,
		investment_goal TEXT,
		monthly_investment_capacity TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createContactMessagesTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contact_messages (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBlogPostsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE blog_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		excerpt TEXT,
		content TEXT NOT NULL,
		featured_image_url TEXT,
		category TEXT,
		tags TEXT,
		read_time_minutes INTEGER,
		status TEXT NOT NULL,
		views_count INTEGER,
		published_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAuditLogsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		action TEXT NOT NULL,
		entity_type TEXT,
		entity_id TEXT,
		metadata TEXT,
		ip_address TEXT,
		created_at DATETIME
	);`)
}
