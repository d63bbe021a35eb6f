package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupEndorsementPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		job_role VARCHAR(100) NOT NULL DEFAULT '',
		location VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS skills (
		skill_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		category VARCHAR(100) NOT NULL,
		level VARCHAR(20) NOT NULL CHECK (level IN ('beginner', 'intermediate', 'expert')),
		certification VARCHAR(255),
		certification_date TIMESTAMP,
		endorsement_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS endorsements (
		endorsement_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		skill_id UUID NOT NULL REFERENCES skills(skill_id) ON DELETE CASCADE,
		endorser_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (skill_id, endorser_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertEndorsementFixtures(t *testing.T, db *sqlx.DB) (ownerID, endorserID, skillID uuid.UUID) {
	t.Helper()

	err := db.Get(&ownerID, `
		INSERT INTO users (username, email, password_hash)
		VALUES ('owner', 'owner@example.com', 'hash')
		RETURNING user_id
	`)
	assert.NoError(t, err)

	err = db.Get(&endorserID, `
		INSERT INTO users (username, email, password_hash)
		VALUES ('endorser', 'endorser@example.com', 'hash')
		RETURNING user_id
	`)
	assert.NoError(t, err)

	err = db.Get(&skillID, `
		INSERT INTO skills (user_id, name, category, level)
		VALUES ($1, 'Go', 'backend', 'expert')
		RETURNING skill_id
	`, ownerID)
	assert.NoError(t, err)

	return ownerID, endorserID, skillID
}

func TestEndorsementWriteRepository_Upsert(t *testing.T) {
	db, teardown := setupEndorsementPostgresContainer(t)
	defer teardown()

	repo := NewEndorsementWriteRepository(db, nil)
	ctx := context.Background()

	_, endorserID, skillID := insertEndorsementFixtures(t, db)

	firstID, err := repo.Upsert(ctx, skillID, endorserID, "solid reviewer")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, firstID)

	// Endorsing again replaces the comment instead of adding a row.
	secondID, err := repo.Upsert(ctx, skillID, endorserID, "even better now")
	assert.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	var rows []models.EndorsementDB
	err = db.Select(&rows, `
		SELECT endorsement_id, skill_id, endorser_id, comment, created_at, updated_at
		FROM endorsements WHERE skill_id = $1
	`, skillID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "even better now", rows[0].Comment)
}

func TestEndorsementReadRepository_ListBySkillID(t *testing.T) {
	db, teardown := setupEndorsementPostgresContainer(t)
	defer teardown()

	writeRepo := NewEndorsementWriteRepository(db, nil)
	readRepo := NewEndorsementReadRepository(db)
	ctx := context.Background()

	_, endorserID, skillID := insertEndorsementFixtures(t, db)

	_, err := writeRepo.Upsert(ctx, skillID, endorserID, "ships fast")
	assert.NoError(t, err)

	rows, err := readRepo.ListBySkillID(ctx, skillID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, endorserID, rows[0].EndorserID)
	assert.Equal(t, "ships fast", rows[0].Comment)

	empty, err := readRepo.ListBySkillID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSkillWriteRepository_IncrementEndorsementCount(t *testing.T) {
	db, teardown := setupEndorsementPostgresContainer(t)
	defer teardown()

	repo := NewSkillWriteRepository(db, nil)
	ctx := context.Background()

	_, _, skillID := insertEndorsementFixtures(t, db)

	assert.NoError(t, repo.IncrementEndorsementCount(ctx, skillID))
	assert.NoError(t, repo.IncrementEndorsementCount(ctx, skillID))

	var count int
	err := db.Get(&count, `SELECT endorsement_count FROM skills WHERE skill_id = $1`, skillID)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	err = repo.IncrementEndorsementCount(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
