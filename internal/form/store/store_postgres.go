package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vistoforms/internal/form/coerce"
	"vistoforms/internal/form/models"
)

// PostgresStore persists forms in PostgreSQL. Step values are stored as a
// jsonb payload in the wire representation; coercion to and from typed
// values happens here and nowhere else.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed form store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the backing tables when they do not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS forms (
    id           uuid PRIMARY KEY,
    applicant_id text NOT NULL,
    created_at   timestamptz NOT NULL,
    updated_at   timestamptz NOT NULL
);
CREATE TABLE IF NOT EXISTS form_steps (
    form_id    uuid NOT NULL REFERENCES forms(id) ON DELETE CASCADE,
    step       int NOT NULL,
    payload    jsonb NOT NULL,
    submitted  boolean NOT NULL DEFAULT false,
    updated_at timestamptz NOT NULL,
    PRIMARY KEY (form_id, step)
);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate form store: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateForm(ctx context.Context, form *models.Form) error {
	const q = `INSERT INTO forms (id, applicant_id, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	if _, err := s.db.ExecContext(ctx, q, form.ID, form.ApplicantID, form.CreatedAt, form.UpdatedAt); err != nil {
		return fmt.Errorf("create form: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetForm(ctx context.Context, formID uuid.UUID) (*models.Form, error) {
	const q = `SELECT id, applicant_id, created_at, updated_at FROM forms WHERE id = $1`
	var form models.Form
	err := s.db.QueryRowContext(ctx, q, formID).
		Scan(&form.ID, &form.ApplicantID, &form.CreatedAt, &form.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}
	return &form, nil
}

func (s *PostgresStore) GetStep(ctx context.Context, formID uuid.UUID, step models.Step) (*models.StepRecord, error) {
	const q = `SELECT payload, submitted, updated_at FROM form_steps WHERE form_id = $1 AND step = $2`
	var payload []byte
	record := models.StepRecord{FormID: formID, Step: step}
	err := s.db.QueryRowContext(ctx, q, formID, int(step)).
		Scan(&payload, &record.Submitted, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get step record: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode step payload: %w", err)
	}
	values, issues := coerce.Decode(models.SchemaFor(step), raw)
	if len(issues) > 0 {
		// Persisted payloads went through Encode; a coercion failure here
		// means the row was tampered with or written by an older schema.
		return nil, fmt.Errorf("corrupt step payload at %s: %s", issues[0].Path, issues[0].Message)
	}
	record.Values = values
	return &record, nil
}

func (s *PostgresStore) SaveStep(ctx context.Context, record *models.StepRecord) error {
	payload, err := json.Marshal(coerce.Encode(models.SchemaFor(record.Step), record.Values))
	if err != nil {
		return fmt.Errorf("encode step payload: %w", err)
	}
	const q = `
INSERT INTO form_steps (form_id, step, payload, submitted, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (form_id, step) DO UPDATE
SET payload = EXCLUDED.payload,
    submitted = form_steps.submitted OR EXCLUDED.submitted,
    updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, q, record.FormID, int(record.Step), payload, record.Submitted, record.UpdatedAt); err != nil {
		return fmt.Errorf("save step record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListSteps(ctx context.Context, formID uuid.UUID) ([]*models.StepRecord, error) {
	if _, err := s.GetForm(ctx, formID); err != nil {
		return nil, err
	}
	const q = `SELECT step, payload, submitted, updated_at FROM form_steps WHERE form_id = $1 ORDER BY step`
	rows, err := s.db.QueryContext(ctx, q, formID)
	if err != nil {
		return nil, fmt.Errorf("list step records: %w", err)
	}
	defer rows.Close()

	var records []*models.StepRecord
	for rows.Next() {
		var (
			stepNum int
			payload []byte
		)
		record := models.StepRecord{FormID: formID}
		if err := rows.Scan(&stepNum, &payload, &record.Submitted, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan step record: %w", err)
		}
		record.Step = models.Step(stepNum)

		var raw map[string]any
		if err := json.Unmarshal(payload, &raw); err != nil {
			return nil, fmt.Errorf("decode step payload: %w", err)
		}
		values, issues := coerce.Decode(models.SchemaFor(record.Step), raw)
		if len(issues) > 0 {
			return nil, fmt.Errorf("corrupt step payload at %s: %s", issues[0].Path, issues[0].Message)
		}
		record.Values = values
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list step records: %w", err)
	}
	return records, nil
}
