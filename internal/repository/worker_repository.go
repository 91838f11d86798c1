package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"buildease/internal/domain"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetForContractor(ctx context.Context, id, contractorID uuid.UUID) (*domain.Worker, error)
	ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	Delete(ctx context.Context, id, contractorID uuid.UUID) (bool, error)
}

type workerRepository struct {
	db *sqlx.DB
}

func NewWorkerRepository(db *sqlx.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	query := `
		INSERT INTO workers (worker_id, contractor_id, name, role, status,
			assigned_project_id, phone, daily_wage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		worker.ID, worker.ContractorID, worker.Name, worker.Role, worker.Status,
		worker.AssignedProjectID, worker.Phone, worker.DailyWage,
	).Scan(&worker.CreatedAt, &worker.UpdatedAt)
}

func (r *workerRepository) GetForContractor(ctx context.Context, id, contractorID uuid.UUID) (*domain.Worker, error) {
	var worker domain.Worker
	query := `SELECT * FROM workers WHERE worker_id = $1 AND contractor_id = $2`

	err := r.db.GetContext(ctx, &worker, query, id, contractorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Worker, error) {
	var workers []domain.Worker
	query := `
		SELECT w.*, p.title AS assigned_project_title
		FROM workers w
		LEFT JOIN projects p ON p.project_id = w.assigned_project_id
		WHERE w.contractor_id = $1
		ORDER BY w.name ASC`

	err := r.db.SelectContext(ctx, &workers, query, contractorID)
	return workers, err
}

func (r *workerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	query := `
		UPDATE workers
		SET name = :name, role = :role, status = :status,
			assigned_project_id = :assigned_project_id, phone = :phone,
			daily_wage = :daily_wage, updated_at = NOW()
		WHERE worker_id = :worker_id AND contractor_id = :contractor_id`

	_, err := r.db.NamedExecContext(ctx, query, worker)
	return err
}

func (r *workerRepository) Delete(ctx context.Context, id, contractorID uuid.UUID) (bool, error) {
	query := `DELETE FROM workers WHERE worker_id = $1 AND contractor_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, contractorID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
