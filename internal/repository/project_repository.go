package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"buildease/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project, milestones []domain.Milestone) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Project, error)
	ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Project, error)
	AddBid(ctx context.Context, bid *domain.Bid) error
	ListBids(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error)
	ListMilestones(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error)
	ListUpdates(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectUpdate, error)
	ApplyProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error
	AppendUpdate(ctx context.Context, update *domain.ProjectUpdate) error
	AppendGalleryImage(ctx context.Context, projectID uuid.UUID, url string) error
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// projectRow joins the project with its customer and (optional) contractor.
type projectRow struct {
	domain.Project
	CustomerName     string  `db:"cust_name"`
	CustomerEmail    string  `db:"cust_email"`
	CustomerLocation *string `db:"cust_location"`

	ContractorName      *string  `db:"ct_name"`
	ContractorCompany   *string  `db:"ct_company_name"`
	ContractorRating    *float64 `db:"ct_rating"`
	ContractorCompleted *int     `db:"ct_completed_projects"`
}

const projectSelect = `
	SELECT p.*,
		c.name AS cust_name, c.email AS cust_email, c.location AS cust_location,
		ct.name AS ct_name, ct.company_name AS ct_company_name,
		ct.rating AS ct_rating, ct.completed_projects AS ct_completed_projects
	FROM projects p
	JOIN users c ON c.user_id = p.customer_id
	LEFT JOIN users ct ON ct.user_id = p.contractor_id`

func (row *projectRow) toProject() domain.Project {
	project := row.Project
	project.Customer = &domain.CustomerSummary{
		ID:       project.CustomerID,
		Name:     row.CustomerName,
		Email:    row.CustomerEmail,
		Location: row.CustomerLocation,
	}
	if project.ContractorID != nil && row.ContractorName != nil {
		summary := &domain.ContractorSummary{
			ID:          *project.ContractorID,
			Name:        *row.ContractorName,
			CompanyName: row.ContractorCompany,
		}
		if row.ContractorRating != nil {
			summary.Rating = *row.ContractorRating
		}
		if row.ContractorCompleted != nil {
			summary.CompletedProjects = *row.ContractorCompleted
		}
		project.Contractor = summary
	}
	return project
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project, milestones []domain.Milestone) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (project_id, title, description, budget, location, type,
			skills, status, progress, customer_id, total_budget, budget_spent,
			next_milestone, gallery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err = tx.QueryRowxContext(ctx, query,
		project.ID, project.Title, project.Description, project.Budget,
		project.Location, project.Type, project.Skills, project.Status,
		project.Progress, project.CustomerID, project.TotalBudget,
		project.BudgetSpent, project.NextMilestone, project.Gallery,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return err
	}

	milestoneQuery := `
		INSERT INTO milestones (milestone_id, project_id, position, name, status, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, m := range milestones {
		if _, err := tx.ExecContext(ctx, milestoneQuery, m.ID, m.ProjectID, m.Position, m.Name, m.Status, m.Date); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var row projectRow
	query := projectSelect + ` WHERE p.project_id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	project := row.toProject()
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", len(args)))
	}

	query := projectSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC"

	return r.selectProjects(ctx, query, args...)
}

func (r *projectRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Project, error) {
	query := projectSelect + ` WHERE p.customer_id = $1 ORDER BY p.created_at DESC`
	return r.selectProjects(ctx, query, customerID)
}

func (r *projectRepository) ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Project, error) {
	query := projectSelect + ` WHERE p.contractor_id = $1 ORDER BY p.created_at DESC`
	return r.selectProjects(ctx, query, contractorID)
}

func (r *projectRepository) selectProjects(ctx context.Context, query string, args ...interface{}) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].toProject())
	}
	return projects, nil
}

// AddBid inserts a single bid row. Appending is a plain INSERT, so concurrent
// bids on the same project never overwrite each other.
func (r *projectRepository) AddBid(ctx context.Context, bid *domain.Bid) error {
	query := `
		INSERT INTO bids (bid_id, project_id, contractor_id, amount, timeline, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		bid.ID, bid.ProjectID, bid.ContractorID, bid.Amount, bid.Timeline, bid.Message,
	).Scan(&bid.CreatedAt)
}

type bidRow struct {
	domain.Bid
	ContractorName      string  `db:"ct_name"`
	ContractorCompany   *string `db:"ct_company_name"`
	ContractorRating    float64 `db:"ct_rating"`
	ContractorCompleted int     `db:"ct_completed_projects"`
}

func (r *projectRepository) ListBids(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	var rows []bidRow
	query := `
		SELECT b.*,
			u.name AS ct_name, u.company_name AS ct_company_name,
			u.rating AS ct_rating, u.completed_projects AS ct_completed_projects
		FROM bids b
		JOIN users u ON u.user_id = b.contractor_id
		WHERE b.project_id = $1
		ORDER BY b.created_at ASC, b.bid_id ASC`

	if err := r.db.SelectContext(ctx, &rows, query, projectID); err != nil {
		return nil, err
	}

	bids := make([]domain.Bid, 0, len(rows))
	for i := range rows {
		bid := rows[i].Bid
		bid.Contractor = &domain.ContractorSummary{
			ID:                bid.ContractorID,
			Name:              rows[i].ContractorName,
			CompanyName:       rows[i].ContractorCompany,
			Rating:            rows[i].ContractorRating,
			CompletedProjects: rows[i].ContractorCompleted,
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

func (r *projectRepository) ListMilestones(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error) {
	var milestones []domain.Milestone
	query := `SELECT * FROM milestones WHERE project_id = $1 ORDER BY position ASC`
	err := r.db.SelectContext(ctx, &milestones, query, projectID)
	return milestones, err
}

func (r *projectRepository) ListUpdates(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectUpdate, error) {
	var updates []domain.ProjectUpdate
	query := `SELECT * FROM project_updates WHERE project_id = $1 ORDER BY date ASC, update_id ASC`
	err := r.db.SelectContext(ctx, &updates, query, projectID)
	return updates, err
}

// ApplyProgress updates only the fields present in the patch.
func (r *projectRepository) ApplyProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	if patch.Progress != nil {
		args = append(args, *patch.Progress)
		sets = append(sets, fmt.Sprintf("progress = $%d", len(args)))
	}
	if patch.NextMilestone != nil {
		args = append(args, *patch.NextMilestone)
		sets = append(sets, fmt.Sprintf("next_milestone = $%d", len(args)))
	}
	if patch.BudgetSpent != nil {
		args = append(args, *patch.BudgetSpent)
		sets = append(sets, fmt.Sprintf("budget_spent = $%d", len(args)))
	}

	query := fmt.Sprintf("UPDATE projects SET %s WHERE project_id = $1", strings.Join(sets, ", "))
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *projectRepository) AppendUpdate(ctx context.Context, update *domain.ProjectUpdate) error {
	query := `
		INSERT INTO project_updates (update_id, project_id, text, date)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, update.ID, update.ProjectID, update.Text, update.Date)
	return err
}

func (r *projectRepository) AppendGalleryImage(ctx context.Context, projectID uuid.UUID, url string) error {
	query := `
		UPDATE projects
		SET gallery = array_append(gallery, $2), updated_at = NOW()
		WHERE project_id = $1
		RETURNING project_id`

	var id uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, projectID, url).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProjectNotFound
	}
	return err
}
