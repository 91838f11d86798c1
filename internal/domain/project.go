package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProjectType string

const (
	TypeNewConstruction ProjectType = "New Construction"
	TypeRenovation      ProjectType = "Renovation"
	TypeCommercial      ProjectType = "Commercial"
	TypeInteriors       ProjectType = "Interiors"
)

func (t ProjectType) IsValid() bool {
	switch t {
	case TypeNewConstruction, TypeRenovation, TypeCommercial, TypeInteriors:
		return true
	}
	return false
}

type ProjectStatus string

const (
	StatusOpen       ProjectStatus = "open"
	StatusInProgress ProjectStatus = "in-progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusCancelled  ProjectStatus = "cancelled"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type MilestoneStatus string

const (
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneUpcoming   MilestoneStatus = "upcoming"
)

type Project struct {
	ID            uuid.UUID      `json:"id" db:"project_id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Budget        string         `json:"budget" db:"budget"`
	Location      string         `json:"location" db:"location"`
	Type          ProjectType    `json:"type" db:"type"`
	Skills        pq.StringArray `json:"skills" db:"skills"`
	Status        ProjectStatus  `json:"status" db:"status"`
	Progress      int            `json:"progress" db:"progress"`
	CustomerID    uuid.UUID      `json:"customer_id" db:"customer_id"`
	ContractorID  *uuid.UUID     `json:"contractor_id,omitempty" db:"contractor_id"`
	TotalBudget   float64        `json:"total_budget" db:"total_budget"`
	BudgetSpent   float64        `json:"budget_spent" db:"budget_spent"`
	NextMilestone string         `json:"next_milestone" db:"next_milestone"`
	Gallery       pq.StringArray `json:"gallery" db:"gallery"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`

	Customer   *CustomerSummary   `json:"customer,omitempty" db:"-"`
	Contractor *ContractorSummary `json:"contractor,omitempty" db:"-"`
	Milestones []Milestone        `json:"milestones,omitempty" db:"-"`
	Updates    []ProjectUpdate    `json:"updates,omitempty" db:"-"`
	Bids       []Bid              `json:"bids,omitempty" db:"-"`
}

type Milestone struct {
	ID        uuid.UUID       `json:"id" db:"milestone_id"`
	ProjectID uuid.UUID       `json:"-" db:"project_id"`
	Position  int             `json:"-" db:"position"`
	Name      string          `json:"name" db:"name"`
	Status    MilestoneStatus `json:"status" db:"status"`
	Date      *time.Time      `json:"date,omitempty" db:"date"`
}

type ProjectUpdate struct {
	ID        uuid.UUID `json:"id" db:"update_id"`
	ProjectID uuid.UUID `json:"-" db:"project_id"`
	Text      string    `json:"text" db:"text"`
	Date      time.Time `json:"date" db:"date"`
}

type Bid struct {
	ID           uuid.UUID `json:"id" db:"bid_id"`
	ProjectID    uuid.UUID `json:"-" db:"project_id"`
	ContractorID uuid.UUID `json:"contractor_id" db:"contractor_id"`
	Amount       string    `json:"amount" db:"amount"`
	Timeline     string    `json:"timeline" db:"timeline"`
	Message      string    `json:"message" db:"message"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Contractor *ContractorSummary `json:"contractor,omitempty" db:"-"`
}

// SeededMilestoneNames is the fixed construction phase sequence every new
// project starts with.
var SeededMilestoneNames = [5]string{
	"Foundation",
	"Structure & Slabs",
	"Roofing",
	"Plumbing & Electrical",
	"Finishing",
}

// SeedMilestones builds the five upcoming milestones for a new project.
func SeedMilestones(projectID uuid.UUID) []Milestone {
	milestones := make([]Milestone, 0, len(SeededMilestoneNames))
	for i, name := range SeededMilestoneNames {
		milestones = append(milestones, Milestone{
			ID:        uuid.New(),
			ProjectID: projectID,
			Position:  i,
			Name:      name,
			Status:    MilestoneUpcoming,
		})
	}
	return milestones
}

type CreateProjectInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Budget      string      `json:"budget" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	Type        ProjectType `json:"type"`
	Skills      []string    `json:"skills"`
	TotalBudget float64     `json:"total_budget"`
}

type SubmitBidInput struct {
	Amount   string `json:"amount" validate:"required"`
	Timeline string `json:"timeline"`
	Message  string `json:"message"`
}

// ProgressPatch is a sparse update: nil fields are left untouched. Update, when
// set, appends one entry to the project's update log.
type ProgressPatch struct {
	Progress      *int     `json:"progress,omitempty"`
	NextMilestone *string  `json:"next_milestone,omitempty"`
	BudgetSpent   *float64 `json:"budget_spent,omitempty"`
	Update        *string  `json:"update,omitempty"`
}

func (p ProgressPatch) IsEmpty() bool {
	return p.Progress == nil && p.NextMilestone == nil && p.BudgetSpent == nil && p.Update == nil
}

// ProjectFilter holds the equality filters of the project listing. Empty
// fields match everything.
type ProjectFilter struct {
	Status ProjectStatus `query:"status"`
	Type   ProjectType   `query:"type"`
}
