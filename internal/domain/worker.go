package domain

import (
	"time"

	"github.com/google/uuid"
)

type WorkerRole string

const (
	WorkerMason       WorkerRole = "Mason"
	WorkerPlumber     WorkerRole = "Plumber"
	WorkerElectrician WorkerRole = "Electrician"
	WorkerCarpenter   WorkerRole = "Carpenter"
	WorkerPainter     WorkerRole = "Painter"
	WorkerLaborer     WorkerRole = "Laborer"
	WorkerSupervisor  WorkerRole = "Supervisor"
)

func (r WorkerRole) IsValid() bool {
	switch r {
	case WorkerMason, WorkerPlumber, WorkerElectrician, WorkerCarpenter,
		WorkerPainter, WorkerLaborer, WorkerSupervisor:
		return true
	}
	return false
}

type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "Available"
	WorkerAssigned  WorkerStatus = "Assigned"
	WorkerOnLeave   WorkerStatus = "On Leave"
)

func (s WorkerStatus) IsValid() bool {
	switch s {
	case WorkerAvailable, WorkerAssigned, WorkerOnLeave:
		return true
	}
	return false
}

type Worker struct {
	ID                uuid.UUID    `json:"id" db:"worker_id"`
	ContractorID      uuid.UUID    `json:"contractor_id" db:"contractor_id"`
	Name              string       `json:"name" db:"name"`
	Role              WorkerRole   `json:"role" db:"role"`
	Status            WorkerStatus `json:"status" db:"status"`
	AssignedProjectID *uuid.UUID   `json:"assigned_project_id,omitempty" db:"assigned_project_id"`
	Phone             string       `json:"phone" db:"phone"`
	DailyWage         float64      `json:"daily_wage" db:"daily_wage"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`

	AssignedProjectTitle *string `json:"assigned_project_title,omitempty" db:"assigned_project_title"`
}

type CreateWorkerInput struct {
	Name      string     `json:"name" validate:"required"`
	Role      WorkerRole `json:"role" validate:"required"`
	Phone     string     `json:"phone"`
	DailyWage float64    `json:"daily_wage"`
}

// WorkerPatch is a sparse update; nil fields are left untouched.
// AssignedProjectID distinguishes absent from explicit null so a worker can be
// unassigned.
type WorkerPatch struct {
	Name              *string       `json:"name,omitempty"`
	Role              *WorkerRole   `json:"role,omitempty"`
	Status            *WorkerStatus `json:"status,omitempty"`
	AssignedProjectID NullableUUID  `json:"assigned_project_id"`
}
