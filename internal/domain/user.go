package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID  `json:"id" db:"user_id"`
	Name              string     `json:"name" db:"name"`
	Email             string     `json:"email" db:"email"`
	PasswordHash      string     `json:"-" db:"password_hash"`
	Role              string     `json:"role" db:"role"`
	Location          *string    `json:"location,omitempty" db:"location"`
	CompanyName       *string    `json:"company_name,omitempty" db:"company_name"`
	YearsOfExperience int        `json:"years_of_experience" db:"years_of_experience"`
	Specialization    *string    `json:"specialization,omitempty" db:"specialization"`
	CompanyWebsite    *string    `json:"company_website,omitempty" db:"company_website"`
	Rating            float64    `json:"rating" db:"rating"`
	CompletedProjects int        `json:"completed_projects" db:"completed_projects"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt         *time.Time `json:"-" db:"deleted_at"`
}

type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleContractor UserRole = "contractor"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleContractor:
		return true
	default:
		return false
	}
}

func (u *User) HasRole(requiredRole string) bool {
	return u.Role == requiredRole
}

// DisplayName is the name shown to other users. Contractors are identified by
// their company when one is set.
func (u *User) DisplayName() string {
	if u.CompanyName != nil && *u.CompanyName != "" {
		return *u.CompanyName
	}
	return u.Name
}

type CreateUserInput struct {
	Name              string  `json:"name" validate:"required,min=2"`
	Email             string  `json:"email" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=8"`
	Role              string  `json:"role" validate:"required,oneof=customer contractor"`
	Location          *string `json:"location,omitempty"`
	CompanyName       *string `json:"company_name,omitempty"`
	YearsOfExperience *int    `json:"years_of_experience,omitempty"`
	Specialization    *string `json:"specialization,omitempty"`
	CompanyWebsite    *string `json:"company_website,omitempty"`
}

type UpdateProfileInput struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Location          *string `json:"location,omitempty"`
	CompanyName       *string `json:"company_name,omitempty"`
	CompanyWebsite    *string `json:"company_website,omitempty"`
	Specialization    *string `json:"specialization,omitempty"`
	YearsOfExperience *int    `json:"years_of_experience,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// CustomerSummary is the customer projection embedded in project listings.
type CustomerSummary struct {
	ID       uuid.UUID `json:"id" db:"user_id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	Location *string   `json:"location,omitempty" db:"location"`
}

// ContractorSummary is the contractor projection embedded in project listings
// and bids.
type ContractorSummary struct {
	ID                uuid.UUID `json:"id" db:"user_id"`
	Name              string    `json:"name" db:"name"`
	CompanyName       *string   `json:"company_name,omitempty" db:"company_name"`
	Rating            float64   `json:"rating" db:"rating"`
	CompletedProjects int       `json:"completed_projects" db:"completed_projects"`
}
