package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string                      `json:"title" gorm:"type:text;not null"`
	Description    string                      `json:"description" gorm:"type:text;not null"`
	Technologies   datatypes.JSONSlice[string] `json:"technologies"`
	ProjectURL     string                      `json:"projectUrl,omitempty" gorm:"type:text"`
	GithubURL      string                      `json:"githubUrl,omitempty" gorm:"type:text"`
	Featured       bool                        `json:"featured" gorm:"not null;default:false"`
	CompletionDate time.Time                   `json:"completionDate" gorm:"not null"`
	ProfessionalID uuid.UUID                   `json:"professionalId" gorm:"type:uuid;not null;index:idx_project_professional"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}
