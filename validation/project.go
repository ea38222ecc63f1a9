package validation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/janedoe-dev/portfolio-api/models"
)

type ProjectCreate struct {
	Title          string     `json:"title" validate:"required,min=3,max=100"`
	Description    string     `json:"description" validate:"required,min=10"`
	Technologies   []string   `json:"technologies"`
	ProjectURL     string     `json:"projectUrl" validate:"omitempty,httpurl"`
	GithubURL      string     `json:"githubUrl" validate:"omitempty,httpurl"`
	Featured       bool       `json:"featured"`
	CompletionDate *time.Time `json:"completionDate" validate:"required"`
	ProfessionalID string     `json:"professionalId" validate:"required,uuid"`
}

func (p ProjectCreate) Validate() error {
	return Struct(p)
}

func (p ProjectCreate) ToModel() models.Project {
	return models.Project{
		Title:          p.Title,
		Description:    p.Description,
		Technologies:   datatypes.NewJSONSlice(p.Technologies),
		ProjectURL:     p.ProjectURL,
		GithubURL:      p.GithubURL,
		Featured:       p.Featured,
		CompletionDate: *p.CompletionDate,
		ProfessionalID: uuid.MustParse(p.ProfessionalID),
	}
}

type ProjectUpdate struct {
	Title          *string    `json:"title" validate:"omitnil,min=3,max=100"`
	Description    *string    `json:"description" validate:"omitnil,min=10"`
	Technologies   *[]string  `json:"technologies"`
	ProjectURL     *string    `json:"projectUrl" validate:"omitnil,httpurl"`
	GithubURL      *string    `json:"githubUrl" validate:"omitnil,httpurl"`
	Featured       *bool      `json:"featured"`
	CompletionDate *time.Time `json:"completionDate"`
	ProfessionalID *string    `json:"professionalId" validate:"omitnil,uuid"`
}

func (p ProjectUpdate) Validate() error {
	return Struct(p)
}

func (p ProjectUpdate) Apply(m *models.Project) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Technologies != nil {
		m.Technologies = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.ProjectURL != nil {
		m.ProjectURL = *p.ProjectURL
	}
	if p.GithubURL != nil {
		m.GithubURL = *p.GithubURL
	}
	if p.Featured != nil {
		m.Featured = *p.Featured
	}
	if p.CompletionDate != nil {
		m.CompletionDate = *p.CompletionDate
	}
	if p.ProfessionalID != nil {
		m.ProfessionalID = uuid.MustParse(*p.ProfessionalID)
	}
}
