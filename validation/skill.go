package validation

import (
	"github.com/google/uuid"

	"github.com/janedoe-dev/portfolio-api/models"
)

type SkillCreate struct {
	Name              string   `json:"name" validate:"required,min=2,max=50"`
	Category          string   `json:"category" validate:"required,oneof=frontend backend database devops tools soft-skills"`
	Proficiency       *int     `json:"proficiency" validate:"required,min=1,max=10"`
	YearsOfExperience *float64 `json:"yearsOfExperience" validate:"required,gte=0"`
	ProfessionalID    string   `json:"professionalId" validate:"required,uuid"`
}

func (s SkillCreate) Validate() error {
	return Struct(s)
}

func (s SkillCreate) ToModel() models.Skill {
	return models.Skill{
		Name:              s.Name,
		Category:          s.Category,
		Proficiency:       *s.Proficiency,
		YearsOfExperience: *s.YearsOfExperience,
		ProfessionalID:    uuid.MustParse(s.ProfessionalID),
	}
}

type SkillUpdate struct {
	Name              *string  `json:"name" validate:"omitnil,min=2,max=50"`
	Category          *string  `json:"category" validate:"omitnil,oneof=frontend backend database devops tools soft-skills"`
	Proficiency       *int     `json:"proficiency" validate:"omitnil,min=1,max=10"`
	YearsOfExperience *float64 `json:"yearsOfExperience" validate:"omitnil,gte=0"`
	ProfessionalID    *string  `json:"professionalId" validate:"omitnil,uuid"`
}

func (s SkillUpdate) Validate() error {
	return Struct(s)
}

func (s SkillUpdate) Apply(m *models.Skill) {
	if s.Name != nil {
		m.Name = *s.Name
	}
	if s.Category != nil {
		m.Category = *s.Category
	}
	if s.Proficiency != nil {
		m.Proficiency = *s.Proficiency
	}
	if s.YearsOfExperience != nil {
		m.YearsOfExperience = *s.YearsOfExperience
	}
	if s.ProfessionalID != nil {
		m.ProfessionalID = uuid.MustParse(*s.ProfessionalID)
	}
}
