package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategories is the fixed set of valid Skill.Category values.
var SkillCategories = []string{"frontend", "backend", "database", "devops", "tools", "soft-skills"}

// Skill represents a named skill with a proficiency rating, owned by a
// Professional. Names are unique across all skills.
type Skill struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name              string    `json:"name" gorm:"type:text;not null;uniqueIndex:idx_skill_name"`
	Category          string    `json:"category" gorm:"type:text;not null;index:idx_skill_professional_category"`
	Proficiency       int       `json:"proficiency" gorm:"not null"`
	YearsOfExperience float64   `json:"yearsOfExperience" gorm:"not null"`
	ProfessionalID    uuid.UUID `json:"professionalId" gorm:"type:uuid;not null;index:idx_skill_professional_category"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
