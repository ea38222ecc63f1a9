package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janedoe-dev/portfolio-api/models"
)

type ProfessionalRepo struct {
	db *gorm.DB
}

func NewProfessionalRepo(db *gorm.DB) *ProfessionalRepo {
	return &ProfessionalRepo{db}
}

// FindAll returns all professionals from the database
func (r *ProfessionalRepo) FindAll() ([]*models.Professional, error) {
	var professionals []*models.Professional
	err := r.db.Find(&professionals).Error
	return professionals, err
}

// FindByID returns a professional by its ID, or nil when absent
func (r *ProfessionalRepo) FindByID(id uuid.UUID) (*models.Professional, error) {
	var professional models.Professional
	err := r.db.First(&professional, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

// Count returns the number of stored professionals
func (r *ProfessionalRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Professional{}).Count(&count).Error
	return count, err
}

// Add inserts a new professional into the database
func (r *ProfessionalRepo) Add(professional *models.Professional) error {
	if professional.ID == uuid.Nil {
		professional.ID = uuid.New()
	}
	return r.db.Create(professional).Error
}

// Update persists changes to an existing professional
func (r *ProfessionalRepo) Update(professional *models.Professional) error {
	return r.db.Save(professional).Error
}

// Delete removes a professional from the database by id
func (r *ProfessionalRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Professional{}, "id = ?", id).Error
}
