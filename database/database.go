package database

import (
	"gorm.io/gorm"

	"github.com/janedoe-dev/portfolio-api/models"
)

// Database bundles one repository per entity over a shared GORM instance.
// Handlers receive it at construction time; nothing reaches the connection
// through package-level state.
type Database struct {
	db               *gorm.DB
	professionalRepo *ProfessionalRepo
	projectRepo      *ProjectRepo
	skillRepo        *SkillRepo
	userRepo         *UserRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		professionalRepo: NewProfessionalRepo(db),
		projectRepo:      NewProjectRepo(db),
		skillRepo:        NewSkillRepo(db),
		userRepo:         NewUserRepo(db),
	}
}

// Migrate creates or updates the schema for every entity.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Professional{},
		&models.Project{},
		&models.Skill{},
		&models.User{},
	)
}

// Accessor methods for each repository

func (d Database) ProfessionalRepo() *ProfessionalRepo {
	return d.professionalRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
