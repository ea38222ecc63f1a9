package models

import (
	"time"

	"github.com/google/uuid"
)

// NameLink is an embedded label+URL pair. A nil pointer on the parent means
// the whole object is absent; when present, both sub-fields are required.
type NameLink struct {
	FirstName string `json:"firstName"`
	URL       string `json:"url"`
}

// TextLink is an embedded link object for external profiles.
type TextLink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Professional is the singleton-per-install portfolio profile.
type Professional struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	ProfessionalName   string    `json:"professionalName" gorm:"type:text;not null"`
	Base64Image        string    `json:"base64Image" gorm:"type:text;not null"`
	NameLink           *NameLink `json:"nameLink,omitempty" gorm:"serializer:json"`
	PrimaryDescription string    `json:"primaryDescription" gorm:"type:text;not null"`
	WorkDescription1   string    `json:"workDescription1" gorm:"type:text"`
	WorkDescription2   string    `json:"workDescription2" gorm:"type:text"`
	LinkTitleText      string    `json:"linkTitleText" gorm:"type:text"`
	LinkedInLink       *TextLink `json:"linkedInLink,omitempty" gorm:"serializer:json"`
	GithubLink         *TextLink `json:"githubLink,omitempty" gorm:"serializer:json"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
