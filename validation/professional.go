package validation

import "github.com/janedoe-dev/portfolio-api/models"

// NameLinkInput is validated as a unit: omitting the parent field is fine,
// but a present object must carry every sub-field.
type NameLinkInput struct {
	FirstName string `json:"firstName" validate:"required"`
	URL       string `json:"url" validate:"required"`
}

type TextLinkInput struct {
	Text string `json:"text" validate:"required"`
	Link string `json:"link" validate:"required"`
}

// ProfessionalCreate is the create-mode payload: the three profile
// invariant fields are mandatory, everything else optional.
type ProfessionalCreate struct {
	ProfessionalName   string         `json:"professionalName" validate:"required,min=2"`
	Base64Image        string         `json:"base64Image" validate:"required"`
	NameLink           *NameLinkInput `json:"nameLink"`
	PrimaryDescription string         `json:"primaryDescription" validate:"required,min=10"`
	WorkDescription1   string         `json:"workDescription1"`
	WorkDescription2   string         `json:"workDescription2"`
	LinkTitleText      string         `json:"linkTitleText"`
	LinkedInLink       *TextLinkInput `json:"linkedInLink"`
	GithubLink         *TextLinkInput `json:"githubLink"`
}

func (p ProfessionalCreate) Validate() error {
	return Struct(p)
}

func (p ProfessionalCreate) ToModel() models.Professional {
	return models.Professional{
		ProfessionalName:   p.ProfessionalName,
		Base64Image:        p.Base64Image,
		NameLink:           p.NameLink.toModel(),
		PrimaryDescription: p.PrimaryDescription,
		WorkDescription1:   p.WorkDescription1,
		WorkDescription2:   p.WorkDescription2,
		LinkTitleText:      p.LinkTitleText,
		LinkedInLink:       p.LinkedInLink.toModel(),
		GithubLink:         p.GithubLink.toModel(),
	}
}

// ProfessionalUpdate is the partial-update payload: only supplied fields are
// checked, against the same bounds as create.
type ProfessionalUpdate struct {
	ProfessionalName   *string        `json:"professionalName" validate:"omitnil,min=2"`
	Base64Image        *string        `json:"base64Image" validate:"omitnil,min=1"`
	NameLink           *NameLinkInput `json:"nameLink"`
	PrimaryDescription *string        `json:"primaryDescription" validate:"omitnil,min=10"`
	WorkDescription1   *string        `json:"workDescription1"`
	WorkDescription2   *string        `json:"workDescription2"`
	LinkTitleText      *string        `json:"linkTitleText"`
	LinkedInLink       *TextLinkInput `json:"linkedInLink"`
	GithubLink         *TextLinkInput `json:"githubLink"`
}

func (p ProfessionalUpdate) Validate() error {
	return Struct(p)
}

// Apply copies the supplied fields onto an existing record.
func (p ProfessionalUpdate) Apply(m *models.Professional) {
	if p.ProfessionalName != nil {
		m.ProfessionalName = *p.ProfessionalName
	}
	if p.Base64Image != nil {
		m.Base64Image = *p.Base64Image
	}
	if p.NameLink != nil {
		m.NameLink = p.NameLink.toModel()
	}
	if p.PrimaryDescription != nil {
		m.PrimaryDescription = *p.PrimaryDescription
	}
	if p.WorkDescription1 != nil {
		m.WorkDescription1 = *p.WorkDescription1
	}
	if p.WorkDescription2 != nil {
		m.WorkDescription2 = *p.WorkDescription2
	}
	if p.LinkTitleText != nil {
		m.LinkTitleText = *p.LinkTitleText
	}
	if p.LinkedInLink != nil {
		m.LinkedInLink = p.LinkedInLink.toModel()
	}
	if p.GithubLink != nil {
		m.GithubLink = p.GithubLink.toModel()
	}
}

func (n *NameLinkInput) toModel() *models.NameLink {
	if n == nil {
		return nil
	}
	return &models.NameLink{FirstName: n.FirstName, URL: n.URL}
}

func (t *TextLinkInput) toModel() *models.TextLink {
	if t == nil {
		return nil
	}
	return &models.TextLink{Text: t.Text, Link: t.Link}
}
