package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janedoe-dev/portfolio-api/errs"
	"github.com/janedoe-dev/portfolio-api/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }

// messagesOf asserts err is a validation fault and returns its messages.
func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.True(t, errs.IsValidation(err))
	return apiErr.Messages
}

const sampleProfessionalID = "2b1a8a3e-6f4d-4f38-94a7-6f1a38f0c111"

func validProjectCreate() ProjectCreate {
	completed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return ProjectCreate{
		Title:          "Portfolio Site",
		Description:    "A personal portfolio built from scratch.",
		Technologies:   []string{"Go", "PostgreSQL"},
		ProjectURL:     "https://example.com/portfolio",
		GithubURL:      "https://github.com/janedoe/portfolio",
		CompletionDate: timePtr(completed),
		ProfessionalID: sampleProfessionalID,
	}
}

func TestProjectCreate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, validProjectCreate().Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		messages := messagesOf(t, ProjectCreate{}.Validate())
		assert.Contains(t, messages, "Title is required")
		assert.Contains(t, messages, "Description is required")
		assert.Contains(t, messages, "Completion date is required")
		assert.Contains(t, messages, "Professional id is required")
	})

	t.Run("title too short", func(t *testing.T) {
		p := validProjectCreate()
		p.Title = "Go"
		messages := messagesOf(t, p.Validate())
		assert.Contains(t, messages, "Title must be at least 3 characters long")
	})

	t.Run("description too short", func(t *testing.T) {
		p := validProjectCreate()
		p.Description = "too short"
		messages := messagesOf(t, p.Validate())
		assert.Contains(t, messages, "Description must be at least 10 characters long")
	})

	t.Run("bad urls rejected", func(t *testing.T) {
		p := validProjectCreate()
		p.ProjectURL = "not-a-url"
		p.GithubURL = "ftp://example.com/x"
		messages := messagesOf(t, p.Validate())
		assert.Equal(t, []string{"Please enter a valid URL", "Please enter a valid URL"}, messages)
	})

	t.Run("empty urls allowed", func(t *testing.T) {
		p := validProjectCreate()
		p.ProjectURL = ""
		p.GithubURL = ""
		assert.NoError(t, p.Validate())
	})

	t.Run("malformed professional id", func(t *testing.T) {
		p := validProjectCreate()
		p.ProfessionalID = "12345"
		messages := messagesOf(t, p.Validate())
		assert.Contains(t, messages, "Professional id must be a valid ID")
	})
}

func TestProjectUpdate(t *testing.T) {
	t.Run("empty payload passes", func(t *testing.T) {
		assert.NoError(t, ProjectUpdate{}.Validate())
	})

	t.Run("supplied fields still bounded", func(t *testing.T) {
		messages := messagesOf(t, ProjectUpdate{Title: strPtr("Go")}.Validate())
		assert.Contains(t, messages, "Title must be at least 3 characters long")
	})
}

func validSkillCreate() SkillCreate {
	return SkillCreate{
		Name:              "PostgreSQL",
		Category:          "database",
		Proficiency:       intPtr(8),
		YearsOfExperience: floatPtr(3.5),
		ProfessionalID:    sampleProfessionalID,
	}
}

func TestSkillCreate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, validSkillCreate().Validate())
	})

	t.Run("category outside the enum", func(t *testing.T) {
		s := validSkillCreate()
		s.Category = "cooking"
		messages := messagesOf(t, s.Validate())
		assert.Contains(t, messages, "Category must be one of: "+strings.Join(models.SkillCategories, ", "))
	})

	t.Run("proficiency above ten", func(t *testing.T) {
		s := validSkillCreate()
		s.Proficiency = intPtr(11)
		messages := messagesOf(t, s.Validate())
		assert.Contains(t, messages, "Proficiency cannot exceed 10")
	})

	t.Run("proficiency below one", func(t *testing.T) {
		s := validSkillCreate()
		s.Proficiency = intPtr(0)
		messages := messagesOf(t, s.Validate())
		assert.Contains(t, messages, "Proficiency must be at least 1")
	})

	t.Run("negative experience", func(t *testing.T) {
		s := validSkillCreate()
		s.YearsOfExperience = floatPtr(-1)
		messages := messagesOf(t, s.Validate())
		assert.Contains(t, messages, "Years of experience cannot be negative")
	})
}

func TestSkillUpdate(t *testing.T) {
	t.Run("empty payload passes", func(t *testing.T) {
		assert.NoError(t, SkillUpdate{}.Validate())
	})

	t.Run("explicit zero proficiency rejected", func(t *testing.T) {
		messages := messagesOf(t, SkillUpdate{Proficiency: intPtr(0)}.Validate())
		assert.Contains(t, messages, "Proficiency must be at least 1")
	})

	t.Run("explicit zero experience allowed", func(t *testing.T) {
		assert.NoError(t, SkillUpdate{YearsOfExperience: floatPtr(0)}.Validate())
	})
}

func validProfessionalCreate() ProfessionalCreate {
	return ProfessionalCreate{
		ProfessionalName:   "Jane Doe",
		Base64Image:        "data:image/png;base64,zzzz",
		PrimaryDescription: "Full-stack developer with a love for clean APIs.",
	}
}

func TestProfessionalCreate(t *testing.T) {
	t.Run("minimal valid payload passes", func(t *testing.T) {
		assert.NoError(t, validProfessionalCreate().Validate())
	})

	t.Run("missing profile fields", func(t *testing.T) {
		messages := messagesOf(t, ProfessionalCreate{}.Validate())
		assert.Contains(t, messages, "Professional name is required")
		assert.Contains(t, messages, "Base64 image is required")
		assert.Contains(t, messages, "Primary description is required")
	})

	t.Run("name too short", func(t *testing.T) {
		p := validProfessionalCreate()
		p.ProfessionalName = "J"
		messages := messagesOf(t, p.Validate())
		assert.Contains(t, messages, "Professional name must be at least 2 characters long")
	})

	t.Run("partial nested link rejected", func(t *testing.T) {
		p := validProfessionalCreate()
		p.NameLink = &NameLinkInput{FirstName: "Jane"}
		messages := messagesOf(t, p.Validate())
		assert.Contains(t, messages, "Name link url is required")
	})

	t.Run("complete nested link passes", func(t *testing.T) {
		p := validProfessionalCreate()
		p.LinkedInLink = &TextLinkInput{Text: "LinkedIn", Link: "https://linkedin.com/in/janedoe"}
		assert.NoError(t, p.Validate())
	})
}

func TestProfessionalUpdate(t *testing.T) {
	t.Run("empty payload passes", func(t *testing.T) {
		assert.NoError(t, ProfessionalUpdate{}.Validate())
	})

	t.Run("explicit empty image rejected", func(t *testing.T) {
		messages := messagesOf(t, ProfessionalUpdate{Base64Image: strPtr("")}.Validate())
		require.Len(t, messages, 1)
	})
}

func TestUserPayloads(t *testing.T) {
	t.Run("valid create passes", func(t *testing.T) {
		u := UserCreate{Email: "jane@example.com", Password: "secret1"}
		assert.NoError(t, u.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		u := UserCreate{Email: "not-an-email", Password: "secret1"}
		messages := messagesOf(t, u.Validate())
		assert.Contains(t, messages, "Email must be a valid email address")
	})

	t.Run("short password", func(t *testing.T) {
		u := UserCreate{Email: "jane@example.com", Password: "abc"}
		messages := messagesOf(t, u.Validate())
		assert.Contains(t, messages, "Password must be at least 6 characters long")
	})

	t.Run("unknown role", func(t *testing.T) {
		u := UserCreate{Email: "jane@example.com", Password: "secret1", Role: "owner"}
		messages := messagesOf(t, u.Validate())
		assert.Contains(t, messages, "Role must be one of: user, admin")
	})

	t.Run("create defaults role", func(t *testing.T) {
		u := UserCreate{Email: "jane@example.com", Password: "secret1"}
		m := u.ToModel()
		assert.Equal(t, "user", m.Role)
		assert.Empty(t, m.Password)
	})

	t.Run("credentials only check presence", func(t *testing.T) {
		assert.NoError(t, Credentials{Email: "jane@example.com", Password: "x"}.Validate())
		messages := messagesOf(t, Credentials{}.Validate())
		assert.Contains(t, messages, "Email is required")
		assert.Contains(t, messages, "Password is required")
	})
}
