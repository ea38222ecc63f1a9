package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/janedoe-dev/portfolio-api/database"
)

// newTestRouter builds the full route table on top of an isolated in-memory
// store, so every test exercises real middleware, handlers and persistence.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := database.New(db)
	require.NoError(t, store.Migrate())

	return newRouter(store)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createProfessional(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/professional", map[string]any{
		"professionalName":   "Jane Doe",
		"base64Image":        "data:image/png;base64,zzzz",
		"primaryDescription": "Full-stack developer with a love for clean APIs.",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeObject(t, rec)["id"].(string)
}

func registerUser(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeObject(t, rec)["token"].(string)
}

func TestIndexAndDocs(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Professional Portfolio API is running!", decodeObject(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/api-docs", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API Documentation", decodeObject(t, rec)["message"])
}

func TestProfessionalListSeedsWhenEmpty(t *testing.T) {
	router := newTestRouter(t)

	// First listing on an empty store seeds the sample and answers 201.
	rec := doJSON(t, router, http.MethodGet, "/professional", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	seeded := decodeList(t, rec)
	require.Len(t, seeded, 1)
	assert.Equal(t, "Jane Doe", seeded[0]["professionalName"])

	// Second listing finds the seeded record and answers 200.
	rec = doJSON(t, router, http.MethodGet, "/professional", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)
}

func TestProfessionalCRUD(t *testing.T) {
	router := newTestRouter(t)
	id := createProfessional(t, router)

	t.Run("get by id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/professional/"+id, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Jane Doe", decodeObject(t, rec)["professionalName"])
	})

	t.Run("partial update", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/professional/"+id, map[string]any{
			"professionalName": "Jane A. Doe",
		}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, "Jane A. Doe", body["professionalName"])
		assert.Equal(t, "Full-stack developer with a love for clean APIs.", body["primaryDescription"])
	})

	t.Run("invalid id is 400 not 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/professional/not-a-uuid", nil, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ID", decodeObject(t, rec)["error"])
	})

	t.Run("absent id is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/professional/2b1a8a3e-6f4d-4f38-94a7-6f1a38f0c111", nil, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeObject(t, rec)
		assert.Equal(t, "Not found", body["error"])
		assert.Equal(t, "Professional not found", body["message"])
	})

	t.Run("create rejects incomplete payload", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/professional", map[string]any{}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeObject(t, rec)
		assert.Equal(t, "Validation Error", body["error"])
		assert.Contains(t, body["messages"], "Professional name is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/professional", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "malformed request body", decodeObject(t, rec)["error"])
	})

	t.Run("delete returns the removed snapshot", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/professional/"+id, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeObject(t, rec)
		assert.Equal(t, "Professional deleted successfully", body["message"])
		assert.NotNil(t, body["deleted"])

		rec = doJSON(t, router, http.MethodGet, "/professional/"+id, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProjectEndpoints(t *testing.T) {
	router := newTestRouter(t)
	professionalID := createProfessional(t, router)
	token := registerUser(t, router, "jane@example.com")

	projectBody := map[string]any{
		"title":          "Portfolio Site",
		"description":    "A personal portfolio built from scratch.",
		"technologies":   []string{"Go", "PostgreSQL"},
		"projectUrl":     "https://example.com/portfolio",
		"completionDate": "2024-03-01T00:00:00Z",
		"professionalId": professionalID,
	}

	t.Run("mutations require a bearer token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/projects", projectBody, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication required", decodeObject(t, rec)["message"])

		rec = doJSON(t, router, http.MethodPost, "/projects", projectBody, "garbage-token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", decodeObject(t, rec)["message"])
	})

	var projectID string

	t.Run("create resolves owner name", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/projects", projectBody, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, "Portfolio Site", body["title"])
		assert.Equal(t, "Jane Doe", body["professionalName"])
		projectID = body["id"].(string)
	})

	t.Run("unknown professional reference is a validation fault", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range projectBody {
			bad[k] = v
		}
		bad["professionalId"] = "2b1a8a3e-6f4d-4f38-94a7-6f1a38f0c111"

		rec := doJSON(t, router, http.MethodPost, "/projects", bad, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeObject(t, rec)
		assert.Equal(t, "Validation Error", body["error"])
		assert.Contains(t, body["messages"], "Professional ID does not exist")
	})

	t.Run("reads are public", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/projects", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decodeList(t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, "Jane Doe", list[0]["professionalName"])

		rec = doJSON(t, router, http.MethodGet, "/projects/"+projectID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("partial update keeps unsupplied fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/projects/"+projectID, map[string]any{
			"featured": true,
		}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, true, body["featured"])
		assert.Equal(t, "Portfolio Site", body["title"])
	})

	t.Run("short title on update rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/projects/"+projectID, map[string]any{
			"title": "Go",
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeObject(t, rec)["messages"], "Title must be at least 3 characters long")
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/projects/"+projectID, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Project deleted successfully", decodeObject(t, rec)["message"])

		rec = doJSON(t, router, http.MethodGet, "/projects/"+projectID, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSkillEndpoints(t *testing.T) {
	router := newTestRouter(t)
	professionalID := createProfessional(t, router)
	token := registerUser(t, router, "jane@example.com")

	skillBody := map[string]any{
		"name":              "PostgreSQL",
		"category":          "database",
		"proficiency":       8,
		"yearsOfExperience": 3.5,
		"professionalId":    professionalID,
	}

	var skillID string

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/skills", skillBody, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, "PostgreSQL", body["name"])
		assert.Equal(t, "Jane Doe", body["professionalName"])
		skillID = body["id"].(string)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/skills", skillBody, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeObject(t, rec)
		assert.Equal(t, "Duplicate skill", body["error"])
		assert.Equal(t, "A skill with this name already exists", body["message"])
	})

	t.Run("proficiency above bound rejected", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range skillBody {
			bad[k] = v
		}
		bad["name"] = "Redis"
		bad["proficiency"] = 11

		rec := doJSON(t, router, http.MethodPost, "/skills", bad, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeObject(t, rec)["messages"], "Proficiency cannot exceed 10")
	})

	t.Run("explicit zero proficiency on update rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/skills/"+skillID, map[string]any{
			"proficiency": 0,
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeObject(t, rec)["messages"], "Proficiency must be at least 1")
	})

	t.Run("update keeps name when unchanged", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/skills/"+skillID, map[string]any{
			"proficiency": 9,
		}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, "PostgreSQL", body["name"])
		assert.Equal(t, float64(9), body["proficiency"])
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/skills/"+skillID, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Skill deleted successfully", decodeObject(t, rec)["message"])
	})
}

func TestUserEndpoints(t *testing.T) {
	router := newTestRouter(t)

	var userID string

	t.Run("create never echoes the password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/users", map[string]any{
			"email":    "jane@example.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, "jane@example.com", body["email"])
		assert.Equal(t, "user", body["role"])
		assert.NotContains(t, body, "password")
		userID = body["id"].(string)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/users", map[string]any{
			"email":    "jane@example.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeObject(t, rec)
		assert.Equal(t, "Duplicate email", body["error"])
		assert.Equal(t, "User with this email already exists", body["message"])
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/users", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decodeList(t, rec)
		require.Len(t, list, 1)
		assert.NotContains(t, list[0], "password")
	})

	t.Run("update role", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/users/"+userID, map[string]any{
			"role": "admin",
		}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "admin", decodeObject(t, rec)["role"])
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/users/"+userID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User deleted successfully", decodeObject(t, rec)["message"])
	})
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	t.Run("register issues a token and hides the password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]any{
			"email":    "jane@example.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "jane@example.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]any{
			"email":    "jane@example.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Duplicate email", decodeObject(t, rec)["error"])
	})

	t.Run("login succeeds with the right credentials", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/auth/login", map[string]any{
			"email":    "jane@example.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotEmpty(t, decodeObject(t, rec)["token"])
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		unknown := doJSON(t, router, http.MethodPost, "/auth/login", map[string]any{
			"email":    "nobody@example.com",
			"password": "secret1",
		}, "")
		wrong := doJSON(t, router, http.MethodPost, "/auth/login", map[string]any{
			"email":    "jane@example.com",
			"password": "wrong-password",
		}, "")

		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	})

	t.Run("me returns the authenticated caller", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/auth/login", map[string]any{
			"email":    "jane@example.com",
			"password": "secret1",
		}, "")
		require.Equal(t, http.StatusOK, rec.Code)
		token := decodeObject(t, rec)["token"].(string)

		rec = doJSON(t, router, http.MethodGet, "/auth/me", nil, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeObject(t, rec)
		assert.Equal(t, "jane@example.com", body["email"])
		assert.NotContains(t, body, "password")
	})

	t.Run("me without a token is rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
