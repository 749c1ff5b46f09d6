package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workshop-hub/data/repository"
	"workshop-hub/data/users"
	"workshop-hub/data/workshops"

	"github.com/stretchr/testify/assert"
)

func newTestApp(t *testing.T) *application {
	t.Helper()
	repo := repository.NewMemRepo()
	if err := repository.SeedDemoData(repo); err != nil {
		t.Fatalf("Could not seed repo: %s", err)
	}
	return &application{
		Repo:      repo,
		Workshops: workshops.NewService(repo),
		Users:     users.NewDirectory(repo),
	}
}

func doRequest(t *testing.T, app *application, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, req)
	return w
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response successJSON
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "data should be a wrapped object")
	return data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorJSON {
	t.Helper()
	var response errorJSON
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	return response
}

func TestRegisterEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "POST", "/api/register", `{"email":"new@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeSuccess(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "New User", user["name"])
	assert.Equal(t, "student", user["role"])
	assert.NotContains(t, user, "password")

	w = doRequest(t, app, "POST", "/api/register", `{"email":"new@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Exists", decodeError(t, w).Message)

	w = doRequest(t, app, "POST", "/api/register", `{"email":"not-an-email","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A valid email and a password are required", decodeError(t, w).Message)
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "POST", "/api/login", `{"email":"user@workshop.com","password":"user123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeSuccess(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Demo User", user["name"])

	w = doRequest(t, app, "POST", "/api/login", `{"email":"user@workshop.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeError(t, w).Message)

	w = doRequest(t, app, "POST", "/api/login", `{"email":"user@workshop.com","password":"user123","role":"admin"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Wrong account type selected", decodeError(t, w).Message)
}

func TestProfileEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "PUT", "/api/profile", `{"email":"user@workshop.com","name":"Renamed","phone":"999-999-9999"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeSuccess(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Renamed", user["name"])
	assert.Equal(t, "999-999-9999", user["phone"])

	w = doRequest(t, app, "PUT", "/api/profile", `{"email":"ghost@example.com","name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListWorkshopsEndpoint(t *testing.T) {
	app := newTestApp(t)

	t.Run("full catalog", func(t *testing.T) {
		w := doRequest(t, app, "GET", "/api/workshops", "")
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeSuccess(t, w)
		list := data["workshops"].([]interface{})
		assert.Len(t, list, 6)
	})

	t.Run("query filters pass through", func(t *testing.T) {
		w := doRequest(t, app, "GET", "/api/workshops?category=Design", "")
		data := decodeSuccess(t, w)
		list := data["workshops"].([]interface{})
		assert.Len(t, list, 1)

		w = doRequest(t, app, "GET", "/api/workshops?search=react&status=upcoming", "")
		data = decodeSuccess(t, w)
		list = data["workshops"].([]interface{})
		assert.Len(t, list, 1)
		first := list[0].(map[string]interface{})
		assert.Equal(t, "Advanced React Patterns", first["title"])
	})

	t.Run("no matches is an empty list, not an error", func(t *testing.T) {
		w := doRequest(t, app, "GET", "/api/workshops?category=Basket+Weaving", "")
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeSuccess(t, w)
		assert.Empty(t, data["workshops"])
	})
}

func TestGetWorkshopEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "GET", "/api/workshops/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	pathData := decodeSuccess(t, w)

	// the first-generation client asks with a query parameter instead
	w = doRequest(t, app, "GET", "/api/workshop?id=1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	queryData := decodeSuccess(t, w)
	assert.Equal(t, pathData, queryData)

	w = doRequest(t, app, "GET", "/api/workshops/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Workshop not found", decodeError(t, w).Message)

	// an unparseable id reads as a miss
	w = doRequest(t, app, "GET", "/api/workshop?id=abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateWorkshopEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "POST", "/api/workshops", `{"title":"Test","capacity":1}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeSuccess(t, w)
	workshop := data["workshop"].(map[string]interface{})
	assert.Equal(t, "Test", workshop["title"])
	assert.Equal(t, float64(7), workshop["id"])
	assert.Equal(t, float64(1), workshop["capacity"])
	assert.Equal(t, float64(0), workshop["enrolled"])
	assert.Equal(t, "upcoming", workshop["status"])

	t.Run("empty object lands on all defaults", func(t *testing.T) {
		w := doRequest(t, app, "POST", "/api/workshops", `{}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeSuccess(t, w)
		workshop := data["workshop"].(map[string]interface{})
		assert.Equal(t, "Untitled Workshop", workshop["title"])
		assert.Equal(t, float64(50), workshop["capacity"])
	})

	t.Run("string capacity is coerced", func(t *testing.T) {
		w := doRequest(t, app, "POST", "/api/workshops", `{"title":"Legacy Form","seats":"25"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeSuccess(t, w)
		workshop := data["workshop"].(map[string]interface{})
		assert.Equal(t, float64(25), workshop["capacity"])
	})

	t.Run("malformed body fails", func(t *testing.T) {
		w := doRequest(t, app, "POST", "/api/workshops", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateWorkshopEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "PUT", "/api/workshops/1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeSuccess(t, w)
	workshop := data["workshop"].(map[string]interface{})
	assert.Equal(t, "completed", workshop["status"])

	w = doRequest(t, app, "PUT", "/api/workshops/999", `{"title":"Nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWorkshopEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "DELETE", "/api/workshops/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeSuccess(t, w)
	removed := data["removed"].(map[string]interface{})
	assert.Equal(t, "UI/UX Design Fundamentals", removed["title"])

	w = doRequest(t, app, "GET", "/api/workshops/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollEndpoint(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedCode    int
		expectedMessage string
	}{
		{
			name:         "Numeric id",
			body:         `{"id":1,"email":"user@workshop.com"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "String id",
			body:         `{"id":"1","email":"user@workshop.com"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:            "Unknown workshop",
			body:            `{"id":999,"email":"user@workshop.com"}`,
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Workshop not found",
		},
		{
			name:            "Garbage id",
			body:            `{"id":"abc","email":"user@workshop.com"}`,
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Workshop not found",
		},
		{
			name:            "Unknown user",
			body:            `{"id":1,"email":"ghost@example.com"}`,
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			name:            "Completed workshop",
			body:            `{"id":4,"email":"user@workshop.com"}`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Workshop already completed",
		},
		{
			name:            "Full workshop",
			body:            `{"id":3,"email":"user@workshop.com"}`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Workshop full",
		},
		{
			name:            "Roster email without an account",
			body:            `{"id":1,"email":"student1@example.com"}`,
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			w := doRequest(t, app, "POST", "/api/enroll", tt.body)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
		})
	}

	t.Run("second enrollment conflicts", func(t *testing.T) {
		app := newTestApp(t)
		body := `{"id":1,"email":"user@workshop.com"}`

		w := doRequest(t, app, "POST", "/api/enroll", body)
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeSuccess(t, w)
		workshop := data["workshop"].(map[string]interface{})
		assert.Equal(t, float64(36), workshop["enrolled"])

		w = doRequest(t, app, "POST", "/api/enroll", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Already enrolled", decodeError(t, w).Message)
	})
}

func TestReviewsEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "POST", "/api/workshops/1/reviews", `{"author":"Ana","rating":5,"text":"great"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeSuccess(t, w)
	review := data["review"].(map[string]interface{})
	assert.Equal(t, "Ana", review["author"])
	assert.Equal(t, float64(5), review["rating"])

	w = doRequest(t, app, "POST", "/api/workshops/1/reviews", `{"rating":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "An author and a rating from 1 to 5 are required", decodeError(t, w).Message)

	w = doRequest(t, app, "POST", "/api/workshops/999/reviews", `{"author":"Ana","rating":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, app, "GET", "/api/workshops/1/reviews", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeSuccess(t, w)
	reviews := data["reviews"].([]interface{})
	assert.Len(t, reviews, 1)

	// unknown workshop lists empty rather than erroring
	w = doRequest(t, app, "GET", "/api/workshops/999/reviews", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeSuccess(t, w)
	assert.Empty(t, data["reviews"])
}

func TestRegistrantsEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "GET", "/api/workshops/1/registrants", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeSuccess(t, w)
	registrants := data["registrants"].([]interface{})
	assert.Len(t, registrants, 35)
	first := registrants[0].(map[string]interface{})
	assert.Equal(t, "Student 1", first["name"])

	w = doRequest(t, app, "GET", "/api/workshops/1/registrants/csv", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	lines := strings.Split(w.Body.String(), "\n")
	assert.Len(t, lines, 36)
	assert.Equal(t, "Name,Email,Phone,Technology", lines[0])
	assert.Equal(t, `"Student 1","student1@example.com","100-200-0000","Web Development"`, lines[1])

	w = doRequest(t, app, "GET", "/api/workshops/999/registrants", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaterialsEndpoint(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name         string
		target       string
		expectedCode int
	}{
		{
			name:         "Admin on completed workshop",
			target:       "/api/workshops/4/materials?email=admin@hub.com",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Admin on upcoming workshop",
			target:       "/api/workshops/1/materials?email=admin@hub.com",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Student before completion",
			target:       "/api/workshops/1/materials?email=user@workshop.com",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Student not on the roster",
			target:       "/api/workshops/4/materials?email=user@workshop.com",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Unknown viewer",
			target:       "/api/workshops/4/materials?email=ghost@example.com",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, "GET", tt.target, "")
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	t.Run("materials payload", func(t *testing.T) {
		w := doRequest(t, app, "GET", "/api/workshops/4/materials?email=admin@hub.com", "")
		data := decodeSuccess(t, w)
		materials := data["materials"].([]interface{})
		assert.Len(t, materials, 2)
		first := materials[0].(map[string]interface{})
		assert.Equal(t, "cloud-guide", first["id"])
	})
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)

	w := doRequest(t, app, "OPTIONS", "/api/workshops", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
