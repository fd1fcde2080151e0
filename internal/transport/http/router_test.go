package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"eduverse/internal/catalog"
	"eduverse/internal/guard"
	"eduverse/internal/infrastructure/provider"
	"eduverse/internal/infrastructure/security"
	"eduverse/internal/infrastructure/storage"
	"eduverse/internal/pkg/logger"
	"eduverse/internal/session"
	"eduverse/internal/transport/http/handlers"
	"eduverse/internal/transport/http/middleware"
)

type testEnv struct {
	router   *gin.Engine
	sessions *session.Store
}

// newTestEnv wires the full stack over in-memory snapshots. Either store can
// be left unrestored to exercise its loading state.
func newTestEnv(t *testing.T, restoreSessions, restoreCatalog bool) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	idp := provider.NewLocal(security.NewPasswordHasher())
	sessions := session.NewStore(storage.NewMemoryStore(), idp, 5*time.Second, log)
	courses := catalog.NewStore(storage.NewMemoryStore(), log)
	if restoreSessions {
		sessions.Restore(context.Background())
	}
	if restoreCatalog {
		courses.Restore(context.Background())
	}

	g := guard.New(sessions)
	tokens := security.NewTokenManager("test-access", "test-refresh")

	router := NewRouter(
		handlers.NewAuthHandler(sessions, tokens, log),
		handlers.NewUserHandler(sessions),
		handlers.NewCourseHandler(courses, sessions),
		nil,
		g,
		courses,
		tokens,
		middleware.NewRateLimiter(nil),
		"",
	)
	return testEnv{router: router, sessions: sessions}
}

func (e testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e testEnv) signIn(t *testing.T, email, password string) {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, w.Code, w.Body)
	}
}

func TestGuardedRouteWhileLoading(t *testing.T) {
	env := newTestEnv(t, false, false)

	w := env.do(http.MethodGet, "/api/v1/courses", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "loading" {
		t.Fatalf("body = %s", w.Body)
	}
}

func TestCourseRoutesHeldWhileCatalogRestoring(t *testing.T) {
	env := newTestEnv(t, true, false)
	env.signIn(t, "student@eduverse.com", "student123")

	w := env.do(http.MethodGet, "/api/v1/courses", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "loading" {
		t.Fatalf("body = %s", w.Body)
	}

	w = env.do(http.MethodPost, "/api/v1/courses/1/enroll", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("mutation status = %d, want 503", w.Code)
	}
}

func TestGuardedRouteUnauthenticated(t *testing.T) {
	env := newTestEnv(t, true, true)

	w := env.do(http.MethodGet, "/api/v1/courses", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["redirect"] != guard.LoginRoute {
		t.Fatalf("body = %s", w.Body)
	}
}

func TestGuardedRouteWrongRoleRedirectsHome(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "student@eduverse.com", "student123")

	w := env.do(http.MethodGet, "/api/v1/admin/users", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["redirect"] != guard.StudentHome {
		t.Fatalf("body = %s", w.Body)
	}
}

func TestLoginFailure(t *testing.T) {
	env := newTestEnv(t, true, true)

	w := env.do(http.MethodPost, "/api/v1/auth/login",
		`{"email":"student@eduverse.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	env := newTestEnv(t, true, true)

	w := env.do(http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@eduverse.com","password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.AccessToken == "" {
		t.Fatal("no access token issued")
	}
	if body.User.ID != "1" || body.User.Role != "admin" {
		t.Fatalf("user = %+v", body.User)
	}

	var refreshCookie bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "refresh_token" && c.Value != "" {
			refreshCookie = true
		}
	}
	if !refreshCookie {
		t.Fatal("refresh cookie not set")
	}
}

func TestCourseListForSignedInStudent(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "student@eduverse.com", "student123")

	w := env.do(http.MethodGet, "/api/v1/courses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var courses []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &courses); err != nil {
		t.Fatal(err)
	}
	if len(courses) != 3 {
		t.Fatalf("courses = %d, want 3", len(courses))
	}
}

func TestStudentCannotCreateCourse(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "student@eduverse.com", "student123")

	w := env.do(http.MethodPost, "/api/v1/courses",
		`{"title":"Hacking 101","instructor":"Me"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestEnrollAndStudentCourses(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "student@eduverse.com", "student123")

	w := env.do(http.MethodPost, "/api/v1/courses/1/enroll", "")
	if w.Code != http.StatusOK {
		t.Fatalf("enroll status = %d, body %s", w.Code, w.Body)
	}

	w = env.do(http.MethodGet, "/api/v1/student/courses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("student courses status = %d, body %s", w.Code, w.Body)
	}
	var courses []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &courses); err != nil {
		t.Fatal(err)
	}
	if len(courses) != 1 {
		t.Fatalf("enrolled courses = %d, want 1", len(courses))
	}
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "admin@eduverse.com", "admin123")

	w := env.do(http.MethodGet, "/api/v1/admin/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var stats struct {
		TotalStudents int    `json:"totalStudents"`
		TotalTeachers int    `json:"totalTeachers"`
		TotalCourses  int    `json:"totalCourses"`
		TotalRevenue  string `json:"totalRevenue"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalStudents != 1 || stats.TotalTeachers != 5 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.TotalRevenue != "$1,400" {
		t.Fatalf("revenue = %q", stats.TotalRevenue)
	}
}

func TestAddUserValidation(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "admin@eduverse.com", "admin123")

	w := env.do(http.MethodPost, "/api/v1/admin/users",
		`{"firstName":"Ann","lastName":"Lee","email":"not-an-email","password":"pw123456","role":"student"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad email status = %d, want 400", w.Code)
	}

	w = env.do(http.MethodPost, "/api/v1/admin/users",
		`{"firstName":"Ann","lastName":"Lee","email":"ann@example.com","password":"pw123456","role":"visitor"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad role status = %d, want 400", w.Code)
	}

	w = env.do(http.MethodPost, "/api/v1/admin/users",
		`{"firstName":"Ann","lastName":"Lee","email":"ann@example.com","password":"pw123456","role":"student","department":"Physics"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["id"] == "" {
		t.Fatal("no id returned")
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.signIn(t, "admin@eduverse.com", "admin123")

	w := env.do(http.MethodPost, "/api/v1/auth/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	w = env.do(http.MethodGet, "/api/v1/admin/users", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status after logout = %d, want 401", w.Code)
	}
}
