package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/internal/repository"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	"github.com/seniorconnect/seniorconnect-api/internal/storage"
	"github.com/seniorconnect/seniorconnect-api/pkg/jwt"
)

// newTestRouter wires the full API surface over an in-memory store, without
// caching, rate limiting or tracing.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.AllowedEmailDomains = []string{"@uem.edu.in", "@iem.edu.in"}
	cfg.Session.JWTSecret = "test-secret-at-least-32-bytes-long!"
	cfg.Session.JWTIssuer = "seniorconnect-test"
	cfg.Session.SessionTTLHours = 24

	kv := storage.NewMemory()
	profileRepo := repository.NewProfileRepository(kv)
	favoriteRepo := repository.NewFavoriteRepository(kv)
	onboardingRepo := repository.NewOnboardingRepository(kv)

	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.SessionTTLHours)

	authService := services.NewAuthService(cfg, tokenManager)
	viewService := services.NewViewService(profileRepo, onboardingRepo)
	directoryService := services.NewDirectoryService(profileRepo, profileRepo, favoriteRepo)
	registrationService := services.NewRegistrationService(profileRepo, nil)
	favoriteService := services.NewFavoriteService(favoriteRepo, profileRepo)

	authHandler := NewAuthHandler(authService, viewService, cfg)
	mentorHandler := NewMentorHandler(directoryService)
	registrationHandler := NewRegistrationHandler(registrationService)
	profileHandler := NewProfileHandler(registrationService)
	favoriteHandler := NewFavoriteHandler(favoriteService)
	viewHandler := NewViewHandler(viewService)

	sessionRequired := middleware.SessionMiddleware(tokenManager, "", false)
	sessionOptional := middleware.OptionalSessionMiddleware(tokenManager)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/session", sessionRequired, authHandler.Session)
	api.GET("/mentors", sessionRequired, mentorHandler.List)
	api.GET("/mentors/:id", sessionRequired, mentorHandler.GetByID)
	api.POST("/register-mentor", sessionRequired, registrationHandler.Register)
	api.GET("/profile", sessionRequired, profileHandler.GetOwn)
	api.GET("/favorites", sessionRequired, favoriteHandler.List)
	api.PUT("/favorites/:mentorId", sessionRequired, favoriteHandler.Add)
	api.DELETE("/favorites/:mentorId", sessionRequired, favoriteHandler.Remove)
	api.GET("/view", sessionOptional, viewHandler.Get)
	api.POST("/view/onboarding", sessionRequired, viewHandler.CompleteOnboarding)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/auth/login", gin.H{"email": email})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func registration(name, placement, internship, project, availability string) gin.H {
	return gin.H{
		"name":               name,
		"primaryDomain":      "Web Development",
		"linkedinUrl":        "https://linkedin.com/in/" + name,
		"placementStatus":    placement,
		"internshipStatus":   internship,
		"projectExperience":  project,
		"availabilityStatus": availability,
		"mentorIntent":       []string{"placement"},
		"bio":                "bio for " + name,
	}
}

func TestLogin_RejectsForeignDomain(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/auth/login", gin.H{"email": "intruder@gmail.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"@uem.edu.in", "@iem.edu.in"}, resp.AllowedDomains)
	assert.Empty(t, w.Result().Cookies(), "rejected login must not set a cookie")
}

func TestLogin_MalformedEmail(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/auth/login", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// No cookie: protected endpoints reject
	w := doJSON(t, router, "GET", "/api/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := login(t, router, "priya@uem.edu.in")

	w = doJSON(t, router, "GET", "/api/auth/session", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "priya@uem.edu.in")

	// Logout clears the cookie
	w = doJSON(t, router, "POST", "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, middleware.SessionCookieName, cleared[0].Name)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestRegistrationAndDirectoryOrdering(t *testing.T) {
	router := newTestRouter(t)

	// Three seniors with scores 100, 60 and 85
	seniors := []struct {
		email string
		body  gin.H
	}{
		{"topper@uem.edu.in", registration("Topper", "placed", "completed", "advanced", "active")},
		{"starter@uem.edu.in", registration("Starter", "interviewing", "ongoing", "intermediate", "limited")},
		{"solid@uem.edu.in", registration("Solid", "placed", "completed", "intermediate", "limited")},
	}
	for _, s := range seniors {
		cookie := login(t, router, s.email)
		w := doJSON(t, router, "POST", "/api/register-mentor", s.body, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	cookie := login(t, router, "junior@iem.edu.in")
	w := doJSON(t, router, "GET", "/api/mentors", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Mentors []*models.SeniorProfile `json:"mentors"`
		Count   int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, []int{100, 85, 60}, []int{
		resp.Mentors[0].PriorityScore,
		resp.Mentors[1].PriorityScore,
		resp.Mentors[2].PriorityScore,
	})
	assert.Equal(t, "Topper", resp.Mentors[0].Name)
}

func TestRegistration_DuplicateRejected(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "senior@uem.edu.in")

	w := doJSON(t, router, "POST", "/api/register-mentor",
		registration("Senior", "placed", "completed", "advanced", "active"), cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/register-mentor",
		registration("Senior", "placed", "completed", "advanced", "active"), cookie)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegistration_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "senior@uem.edu.in")

	body := registration("Senior", "placed", "completed", "advanced", "active")
	body["placementStatus"] = "unemployed" // not in the vocabulary

	w := doJSON(t, router, "POST", "/api/register-mentor", body, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PlacementStatus")
}

func TestProfile_MissIsNull(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "junior@uem.edu.in")

	w := doJSON(t, router, "GET", "/api/profile", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"profile":null}`, w.Body.String())
}

func TestFavoritesFlow(t *testing.T) {
	router := newTestRouter(t)

	seniorCookie := login(t, router, "senior@uem.edu.in")
	w := doJSON(t, router, "POST", "/api/register-mentor",
		registration("Senior", "placed", "completed", "advanced", "active"), seniorCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.RegisterSeniorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	mentorID := created.Profile.ID

	cookie := login(t, router, "junior@uem.edu.in")

	// Add twice: idempotent
	for i := 0; i < 2; i++ {
		w = doJSON(t, router, "PUT", fmt.Sprintf("/api/favorites/%s", mentorID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(t, router, "GET", "/api/favorites", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var favs models.FavoritesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favs))
	assert.Equal(t, []string{mentorID}, favs.MentorIDs)

	// favorites_only listing
	w = doJSON(t, router, "GET", "/api/mentors?favorites_only=true", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mentorID)

	// Favoriting an unknown mentor fails
	w = doJSON(t, router, "PUT", "/api/favorites/no-such-mentor", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Remove twice: idempotent
	for i := 0; i < 2; i++ {
		w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/favorites/%s", mentorID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(t, router, "GET", "/api/mentors?favorites_only=true", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestViewFlow(t *testing.T) {
	router := newTestRouter(t)

	// Unauthenticated
	w := doJSON(t, router, "GET", "/api/view", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":"unauthenticated"}`, w.Body.String())

	cookie := login(t, router, "fresh@uem.edu.in")

	w = doJSON(t, router, "GET", "/api/view", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":"onboarding"}`, w.Body.String())

	// Junior path: onboarding dismissal leads to the directory
	w = doJSON(t, router, "POST", "/api/view/onboarding", gin.H{"role": "junior"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":"dashboard"}`, w.Body.String())

	// The choice sticks across requests
	w = doJSON(t, router, "GET", "/api/view", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":"dashboard"}`, w.Body.String())

	// Registering flips the resolved view to the mentor dashboard
	w = doJSON(t, router, "POST", "/api/register-mentor",
		registration("Fresh", "placed", "completed", "advanced", "active"), cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/view", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":"mentor_dashboard"}`, w.Body.String())
}

func TestViewOnboarding_InvalidRole(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "fresh@uem.edu.in")

	w := doJSON(t, router, "POST", "/api/view/onboarding", gin.H{"role": "admin"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
