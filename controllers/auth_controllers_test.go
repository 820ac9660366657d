package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/middlewares"
	"github.com/exoticlanka/backoffice/utils"
)

// setupAuthRouter wires the login endpoints plus a guarded page, the
// way the real router does.
func setupAuthRouter(db *gorm.DB) *gin.Engine {
	r := newTestEngine()

	authCtrl := NewAuthController(db)
	activityCtrl := NewActivityController(db)

	r.GET("/login", authCtrl.ShowLogin)
	r.POST("/login", authCtrl.Login)
	r.GET("/logout", authCtrl.Logout)

	pages := r.Group("/")
	pages.Use(middlewares.SessionGuard())
	{
		pages.GET("/activities", activityCtrl.ListActivities)
		pages.POST("/activities", activityCtrl.AddActivity)
	}
	return r
}

// login performs the credential POST and returns the session cookie.
func login(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	w := postForm(r, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)

	w := get(r, "/activities")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "admin", "1234")
	r := setupAuthRouter(db)

	w := postForm(r, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
}

func TestLoginGrantsAccess(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "admin", "1234")
	r := setupAuthRouter(db)

	cookie := login(t, r, "admin", "1234")

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Signed in as admin")
}

func TestFlashMessageIsOneShot(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "admin", "1234")
	r := setupAuthRouter(db)

	cookie := login(t, r, "admin", "1234")

	form := url.Values{
		"activity_name": {"Whale Watching"},
		"description":   {"Mirissa boat tour"},
	}
	req := httptest.NewRequest(http.MethodPost, "/activities", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)

	// First render after the redirect shows the banner.
	req = httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Activity added successfully!")

	// The banner does not survive a second render.
	req = httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Activity added successfully!")
}

func TestLogoutClearsSession(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "admin", "1234")
	r := setupAuthRouter(db)

	cookie := login(t, r, "admin", "1234")

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie should be expired on logout")
}
