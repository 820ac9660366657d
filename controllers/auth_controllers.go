package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/models"
	"github.com/exoticlanka/backoffice/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ShowLogin renders the login page; an already-authenticated session
// goes straight to the dashboard.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	if cookie, err := c.Cookie(utils.SessionCookie); err == nil {
		if _, err := utils.ParseSessionToken(cookie); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login checks the submitted credentials against the seeded admin user
// and issues the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	var user models.User
	if err := ac.DB.Where("username = ?", username).First(&user).Error; err != nil {
		ac.renderLoginError(c)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		ac.renderLoginError(c)
		return
	}

	token, sessionID, err := utils.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		utils.ErrorLogger.Printf("Error generating session token: %v", err)
		ac.renderLoginError(c)
		return
	}

	c.SetCookie(utils.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
	utils.InfoLogger.Printf("Login successful for %s (session %s)", user.Username, sessionID)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session state and returns to the login page.
func (ac *AuthController) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(utils.SessionCookie); err == nil {
		if claims, err := utils.ParseSessionToken(cookie); err == nil {
			utils.ClearFlash(claims.ID)
		}
	}
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) renderLoginError(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login",
		"Error": "Invalid username or password.",
	})
}
