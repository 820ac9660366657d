package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exoticlanka/backoffice/middlewares"
	"github.com/exoticlanka/backoffice/utils"
)

// pageData builds the shared template payload: page identity, the
// logged-in username, and any pending flash message for the session.
func pageData(c *gin.Context, active, title string) gin.H {
	data := gin.H{
		"Active": active,
		"Title":  title,
	}
	if auth, ok := middlewares.GetAuthContext(c); ok {
		data["Username"] = auth.Username
		if msg := utils.PopFlash(auth.SessionID); msg != "" {
			data["Success"] = msg
		}
	}
	return data
}

// flashAndRedirect records the one-shot success message for the session
// and sends the post-mutation redirect.
func flashAndRedirect(c *gin.Context, location, message string) {
	if auth, ok := middlewares.GetAuthContext(c); ok {
		utils.SetFlash(auth.SessionID, message)
	}
	c.Redirect(http.StatusFound, location)
}

// withError makes the inline error exclusive with the success banner.
func withError(data gin.H, message string) gin.H {
	delete(data, "Success")
	data["Error"] = message
	return data
}
