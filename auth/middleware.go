package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const userKey = "username"

// Required redirects unauthenticated requests to the login page, keeping the
// requested path so login can send the user back.
func Required(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		claims, err := ValidateToken(secret, tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(userKey, claims.Username)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

// CurrentUser returns the authenticated username set by Required.
func CurrentUser(c *gin.Context) (string, bool) {
	raw, exists := c.Get(userKey)
	if !exists {
		return "", false
	}
	username, ok := raw.(string)
	return username, ok && username != ""
}
