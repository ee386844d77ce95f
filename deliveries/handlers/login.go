package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quickdeliver/auth"
)

type loginForm struct {
	Username string `form:"usuario"`
	Password string `form:"senha"`
}

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" {
		h.loginFailed(c, form)
		return
	}

	if form.Username != h.cfg.Username || form.Password != h.cfg.Password {
		h.loginFailed(c, form)
		return
	}

	token, err := auth.GenerateToken(h.cfg.JWTSecret, form.Username)
	if err != nil {
		h.serverError(c, "failed to issue session token", err)
		return
	}

	c.SetCookie(auth.CookieName, token, 24*60*60, "/", "", false, true)

	next := c.PostForm("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) loginFailed(c *gin.Context, form loginForm) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Erro":    "Usuário ou senha inválidos.",
		"Usuario": form.Username,
		"Next":    c.PostForm("next"),
	})
}
