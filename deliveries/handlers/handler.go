package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickdeliver/config"
	"quickdeliver/deliveries/repositories"
)

type Handler struct {
	store  repositories.Store
	logger *zap.Logger
	cfg    *config.Config
}

func New(store repositories.Store, logger *zap.Logger, cfg *config.Config) *Handler {
	return &Handler{store: store, logger: logger, cfg: cfg}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (h *Handler) Sobre(c *gin.Context) {
	c.HTML(http.StatusOK, "sobre.html", gin.H{})
}

func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
	c.Abort()
}

func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.String(http.StatusInternalServerError, "erro interno")
	c.Abort()
}
