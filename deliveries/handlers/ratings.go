package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdeliver/auth"
	"quickdeliver/deliveries/models"
	"quickdeliver/deliveries/ratings"
)

func (h *Handler) ListRatings(c *gin.Context) {
	filter := ratings.ParseFilter(
		c.Query("tipo"),
		c.Query("min_nota"),
		c.Query("ordenacao"),
	)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	all, err := h.store.AllRatings()
	if err != nil {
		h.serverError(c, "failed to list ratings", err)
		return
	}

	result := ratings.Run(all, filter, page)

	c.HTML(http.StatusOK, "lista_avaliacoes.html", gin.H{
		"Pagina":       result.Page,
		"Estatisticas": result.Stats,
		"Filtro":       filter,
		"Categorias":   models.Categories(),
		"Sucesso":      c.Query("sucesso") != "",
	})
}

func (h *Handler) MyRatings(c *gin.Context) {
	username, ok := auth.CurrentUser(c)
	if !ok {
		h.notFound(c)
		return
	}

	mine, err := h.store.RatingsByRater(username)
	if err != nil {
		h.serverError(c, "failed to list own ratings", err)
		return
	}

	c.HTML(http.StatusOK, "minhas_avaliacoes.html", gin.H{
		"Avaliacoes": mine,
	})
}

type ratingForm struct {
	Category  string `form:"tipo"`
	Score     int    `form:"nota"`
	Comment   string `form:"comentario"`
	Anonymous bool   `form:"anonimo"`
	TargetID  uint   `form:"alvo_id"`
}

func (h *Handler) NewRatingForm(c *gin.Context) {
	h.renderRatingForm(c, ratingForm{}, nil)
}

func (h *Handler) CreateRating(c *gin.Context) {
	var form ratingForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRatingForm(c, form, map[string]string{
			"form": "Dados do formulário inválidos.",
		})
		return
	}

	username, _ := auth.CurrentUser(c)
	rating := models.Rating{
		RaterName: username,
		Category:  models.RatingCategory(form.Category),
		Score:     form.Score,
		Comment:   form.Comment,
		Anonymous: form.Anonymous,
	}

	if err := rating.Validate(); err != nil {
		if ve, ok := models.AsValidationError(err); ok {
			h.renderRatingForm(c, form, ve.Fields)
			return
		}
		h.serverError(c, "failed to validate rating", err)
		return
	}

	// Categories other than "servico" rate a concrete record: the target
	// must be supplied and must exist.
	if targetType, ok := models.TargetTypeFor(rating.Category); ok {
		if form.TargetID == 0 {
			h.renderRatingForm(c, form, map[string]string{
				"alvo_id": "Informe o registro avaliado.",
			})
			return
		}
		exists, err := h.store.ResolveTarget(targetType, form.TargetID)
		if err != nil {
			h.serverError(c, "failed to resolve rating target", err)
			return
		}
		if !exists {
			h.renderRatingForm(c, form, map[string]string{
				"alvo_id": "Registro avaliado não encontrado.",
			})
			return
		}
		rating.TargetType = targetType
		rating.TargetID = form.TargetID
	}

	if err := h.store.CreateRating(&rating); err != nil {
		if ve, ok := models.AsValidationError(err); ok {
			h.renderRatingForm(c, form, ve.Fields)
			return
		}
		h.serverError(c, "failed to create rating", err)
		return
	}

	c.Redirect(http.StatusFound, "/avaliacoes/?sucesso=1")
}

func (h *Handler) renderRatingForm(c *gin.Context, form ratingForm, errors map[string]string) {
	c.HTML(http.StatusOK, "criar_avaliacao.html", gin.H{
		"Titulo":     "Nova Avaliação",
		"Form":       form,
		"Erros":      errors,
		"Categorias": models.Categories(),
	})
}
