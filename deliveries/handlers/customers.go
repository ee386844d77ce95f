package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.store.ListCustomers()
	if err != nil {
		h.serverError(c, "failed to list customers", err)
		return
	}
	c.HTML(http.StatusOK, "lista_clientes.html", gin.H{
		"Clientes": customers,
	})
}
