package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdeliver/deliveries/repositories"
)

func (h *Handler) ListCouriers(c *gin.Context) {
	couriers, err := h.store.ListCouriers()
	if err != nil {
		h.serverError(c, "failed to list couriers", err)
		return
	}
	c.HTML(http.StatusOK, "lista_entregadores.html", gin.H{
		"Entregadores": couriers,
	})
}

func (h *Handler) CourierDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	courier, err := h.store.GetCourier(uint(id))
	if repositories.IsNotFound(err) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.serverError(c, "failed to load courier", err)
		return
	}

	orders, err := h.store.CourierOrders(courier.ID)
	if err != nil {
		h.serverError(c, "failed to load courier orders", err)
		return
	}

	c.HTML(http.StatusOK, "detalhes_entregador.html", gin.H{
		"Entregador": courier,
		"Pedidos":    orders,
	})
}
