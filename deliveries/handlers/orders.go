package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdeliver/deliveries/models"
	"quickdeliver/deliveries/repositories"
)

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.store.ListOrders()
	if err != nil {
		h.serverError(c, "failed to list orders", err)
		return
	}
	c.HTML(http.StatusOK, "lista_pedidos.html", gin.H{
		"Pedidos": orders,
	})
}

func (h *Handler) OrderDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	order, err := h.store.GetOrder(uint(id))
	if repositories.IsNotFound(err) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.serverError(c, "failed to load order", err)
		return
	}

	var tracking *models.OrderTracking
	if t, err := h.store.LatestTracking(order.ID); err == nil {
		tracking = t
	} else if !repositories.IsNotFound(err) {
		h.serverError(c, "failed to load tracking", err)
		return
	}

	c.HTML(http.StatusOK, "detalhes_pedido.html", gin.H{
		"Pedido":       order,
		"Rastreamento": tracking,
	})
}
