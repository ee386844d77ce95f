// Package deliveries wires the delivery-tracking pages: routes, handlers,
// and the persistence store behind them.
package deliveries

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickdeliver/auth"
	"quickdeliver/config"
	"quickdeliver/deliveries/format"
	"quickdeliver/deliveries/handlers"
	"quickdeliver/deliveries/repositories"
)

func SetupRoutes(app *gin.Engine, db *gorm.DB, logger *zap.Logger, cfg *config.Config) {
	store := repositories.NewStore(db)
	h := handlers.New(store, logger, cfg)

	app.SetFuncMap(template.FuncMap{
		"currency": format.Currency,
		"multiply": format.Multiply,
	})
	app.LoadHTMLGlob("templates/*.html")
	app.Use(handlers.RequestLogger(logger))

	app.GET("/", h.Home)
	app.GET("/sobre/", h.Sobre)
	app.GET("/clientes/", h.ListCustomers)
	app.GET("/entregadores/", h.ListCouriers)
	app.GET("/entregadores/:id/", h.CourierDetail)
	app.GET("/pedidos/", h.ListOrders)
	app.GET("/pedidos/:id/", h.OrderDetail)
	app.GET("/avaliacoes/", h.ListRatings)

	app.GET("/login", h.LoginForm)
	app.POST("/login", h.Login)

	protected := app.Group("/avaliacoes", auth.Required(cfg.JWTSecret))
	protected.GET("/criar/", h.NewRatingForm)
	protected.POST("/criar/", h.CreateRating)
	protected.GET("/minhas/", h.MyRatings)
}
