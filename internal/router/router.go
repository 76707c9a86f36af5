package router

import (
	"github.com/ME-Tii/customer-list/internal/chat"
	"github.com/ME-Tii/customer-list/internal/config"
	"github.com/ME-Tii/customer-list/internal/customer"
	"github.com/ME-Tii/customer-list/internal/handler"
	"github.com/ME-Tii/customer-list/internal/middleware"
	"github.com/ME-Tii/customer-list/internal/presence"
	"github.com/ME-Tii/customer-list/internal/results"
	"github.com/ME-Tii/customer-list/internal/upload"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the constructed stores into route wiring.
type Deps struct {
	DB        *gorm.DB
	Log       *chat.Log
	Mailboxes *chat.Mailboxes
	Registry  *customer.Registry
	Presence  *presence.Coordinator
	Uploads   *upload.Saver
	Scanner   *results.Scanner
}

// SetupRouter configures the Gin engine and all routes.
func SetupRouter(cfg *config.Config, d Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// front-end assets and stored uploads
	if cfg.Storage.StaticDir != "" {
		r.Static("/static", cfg.Storage.StaticDir)
	}
	r.Static("/uploads", cfg.Storage.UploadsDir)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(d.DB, d.Presence, cfg.Auth.JWTSecret,
		cfg.Auth.ExpireHours, cfg.Auth.BcryptCost)
	api.POST("/login", authHandler.Login)
	api.POST("/register", authHandler.Register)

	// everything else requires a live login session
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.Auth.JWTSecret, d.DB),
		middleware.ActivityMiddleware(d.DB),
	)

	protected.POST("/logout", authHandler.Logout)

	presenceHandler := handler.NewPresenceHandler(d.Presence)
	protected.POST("/heartbeat", presenceHandler.Heartbeat)
	protected.GET("/online-users", presenceHandler.OnlineUsers)

	chatHandler := handler.NewChatHandler(d.Log, d.Uploads)
	protected.GET("/messages", chatHandler.List)
	protected.POST("/messages", chatHandler.Post)

	privateHandler := handler.NewPrivateHandler(d.Mailboxes, d.Uploads)
	protected.GET("/private-messages", privateHandler.List)
	protected.POST("/private-messages/send", privateHandler.Send)

	userHandler := handler.NewUserHandler(d.DB)
	protected.GET("/users", userHandler.List)
	protected.GET("/users/me", userHandler.Me)
	protected.POST("/users/access", userHandler.UpdateAccess)
	protected.POST("/users/delete", userHandler.Delete)

	customerHandler := handler.NewCustomerHandler(d.Registry)
	protected.GET("/customers", customerHandler.List)
	protected.POST("/customers", customerHandler.Add)
	protected.GET("/customers/export/csv", customerHandler.ExportCSV)
	protected.GET("/customers/export/xlsx", customerHandler.ExportXLSX)

	resultsHandler := handler.NewResultsHandler(d.Scanner)
	protected.GET("/results/scan", resultsHandler.Scan)

	xmlGroup := r.Group("")
	xmlGroup.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret, d.DB))
	xmlGroup.GET("/customers.xml", customerHandler.ServeXML)

	return r
}
