package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/app"
	iauth "github.com/zhafranafif/Assignment4-ZhafranAfif/internal/auth"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/cache"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/handlers"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/middleware"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
// The v1 resource family runs on the raw-SQL gateways (laptop listing fronted
// by the cache); the v2 family runs on the ORM gateways. Authentication is
// required on the v1 laptop routes only, matching the public API contract.
func NewRouter(db *gorm.DB, cacheStore cache.Store, jwt *iauth.JWTService, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtain sql pool: %w", err)
	}
	tables := cfg.Database.TableNames()

	// v1 family: raw-SQL gateways
	laptopSQL, err := services.NewSQLLaptopStore(sqlDB, tables.Laptop)
	if err != nil {
		return nil, err
	}
	laptopV1, err := services.NewLaptopService(laptopSQL, cacheStore)
	if err != nil {
		return nil, err
	}
	phonebookSQL, err := services.NewSQLPhonebookStore(sqlDB, tables.Phonebook)
	if err != nil {
		return nil, err
	}
	phonebookV1, err := services.NewPhonebookService(phonebookSQL)
	if err != nil {
		return nil, err
	}
	userStore, err := services.NewSQLUserStore(sqlDB, tables.User)
	if err != nil {
		return nil, err
	}
	accounts, err := services.NewAccountService(userStore)
	if err != nil {
		return nil, err
	}

	// v2 family: ORM gateways
	laptopORM, err := services.NewGormLaptopStore(db, tables.Laptop)
	if err != nil {
		return nil, err
	}
	laptopV2, err := services.NewLaptopService(laptopORM, nil)
	if err != nil {
		return nil, err
	}
	phonebookORM, err := services.NewGormPhonebookStore(db, tables.Phonebook)
	if err != nil {
		return nil, err
	}
	phonebookV2, err := services.NewPhonebookService(phonebookORM)
	if err != nil {
		return nil, err
	}

	laptopV1Handler, err := handlers.NewLaptopHandler(laptopV1)
	if err != nil {
		return nil, err
	}
	laptopV2Handler, err := handlers.NewLaptopHandler(laptopV2)
	if err != nil {
		return nil, err
	}
	phonebookV1Handler, err := handlers.NewPhonebookHandler(phonebookV1)
	if err != nil {
		return nil, err
	}
	phonebookV2Handler, err := handlers.NewPhonebookHandler(phonebookV2)
	if err != nil {
		return nil, err
	}
	authHandler, err := handlers.NewAuthHandler(accounts, jwt)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Transaction())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	r.GET("/health", handlers.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(jwt)

	laptops := r.Group("/api/v1/laptop")
	{
		laptops.POST("/login", authHandler.Login)
		laptops.POST("/register", authHandler.Register)

		laptops.GET("", requireAuth, laptopV1Handler.List)
		laptops.POST("", requireAuth, laptopV1Handler.Create)
		laptops.PUT("/:id", requireAuth, laptopV1Handler.Update)
		laptops.DELETE("/:id", requireAuth, laptopV1Handler.Delete)
	}

	laptopsV2 := r.Group("/api/v2/laptop")
	{
		laptopsV2.GET("", laptopV2Handler.List)
		laptopsV2.POST("", laptopV2Handler.Create)
		laptopsV2.PUT("/:id", laptopV2Handler.Update)
		laptopsV2.DELETE("/:id", laptopV2Handler.Delete)
	}

	phonebook := r.Group("/api/v1/phonebook")
	{
		phonebook.GET("", phonebookV1Handler.List)
		phonebook.POST("", phonebookV1Handler.Create)
		phonebook.PUT("/:id", phonebookV1Handler.Update)
		phonebook.DELETE("/:id", phonebookV1Handler.Delete)
	}

	phonebookV2Routes := r.Group("/api/v2/phonebook")
	{
		phonebookV2Routes.GET("", phonebookV2Handler.List)
		phonebookV2Routes.POST("", phonebookV2Handler.Create)
		phonebookV2Routes.PUT("/:id", phonebookV2Handler.Update)
		phonebookV2Routes.DELETE("/:id", phonebookV2Handler.Delete)
	}

	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
