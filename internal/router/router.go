package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/config"
	"storefront/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	orderHandler *handler.OrderHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	companyHandler *handler.CompanyHandler,
	projectHandler *handler.ProjectHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(cfg.MaxBodySize))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{MinLength: 1000}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth routes
	e.POST("/users", authHandler.CreateUser)
	e.POST("/token", authHandler.Token)
	e.POST("/refresh", authHandler.Refresh)
	e.POST("/logout", authHandler.Logout)

	// Secured routes (require a bearer access token; the handler rejects
	// refresh tokens and unknown subjects on top of this gate)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))
	secured.GET("/users/me", authHandler.Me)

	// Order routes
	e.POST("/orders", orderHandler.CreateOrder)
	e.GET("/orders", orderHandler.ListOrders)

	// Catalog routes
	e.GET("/products", productHandler.ListProducts)
	e.POST("/products", productHandler.CreateProduct)
	e.GET("/products/:id", productHandler.GetProduct)
	e.PUT("/products/:id", productHandler.UpdateProduct)
	e.DELETE("/products/:id", productHandler.DeleteProduct)

	e.GET("/categories", categoryHandler.ListCategories)
	e.POST("/categories", categoryHandler.CreateCategory)
	e.PUT("/categories/:id", categoryHandler.UpdateCategory)
	e.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	// Portfolio routes
	e.GET("/companies", companyHandler.ListCompanies)
	e.POST("/companies", companyHandler.CreateCompany)
	e.GET("/companies/:slug/projects", companyHandler.ListCompanyProjects)

	e.GET("/projects", projectHandler.ListProjects)
	e.GET("/projects/featured", projectHandler.ListFeaturedProjects)
	e.GET("/projects/:slug", projectHandler.GetProject)
	e.POST("/projects", projectHandler.CreateProject)
	e.PUT("/projects/:id", projectHandler.UpdateProject)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
