package router

import (
	"net/http"
	"net/url"

	docs "github.com/frugal-finance/backend/api"
	"github.com/frugal-finance/backend/internal/controllers"
	"github.com/frugal-finance/backend/internal/controllers/healthz"
	"github.com/frugal-finance/backend/internal/controllers/version"
	"github.com/frugal-finance/backend/internal/httputil"
	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is set at build time with -ldflags "-X github.com/frugal-finance/backend/internal/router.Version=<version>"
var Version = "0.0.0"

type settings struct {
	corsAllowOrigins []string
	enablePprof      bool
}

// Option configures optional features of the router.
type Option func(*settings)

// WithCORS enables CORS for the origins passed. Origins may be glob
// patterns, e.g. "https://*.example.com".
func WithCORS(origins []string) Option {
	return func(s *settings) {
		s.corsAllowOrigins = origins
	}
}

// WithPprof registers the pprof routes at /debug/pprof if enabled.
func WithPprof(enabled bool) Option {
	return func(s *settings) {
		s.enablePprof = enabled
	}
}

// Config configures the gin engine with all middlewares.
//
// The returned function unregisters the Prometheus metrics and must be called
// when the engine is not used anymore.
func Config(url *url.URL, options ...Option) (*gin.Engine, func(), error) {
	var s settings
	for _, o := range options {
		o(&s)
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(ContextLogger(log.Logger))
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "this HTTP method is not allowed for the endpoint you called"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "there is no endpoint for the path you called"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	// CORS settings
	if len(s.corsAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", s.corsAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  originAllowed(s.corsAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"Location", "X-Request-Id"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Use the JSON field names in validation error messages
	httputil.UseJSONFieldNames()

	// pprof performance profiles
	if s.enablePprof {
		pprof.Register(r, "debug/pprof")
	}

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", Version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Frugal"
	docs.SwaggerInfo.Version = Version
	docs.SwaggerInfo.Description = "The backend for Frugal, a personal finance tracker for budgets, categories, businesses and transactions."

	return r, teardown, nil
}

// originAllowed returns a function that checks if an origin
// matches any of the allowed origin patterns.
func originAllowed(patterns []string) func(string) bool {
	return func(origin string) bool {
		for _, pattern := range patterns {
			if glob.Glob(pattern, origin) {
				return true
			}
		}
		return false
	}
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. behind a reverse proxy path.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)

	version.RegisterRoutes(group.Group("/version"), Version)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := group.Group("/api")
	{
		api.GET("", GetAPI)
		api.OPTIONS("", OptionsAPI)
	}

	controllers.RegisterBudgetRoutes(api.Group("/budgets"))
	controllers.RegisterBusinessRoutes(api.Group("/businesses"))
	controllers.RegisterCategoryRoutes(api.Group("/categories"))
	controllers.RegisterTransactionRoutes(api.Group("/transactions"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/metrics"`      // Endpoint returning Prometheus metrics
	API     string `json:"api" example:"https://example.com/api"`              // List endpoint for all resources
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			API:     url + "/api",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"` // Links for the API
}

type APILinks struct {
	Budgets      string `json:"budgets" example:"https://example.com/api/budgets"`           // URL of budget list endpoint
	Businesses   string `json:"businesses" example:"https://example.com/api/businesses"`     // URL of business list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/categories"`     // URL of category list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"` // URL of transaction list endpoint
}

// GetAPI returns the link list for all resources
//
//	@Summary		API resources
//	@Description	Returns the links to all resource endpoints
//	@Tags			General
//	@Success		200	{object}	APIResponse
//	@Router			/api [get]
func GetAPI(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/api"

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Budgets:      url + "/budgets",
			Businesses:   url + "/businesses",
			Categories:   url + "/categories",
			Transactions: url + "/transactions",
		},
	})
}

// OptionsAPI returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
