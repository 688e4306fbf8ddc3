// Package router sets up the gin engine with all middleware and routes.
package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/billfold/backend/internal/controllers/healthz"
	v1 "github.com/billfold/backend/internal/controllers/v1"
	"github.com/billfold/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// New sets up the router and all middlewares. The returned teardown
// function has to be called before New can be called again, it
// unregisters the prometheus collectors.
func New() (*gin.Engine, func(), error) {
	r := gin.New()

	// Client IPs are not processed anywhere
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Use(MetricsMiddleware())
	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() {
		unregisterPrometheusMetrics()
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy since client IPs are not processed
	_ = r.SetTrustedProxies([]string{})

	pprof.Register(r)

	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthz.RegisterRoutes(r.Group("/healthz"))
	v1.RegisterRoutes(r.Group("/v1"))

	log.Info().Msg("backend startup complete")

	return r, teardown, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz"`
	Version string `json:"version"`
	Metrics string `json:"metrics"`
	V1      string `json:"v1"`
}

// GetRoot returns the entrypoint for the API, listing all endpoints.
func GetRoot(c *gin.Context) {
	url := httputil.RequestURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version"`
}

// GetVersion returns the software version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
