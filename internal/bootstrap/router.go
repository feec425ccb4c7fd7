package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpapi "github.com/openci/openci-backend/internal/api/http"
	"github.com/openci/openci-backend/internal/api/http/middleware"
	projectshttp "github.com/openci/openci-backend/internal/projects/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DB             *sql.DB
	Projects       projectshttp.ProjectOperations
	Plans          projectshttp.PlanOperations
	Logger         zerolog.Logger
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// Registry defaults to a fresh registry with Go and process collectors.
	Registry *prometheus.Registry
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	r.Use(middleware.RequestID(dep.Logger))

	reg := dep.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	r.Use(middleware.NewMetrics(reg).Handler())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger).RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	projectshttp.New(dep.Projects, dep.Plans, dep.Logger).Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
