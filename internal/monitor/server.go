package monitor

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/pldsys/pfbus/internal/observability"
)

// Server exposes poller readings over HTTP.
type Server struct {
	addr    string
	poller  *Poller
	router  *gin.Engine
	started time.Time
}

func NewServer(addr string, poller *Poller, corsOrigins []string) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Server{
		addr:    addr,
		poller:  poller,
		router:  r,
		started: time.Now(),
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.started).String(),
			"service": "pfmon",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/status", func(c *gin.Context) {
		readings := s.poller.Readings()
		sort.Slice(readings, func(i, j int) bool { return readings[i].Name < readings[j].Name })
		c.JSON(http.StatusOK, gin.H{"instruments": readings})
	})

	s.router.GET("/status/:name", func(c *gin.Context) {
		r, ok := s.poller.Reading(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown instrument"})
			return
		}
		c.JSON(http.StatusOK, r)
	})
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	return s.router.Run(s.addr)
}
