package server

import (
	"net/http"

	"modbot/internal/handler"
	"modbot/internal/incidents"
	"modbot/internal/middleware"
	"modbot/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	log    *logrus.Logger
}

// NewServer builds the admin API around the registry and the decision store.
func NewServer(registry *incidents.Registry, decisionRepo repository.DecisionRepository, jwtSecret string, log *logrus.Logger, zapLogger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		log:    log,
	}

	statusHandler := handler.NewStatusHandler(registry, decisionRepo, zapLogger)

	// Ping route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authenticated routes
	authRequired := router.Group("/api")
	authRequired.Use(middleware.AuthMiddleware([]byte(jwtSecret), zapLogger))
	{
		authRequired.GET("/incidents/open", statusHandler.GetOpenIncidents)
		authRequired.GET("/decisions", statusHandler.GetRecentDecisions)
	}

	return s
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
