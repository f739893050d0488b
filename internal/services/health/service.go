// Package health reports liveness of the AI processor.
package health

import (
	"time"

	"github.com/gin-gonic/gin"

	"ai-processor/internal/shared/server/respond"
	"ai-processor/internal/shared/util"
)

const (
	serviceName    = "AI Processor"
	serviceVersion = "1.0.0"
)

// Status is the body returned by GET /health.
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Service encapsulates health-related checks.
type Service struct {
	Now func() time.Time
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{Now: time.Now}
}

// Status returns the current health payload.
func (s *Service) Status() Status {
	return Status{
		Status:    "healthy",
		Service:   serviceName,
		Version:   serviceVersion,
		Timestamp: util.ISOTimestamp(s.Now()),
	}
}

// RegisterRoutes attaches GET /health.
func (s *Service) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, s.Status())
	})
}
