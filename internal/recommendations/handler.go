package recommendations

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"ai-processor/internal/shared/metrics"
	"ai-processor/internal/shared/server/middleware"
	"ai-processor/internal/shared/server/respond"
	"ai-processor/internal/shared/telemetry"
	"ai-processor/internal/shared/util"
)

const stage = "Recommendation generation"

// Request is the body of POST /recommendations.
type Request struct {
	LCAResults LCAResults `json:"lca_results"`
	Context    Context    `json:"context"`
}

// Response is the body returned by POST /recommendations.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	ConfidenceScore float64          `json:"confidence_score"`
	GeneratedAt     string           `json:"generated_at"`
}

// Handler serves recommendation generation.
type Handler struct {
	Now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{Now: time.Now}
}

// RegisterRoutes attaches the recommendations route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/recommendations", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	defer respond.RecoverStage(c, stage)

	var req Request
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		respond.Failure(c, stage, fmt.Errorf("decode request: %w", err))
		return
	}

	recs, err := Generate(req.LCAResults, req.Context)
	if err != nil {
		respond.Failure(c, stage, err)
		return
	}
	for _, r := range recs {
		metrics.IncRecommendation(string(r.Type))
	}
	confidence := Confidence(req.LCAResults)
	telemetry.Info("recommendations.generated", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"count":      len(recs),
		"confidence": confidence,
	})

	respond.OK(c, Response{
		Recommendations: recs,
		ConfidenceScore: confidence,
		GeneratedAt:     util.ISOTimestamp(h.Now()),
	})
}
