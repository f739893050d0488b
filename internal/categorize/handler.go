package categorize

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"ai-processor/internal/shared/metrics"
	"ai-processor/internal/shared/server/middleware"
	"ai-processor/internal/shared/server/respond"
	"ai-processor/internal/shared/telemetry"
)

const stage = "Categorization"

// Request is the body of POST /categorize.
type Request struct {
	Materials []map[string]any `json:"materials"`
}

// Response is the body returned by POST /categorize.
type Response struct {
	CategorizedMaterials []map[string]any `json:"categorized_materials"`
	TotalProcessed       int              `json:"total_processed"`
}

// Handler serves standalone categorization.
type Handler struct {
	Engine   *Engine
	MaxBatch int
}

// NewHandler constructs a Handler. maxBatch <= 0 disables the size guard.
func NewHandler(engine *Engine, maxBatch int) *Handler {
	return &Handler{Engine: engine, MaxBatch: maxBatch}
}

// RegisterRoutes attaches the categorize route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/categorize", h.categorize)
}

func (h *Handler) categorize(c *gin.Context) {
	defer respond.RecoverStage(c, stage)

	var req Request
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		respond.Failure(c, stage, fmt.Errorf("decode request: %w", err))
		return
	}
	if h.MaxBatch > 0 && len(req.Materials) > h.MaxBatch {
		telemetry.Warn("categorize.batch_rejected", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"records":    len(req.Materials),
			"limit":      h.MaxBatch,
		})
		respond.Error(c, http.StatusBadRequest, "Too many materials",
			fmt.Sprintf("%d records exceeds limit of %d", len(req.Materials), h.MaxBatch))
		return
	}

	out, err := h.Categorize(req.Materials)
	if err != nil {
		respond.Failure(c, stage, err)
		return
	}
	respond.OK(c, Response{CategorizedMaterials: out, TotalProcessed: len(out)})
}

// Categorize returns copies of materials with category, confidence and
// ai_categorized added. material_type must be a string when present.
func (h *Handler) Categorize(materials []map[string]any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(materials))
	for i, m := range materials {
		name := ""
		if raw, ok := m["material_type"]; ok {
			s, isString := raw.(string)
			if !isString {
				return nil, fmt.Errorf("material %d: material_type must be a string, got %T", i, raw)
			}
			name = strings.ToLower(s)
		}
		category, confidence := h.Engine.Categorize(name)
		metrics.IncCategorized(category)

		item := maps.Clone(m)
		if item == nil {
			item = map[string]any{}
		}
		item["category"] = category
		item["confidence"] = confidence
		item["ai_categorized"] = IsAICategorized(confidence)
		out = append(out, item)
	}
	return out, nil
}
