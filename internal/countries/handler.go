package countries

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/climate-atlas/pkg/handlers"
	"github.com/JaimeStill/climate-atlas/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "countries"),
	}
}

// RiskLevelInfo describes one legend entry.
type RiskLevelInfo struct {
	Level RiskLevel `json:"level"`
	Label string    `json:"label"`
	Color string    `json:"color"`
	Rank  int       `json:"rank"`
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/countries",
		Description: "Country climate-vulnerability records",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{name}", Handler: h.Find},
		},
	}
}

func (h *Handler) RiskLevelRoutes() routes.Group {
	return routes.Group{
		Prefix:      "/risk-levels",
		Description: "Map legend risk levels and colors",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.RiskLevels},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Names())
}

// Find responds with the record for the name path value. Unknown names
// respond 200 with an empty object.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c := h.sys.Lookup(name)
	if c.IsZero() {
		h.logger.Debug("country not in catalog", "name", name)
	}
	handlers.RespondJSON(w, http.StatusOK, c)
}

func (h *Handler) RiskLevels(w http.ResponseWriter, r *http.Request) {
	levels := append(Levels(), RiskUnknown)
	result := make([]RiskLevelInfo, 0, len(levels))
	for _, l := range levels {
		result = append(result, RiskLevelInfo{
			Level: l,
			Label: l.Label(),
			Color: l.Color(),
			Rank:  l.Rank(),
		})
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
