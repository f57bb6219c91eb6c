package mockserver

import (
	"net/http"
	"time"

	"github.com/xinfuli/points-mall/internal/mockserver/respond"
)

// CheckHealth handles GET /healthz. Fixtures are in-process, so the dev
// backend is healthy whenever it can answer.
func CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
