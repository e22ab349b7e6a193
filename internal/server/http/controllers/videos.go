package controllers

import (
	"net/http"
	"strings"

	"github.com/yuge42/yt-api-mock/internal/runtime"
	videosvc "github.com/yuge42/yt-api-mock/internal/services/videos"
)

// VideosController handles the videos list endpoint.
type VideosController struct {
	rt *runtime.Runtime
	vs *videosvc.Service
}

// NewVideosController creates a new videos controller.
func NewVideosController(rt *runtime.Runtime, svc *videosvc.Service) *VideosController {
	return &VideosController{rt: rt, vs: svc}
}

// RegisterRoutes registers video routes with the given mux.
func (c *VideosController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/youtube/v3/videos", c.handleList)
}

// handleList returns the requested videos as a youtube#videoListResponse.
// The id parameter may appear multiple times or carry a comma-separated
// list; no id at all returns every stored video.
func (c *VideosController) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	q := r.URL.Query()
	var ids []string
	for _, raw := range q["id"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	resp, err := c.vs.List(r.Context(), videosvc.ListParams{
		IDs:   ids,
		Parts: splitParts(q.Get("part")),
	})
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "Internal error", "INTERNAL")
		return
	}
	writeJSON(w, resp)
}
