package controllers

import (
	"net/http"

	"github.com/yuge42/yt-api-mock/internal/runtime"
	livechatsvc "github.com/yuge42/yt-api-mock/internal/services/livechat"
	oauthsvc "github.com/yuge42/yt-api-mock/internal/services/oauthmock"
	videosvc "github.com/yuge42/yt-api-mock/internal/services/videos"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes.
type ControllerRegistry struct {
	livechat *LiveChatController
	videos   *VideosController
	control  *ControlController
	oauth    *OAuthController
}

// NewControllerRegistry creates a new controller registry.
func NewControllerRegistry(rt *runtime.Runtime, chatSvc *livechatsvc.Service, videoSvc *videosvc.Service, oauthSvc *oauthsvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		livechat: NewLiveChatController(rt, chatSvc),
		videos:   NewVideosController(rt, videoSvc),
		control:  NewControlController(chatSvc, videoSvc),
		oauth:    NewOAuthController(oauthSvc),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
//
// This sets up the youtube/v3 API surface, the control endpoints, and
// the OAuth token endpoint.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.livechat.RegisterRoutes(mux)
	r.videos.RegisterRoutes(mux)
	r.control.RegisterRoutes(mux)
	r.oauth.RegisterRoutes(mux)
}
