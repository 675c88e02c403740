package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/babelchat/babelchat-server/internal/auth"
	"github.com/babelchat/babelchat-server/internal/config"
	"github.com/babelchat/babelchat-server/internal/core"
	"github.com/babelchat/babelchat-server/internal/lang"
	"github.com/babelchat/babelchat-server/internal/service/moderation"
	"github.com/babelchat/babelchat-server/internal/store"
	"github.com/babelchat/babelchat-server/internal/translate"
)

// Deps bundles the services the HTTP layer exposes.
type Deps struct {
	Hub        *core.Hub
	Auth       *auth.Service
	Users      store.UserStore
	Moderation *moderation.Service
	Translator *translate.Adapter
	Normalizer *lang.Normalizer
}

// NewServer builds the HTTP server: health check, WebSocket endpoint,
// translation helpers, and the REST auth/moderation API.
func NewServer(deps Deps, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})
	router.GET("/ws", gin.WrapH(NewWSHandler(deps.Hub, deps.Auth, logger)))

	th := NewTranslateHandlers(deps.Translator, deps.Normalizer, logger)
	router.GET("/languages", th.Languages)
	router.GET("/translate", th.Translate)

	ah := NewAPIHandlers(deps.Auth, deps.Users, logger)
	api := router.Group("/api")
	api.POST("/register", ah.Register)
	api.POST("/login", ah.Login)

	mh := NewModerationHandlers(deps.Moderation, logger)
	authed := api.Group("", AuthMiddleware(deps.Auth, logger))
	authed.GET("/me", ah.Me)
	authed.POST("/logout", ah.Logout)
	authed.POST("/block", mh.Block)
	authed.POST("/unblock", mh.Unblock)
	authed.GET("/blocked", mh.Blocked)
	authed.POST("/report", mh.Report)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
