package api

import (
	"regexp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/api/middleware"
)

var slugRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// NewRouter assembles the gin engine: tracing, gzip, rate limiting,
// recovery, then the API routes.
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidators()

	r := gin.New()
	r.Use(
		otelgin.Middleware("microblog"),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst),
		middleware.Recovery(),
	)

	r.Static("/media", cfg.Server.MediaDir)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	// public reads: anonymous passes through, identity is still picked up
	// when present (profile needs to know the viewer)
	public := v1.Group("", middleware.Auth(cfg.JWT.Secret, false))
	{
		public.GET("/posts", h.Index)
		public.GET("/posts/:id", h.PostDetail)
		public.GET("/groups/:slug/posts", h.GroupPosts)
		public.GET("/users/:username/posts", h.Profile)
	}

	authed := v1.Group("", middleware.Auth(cfg.JWT.Secret, true))
	{
		authed.GET("/feed", h.Feed)
		authed.POST("/posts", h.CreatePost)
		authed.PUT("/posts/:id", h.UpdatePost)
		authed.DELETE("/posts/:id", h.DeletePost)
		authed.POST("/posts/:id/comments", h.AddComment)
		authed.POST("/users/:username/follow", h.Follow)
		authed.DELETE("/users/:username/follow", h.Unfollow)
		authed.POST("/groups", h.CreateGroup)
		authed.DELETE("/groups/:slug", h.DeleteGroup)
		authed.DELETE("/cache", h.ClearCache)
	}

	return r
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slugfield", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
	}
}
