package v1

import (
	"net/http"
	"time"

	"github.com/gfdmit/pastebin/internal/handlers/http/v1/graphql"
	"github.com/gfdmit/pastebin/internal/metrics"
	"github.com/gfdmit/pastebin/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(svc *service.Service, m *metrics.Metrics) (*gin.Engine, error) {
	var (
		router = gin.New()
		h      = &handler{svc: svc, metrics: m}
	)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestID())
	router.Use(observe(m))

	router.Use(allowAnyOrigin())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))

	gqlHandler, err := graphql.New(svc, m)
	if err != nil {
		return nil, err
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Hello! There's nothing interesting for GET /"})
	})

	pastes := router.Group("/pastes")
	{
		pastes.GET("", h.getPastes)
		pastes.POST("", h.createPaste)
		pastes.DELETE("/:pasteId", h.deletePaste)

		pastes.GET("/:pasteId/comments", h.getComments)
		pastes.POST("/:pasteId/comments", h.createComment)
		pastes.DELETE("/:pasteId/comments/:commentId", h.deleteComment)
	}

	router.Any("/graphql", gin.WrapH(gqlHandler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router, nil
}
