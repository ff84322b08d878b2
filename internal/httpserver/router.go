package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/awf1337/instantly/internal/handler"
	"github.com/awf1337/instantly/pkg/mq"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(emailHandler *handler.EmailHandler, aiHandler *handler.AIHandler, db *pgxpool.Pool, publisher *mq.Publisher) *Router {
	r := gin.New()
	r.Use(gin.Recovery(), TraceMiddleware(), MetricsMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready"})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	emails := r.Group("/emails")
	{
		emails.POST("", emailHandler.CreateEmail)
		emails.GET("", emailHandler.ListEmails)
		emails.GET("/user/:userFK", emailHandler.ListEmailsByUser)
		emails.POST("/ai/route", aiHandler.RouteEmail)
		emails.POST("/ai/sales", aiHandler.GenerateSales)
		emails.POST("/ai/followup", aiHandler.GenerateFollowup)
		emails.GET("/:id", emailHandler.GetEmail)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
