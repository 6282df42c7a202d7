package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/cardforge/internal/api"
	"github.com/youruser/cardforge/internal/render"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// One cache for the whole server: decoded fonts and images are
	// shared across requests, and the cache synchronizes internally.
	cache := render.NewResourceCache()
	renderer := render.NewCardRenderer(
		render.WithSharedCache(cache),
		render.WithLogger(log),
	)

	r := gin.Default()
	api.NewHandler(renderer, log).RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("starting server", zap.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal("server exited", zap.Error(err))
	}
}
