package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/adilg123/huffpack/internal/api"
	"github.com/adilg123/huffpack/internal/config"
	"github.com/adilg123/huffpack/internal/logger"
)

func main() {
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	l := logger.New()
	router := api.NewRouter(api.NewHandler(cfg, l))

	l.Infof("starting huffpack server on port %s (%s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
