package main

import (
	"fmt"

	"smartkasir/api"
	"smartkasir/internal/config"
	"smartkasir/internal/pos"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	storage, err := pos.NewFileStorage(cfg.DataDir)
	if err != nil {
		panic(fmt.Errorf("error opening data dir: %v", err))
	}
	svc := pos.NewService(storage, logger)

	r := gin.Default()
	api.InitRoutes(r, svc, logger)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
