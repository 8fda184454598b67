package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/hostel/backend/docs"
	"github.com/hostel/backend/internal/app"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

//	@title			Hostel Management API
//	@version		1.0
//	@description	Hostel backend: rooms, tenants, monthly bills and complaints.

//	@contact.name	API Support
//	@contact.url	https://github.com/hostel/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.FromAppConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = app.Serve(ctx, cfg, log)
	stop()

	if err != nil {
		log.Error("Server stopped with error", zap.Error(err))
	}
	_ = logger.Sync(log)
	if err != nil {
		os.Exit(1)
	}
}
