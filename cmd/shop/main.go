package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/youngwishes/shop-service/internal/bootstrap"
	"github.com/youngwishes/shop-service/internal/pkg/database"
	"github.com/youngwishes/shop-service/internal/pkg/env"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	httpPort := ":8080"
	jwtSecret := "dev-secret"
	databaseSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "shop_db",
		SSlEnabled: false,
	}

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &jwtSecret)
	env.TrySetFromEnv(env.EnvDatabaseHost, &databaseSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &databaseSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &databaseSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &databaseSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &databaseSettings.DBName)

	config := bootstrap.ShopConfig{
		DbSettings: databaseSettings,
		HttpPort:   httpPort,
		JwtSecret:  jwtSecret,
	}

	app := bootstrap.NewShopApp(config, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("shop app stopped with error", "error", err.Error())
	}

	app.Shutdown()
}
