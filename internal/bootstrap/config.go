package bootstrap

import "github.com/youngwishes/shop-service/internal/pkg/database"

type ShopConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string
}
