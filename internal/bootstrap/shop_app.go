package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"

	authapp "github.com/youngwishes/shop-service/internal/auth/application"
	authdomain "github.com/youngwishes/shop-service/internal/auth/domain"
	authhttp "github.com/youngwishes/shop-service/internal/auth/infrastructure/http"
	authpg "github.com/youngwishes/shop-service/internal/auth/infrastructure/postgres"
	"github.com/youngwishes/shop-service/internal/pkg/database"
	"github.com/youngwishes/shop-service/internal/pkg/jwt"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
	"github.com/youngwishes/shop-service/internal/shop/application"
	shophttp "github.com/youngwishes/shop-service/internal/shop/infrastructure/http"
	shoppg "github.com/youngwishes/shop-service/internal/shop/infrastructure/postgres"
	"github.com/youngwishes/shop-service/migrations"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDir     = "."
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

type ShopApp struct {
	cfg    ShopConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewShopApp(cfg ShopConfig, logger logging.Logger) *ShopApp {
	return &ShopApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *ShopApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.Embed, migrationsDir, migrationsDriver, migrationsDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	usersRepository := authpg.NewUsersRepository(dbpool, txManager)
	authenticator := authapp.NewAuthenticator(
		usersRepository,
		authdomain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		a.cfg.JwtSecret,
	)
	authHandler := authhttp.NewAuthHandler(authenticator, logger)

	productsRepository := shoppg.NewProductsRepository(dbpool)
	customersRepository := shoppg.NewCustomersRepository(dbpool)
	purchaseHandler := shoppg.NewPurchaseHandler(dbpool, logger)

	purchaseCase := application.NewPurchaseCase(purchaseHandler)
	catalogCase := application.NewCatalogCase(productsRepository)
	customerInfoCase := application.NewCustomerInfoCase(customersRepository, productsRepository, logger)

	shopHandler := shophttp.NewShopHandler(purchaseCase, catalogCase, customerInfoCase, logger)

	router := gin.Default()
	router.Use(shophttp.NewRequestIDMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth", authHandler.Authenticate)
		api.GET("/products", shopHandler.ListProducts)
		api.GET("/products/:"+shophttp.ProductIdKey, shopHandler.GetProduct)

		authenticated := api.Group("/", shophttp.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser(), logger))
		{
			authenticated.GET("/customers", shopHandler.ListCustomers)

			customers := authenticated.Group("/", shophttp.NewCustomerMiddleware(customersRepository, logger))
			{
				customers.POST("/buy", shopHandler.BuyProduct)
				customers.GET("/me", shopHandler.GetCustomerInfo)
			}
		}
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", a.server.Addr)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *ShopApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("failed to shutdown http server", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("http server stopped")
}
