package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/youngwishes/shop-service/internal/bootstrap"
	"github.com/youngwishes/shop-service/internal/pkg/database"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

const jwtSecret = "integration-secret"

type shopEnv struct {
	baseURL string
	db      *sql.DB
}

// startShopApp boots a disposable postgres container and the full shop
// application on top of it, returning the base url to hit and a raw
// database handle for seeding and assertions.
func startShopApp(t *testing.T, httpPort string) shopEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("shop_db"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool {
		timeCtx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
		defer cancel()
		return db.PingContext(timeCtx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	dbSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		DBName:     "shop_db",
		SSlEnabled: false,
	}

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	dbSettings.Host = dbHost
	dbSettings.Port = dbPort.Port()

	app := bootstrap.NewShopApp(bootstrap.ShopConfig{
		DbSettings: dbSettings,
		HttpPort:   httpPort,
		JwtSecret:  jwtSecret,
	}, logging.StdoutLogger)

	go func() {
		err := app.Run(t.Context())
		require.NoError(t, err)
	}()
	t.Cleanup(func() {
		app.Shutdown()
	})

	baseURL := "http://localhost" + httpPort

	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/products")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 500*time.Millisecond)

	return shopEnv{baseURL: baseURL, db: db}
}

func (e shopEnv) seedProduct(t *testing.T, title string, price, count uint32, status domain.ProductStatus) int {
	t.Helper()

	var id int
	err := e.db.QueryRowContext(
		t.Context(),
		`INSERT INTO products (title, price, count, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		title, price, count, status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func (e shopEnv) authenticate(t *testing.T, username, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)

	resp, err := http.Post(e.baseURL+"/api/auth", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var authResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&authResp))
	require.NotEmpty(t, authResp.Token)

	return authResp.Token
}

func (e shopEnv) setBalance(t *testing.T, token string, balance uint32) {
	t.Helper()

	customerId := e.customerId(t, token)
	_, err := e.db.ExecContext(t.Context(), `UPDATE customers SET balance = $1 WHERE id = $2`, balance, customerId)
	require.NoError(t, err)
}

func (e shopEnv) customerId(t *testing.T, token string) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, e.baseURL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))

	return info.ID
}

func (e shopEnv) buyProduct(t *testing.T, token string, productId int, quantity uint32) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"product_id": productId,
		"quantity":   quantity,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, e.baseURL+"/api/buy", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func (e shopEnv) productCount(t *testing.T, productId int) uint32 {
	t.Helper()

	var count uint32
	err := e.db.QueryRowContext(t.Context(), `SELECT count FROM products WHERE id = $1`, productId).Scan(&count)
	require.NoError(t, err)

	return count
}

func (e shopEnv) customerBalance(t *testing.T, customerId int) uint32 {
	t.Helper()

	var balance uint32
	err := e.db.QueryRowContext(t.Context(), `SELECT balance FROM customers WHERE id = $1`, customerId).Scan(&balance)
	require.NoError(t, err)

	return balance
}
