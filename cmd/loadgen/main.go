// Request generator that seeds the log pipeline with realistic purchase
// failures: it replays every rejection shape the shop can produce against
// a running instance so dashboards have something to show.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/youngwishes/shop-service/internal/pkg/env"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
)

const (
	envApiUrl               = "API_URL"
	envValidUserToken       = "FULL_VALID_USER_TOKEN"
	envPoorBalanceUserToken = "NOT_ENOUGH_BALANCE_USER_TOKEN"

	productIdFullValid  = 1
	productIdOutOfStock = 2
	productIdArchived   = 3
	productIdNotFound   = 100

	maxRequestsPerShape = 15
	requestPause        = 100 * time.Millisecond
)

type buyRequest struct {
	ProductID int    `json:"product_id"`
	Quantity  uint32 `json:"quantity"`
}

type requestShape struct {
	token     string
	productId int
}

func main() {
	iterations := flag.Int("iterations", 1, "number of populate rounds to run")
	flag.Parse()

	logger := logging.StdoutLogger

	// Same contract as the ops scripts: .env first, real env wins.
	_ = godotenv.Load()

	apiUrl := ""
	validToken := ""
	poorToken := ""

	env.TrySetFromEnv(envApiUrl, &apiUrl)
	env.TrySetFromEnv(envValidUserToken, &validToken)
	env.TrySetFromEnv(envPoorBalanceUserToken, &poorToken)

	if apiUrl == "" || validToken == "" || poorToken == "" {
		logger.Error("missing required environment",
			"api_url_set", apiUrl != "",
			"valid_token_set", validToken != "",
			"poor_token_set", poorToken != "")
		os.Exit(1)
	}

	client := resty.New().SetBaseURL(apiUrl)

	for i := 0; i < *iterations; i++ {
		if err := populate(context.Background(), client, validToken, poorToken); err != nil {
			logger.Error("populate round failed", "error", err.Error(), "round", i)
			os.Exit(1)
		}

		logger.Info("populate round finished", "round", i)
	}
}

func populate(ctx context.Context, client *resty.Client, validToken, poorToken string) error {
	shapes := []requestShape{
		{token: validToken, productId: productIdOutOfStock},
		{token: validToken, productId: productIdNotFound},
		{token: validToken, productId: productIdArchived},
		{token: poorToken, productId: productIdFullValid},
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for _, shape := range shapes {
		sh := shape
		group.Go(func() error {
			count := rand.Intn(maxRequestsPerShape + 1)
			for i := 0; i < count; i++ {
				if err := makeBuyRequest(groupCtx, client, sh.token, sh.productId); err != nil {
					return err
				}

				time.Sleep(requestPause)
			}

			return nil
		})
	}

	return group.Wait()
}

func makeBuyRequest(ctx context.Context, client *resty.Client, token string, productId int) error {
	// Rejections are the point here, so any completed response counts.
	_, err := client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(buyRequest{ProductID: productId, Quantity: 1}).
		Post("/api/buy")

	return err
}
