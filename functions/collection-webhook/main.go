package main

import (
	"context"

	"aim/go/app"
	"aim/go/config"
	"aim/go/graphql"
	"aim/go/logging"
	"aim/go/marketing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	collection *marketing.Collection
)

// handler treats the webhook body as a collected dataset: storefront forms
// post their fields as one JSON document, signed by the shop.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if err := validateWebhook(request); err != nil {
		logger.Warn("Invalid storefront webhook", zap.Error(err))
		return app.Response(400, "Error! Invalid storefront webhook")
	}

	_, err := collection.Dispatch(ctx, marketing.ToolDataCollect, map[string]any{
		"data_collect_dataset": request.Body,
	})
	if err != nil {
		return app.Response(400, "Error! Could not process the collected data")
	}

	return app.Response(200, "OK")
}

func main() {
	logger = logging.New()
	defer logger.Sync()

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("Error loading settings", zap.Error(err))
	}
	bridge, err := graphql.NewBridge(context.Background(), settings.AWS)
	if err != nil {
		logger.Fatal("Error building GraphQL bridge", zap.Error(err))
	}
	collection = marketing.NewCollection(logger, settings, bridge)

	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(handler))),
		"collection-webhook",
	))
}
