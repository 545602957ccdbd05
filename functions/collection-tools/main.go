package main

import (
	"context"
	"encoding/json"
	"errors"

	"aim/go/app"
	"aim/go/config"
	"aim/go/graphql"
	"aim/go/logging"
	"aim/go/marketing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

type toolRequest struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

var collection *marketing.Collection

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	var body toolRequest
	if err := json.Unmarshal([]byte(request.Body), &body); err != nil {
		return app.Response(400, "Invalid JSON in request body")
	}
	if body.Tool == "" {
		return app.Response(400, "Missing tool name in request body")
	}

	result, err := collection.Dispatch(ctx, body.Tool, body.Arguments)
	if err != nil {
		var validationErr *marketing.ValidationError
		var notFoundErr *marketing.NotFoundError
		switch {
		case errors.As(err, &validationErr):
			return app.Response(400, validationErr.Error())
		case errors.As(err, &notFoundErr):
			return app.Response(404, notFoundErr.Error())
		default:
			return app.Response(500, "Internal Error")
		}
	}
	return app.JsonResponse(200, result)
}

func main() {
	logger := logging.New()
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
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.AuthMiddleware(handler)))),
		"collection-tools",
	))
}
