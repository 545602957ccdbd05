package marketing

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"aim/go/events"
	"aim/go/graphql"
	"aim/go/metrics"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// Tools whose results fan out to the collection exchange.
var publishedTools = map[string]bool{
	ToolDataCollect:            true,
	ToolSubmitRequest:          true,
	ToolPlaceShopifyDraftOrder: true,
}

// Dispatch is the single entry path for every transport: it validates the
// raw arguments against the manifest schema, routes to the handler, logs the
// outcome once and fans successful collection results out to the exchange.
func (c *Collection) Dispatch(ctx context.Context, tool string, arguments map[string]any) (any, error) {
	started := time.Now()
	correlationId := uuid.NewString()
	logger := c.logger.With(
		zap.String("tool", tool),
		zap.String("correlation_id", correlationId),
	)
	logger.Info("Invoking tool", zap.Any("arguments", arguments))

	result, err := c.dispatch(ctx, tool, arguments)

	duration := time.Since(started)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		logger.Error("Tool invocation failed", zap.Error(err), zap.Duration("duration", duration))
	} else {
		logger.Info("Tool invocation completed", zap.Duration("duration", duration))
	}
	metrics.ToolInvocations.WithLabelValues(tool, outcome).Inc()
	metrics.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())

	if err == nil {
		c.publishResult(ctx, logger, tool, correlationId, result)
	}
	return result, err
}

func (c *Collection) dispatch(ctx context.Context, tool string, arguments map[string]any) (any, error) {
	manifestTool, found := ToolByName(tool)
	if !found {
		return nil, fmt.Errorf("unknown tool: %s", tool)
	}

	args := map[string]any{}
	maps.Copy(args, arguments)
	if err := validateArguments(tool, manifestTool.InputSchema, args); err != nil {
		return nil, err
	}
	// The hosting runtime injects the calling endpoint; default it from
	// configuration when the caller does not carry one.
	if endpointId, _ := args["endpoint_id"].(string); endpointId == "" {
		args["endpoint_id"] = c.settings.EndpointId
	}

	switch tool {
	case ToolGetGooglePlaceSetting:
		request, err := graphql.Decode[GooglePlaceSettingRequest](args)
		if err != nil {
			return nil, err
		}
		return c.GetGooglePlaceSetting(ctx, request)
	case ToolGetQuestionGroup:
		request, err := graphql.Decode[QuestionGroupRequest](args)
		if err != nil {
			return nil, err
		}
		return c.GetQuestionGroup(ctx, request)
	case ToolGetContactProfile:
		request, err := graphql.Decode[ContactProfileRequest](args)
		if err != nil {
			return nil, err
		}
		return c.GetContactProfile(ctx, request)
	case ToolDataCollect:
		request, err := graphql.Decode[DataCollectRequest](args)
		if err != nil {
			return nil, err
		}
		return c.DataCollect(ctx, request)
	case ToolSubmitRequest:
		request, err := graphql.Decode[RequestSubmission](args)
		if err != nil {
			return nil, err
		}
		return c.SubmitRequest(ctx, request)
	case ToolGetShopifyProductData:
		request, err := graphql.Decode[ProductDataRequest](args)
		if err != nil {
			return nil, err
		}
		return c.GetShopifyProductData(ctx, request)
	case ToolPlaceShopifyDraftOrder:
		request, err := graphql.Decode[DraftOrderRequest](args)
		if err != nil {
			return nil, err
		}
		return c.PlaceShopifyDraftOrder(ctx, request)
	case ToolGetPlace:
		request, err := graphql.Decode[PlaceRequest](args)
		if err != nil {
			return nil, err
		}
		return c.GetPlace(ctx, request)
	}
	return nil, fmt.Errorf("tool %s has no handler", tool)
}

func validateArguments(tool string, schema map[string]any, arguments map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(arguments),
	)
	if err != nil {
		return fmt.Errorf("error validating %s arguments:\n>>> %w", tool, err)
	}
	if !result.Valid() {
		fields := make([]string, 0, len(result.Errors()))
		for _, description := range result.Errors() {
			fields = append(fields, description.String())
		}
		return &ValidationError{Tool: tool, Fields: fields}
	}
	return nil
}

// publishResult fans a completed collection operation out, best-effort:
// skipped silently when RabbitMQ is not configured, logged at warn when the
// publish fails. The tool result is never altered.
func (c *Collection) publishResult(ctx context.Context, logger *zap.Logger, tool string, correlationId string, result any) {
	if !publishedTools[tool] || !events.Configured() {
		return
	}
	body, err := json.Marshal(map[string]any{
		"tool":           tool,
		"correlation_id": correlationId,
		"result":         result,
	})
	if err != nil {
		logger.Warn("Error marshalling collection event", zap.Error(err))
		metrics.EventPublishFailures.WithLabelValues(tool).Inc()
		return
	}
	headers := amqp.Table{"tool": tool, "correlation-id": correlationId}
	if err := events.Publish(ctx, tool, body, headers); err != nil {
		logger.Warn("Error publishing collection event", zap.Error(err))
		metrics.EventPublishFailures.WithLabelValues(tool).Inc()
	}
}
