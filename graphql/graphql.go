package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"aim/go/app"
	"aim/go/config"
	"aim/go/helpers"
	"aim/go/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type OperationType string

const (
	Query    OperationType = "query"
	Mutation OperationType = "mutation"
)

// Module identifies one schema-backed backend function and how to reach it.
// A non-empty Endpoint selects the HTTP transport; otherwise Funct is invoked
// directly as a Lambda function.
type Module struct {
	Funct      string
	EndpointId string
	Endpoint   string
	XApiKey    string
	PartId     string
}

// NewModule builds a module identity, expanding the {endpoint_id} placeholder
// of the endpoint URL template.
func NewModule(funct string, endpointId string, settings config.GraphQLSettings) Module {
	module := Module{
		Funct:      funct,
		EndpointId: endpointId,
		XApiKey:    settings.XApiKey,
		PartId:     settings.PartId,
	}
	if settings.Endpoint != "" {
		module.Endpoint = strings.ReplaceAll(settings.Endpoint, "{endpoint_id}", endpointId)
	}
	return module
}

// Bridge resolves schemas and executes operations against backend GraphQL
// functions. Schemas are cached per funct for the process lifetime: no TTL,
// no eviction. Concurrent first access to the same funct may fetch
// redundantly; the last write wins and readers never see a partial schema.
type Bridge struct {
	mu      sync.RWMutex
	schemas map[string]*Schema

	lambda *lambda.Client
}

// NewBridge builds the bridge and its Lambda invocation client. With all
// three AWS settings present a static-credential client is built, otherwise
// the default chain applies.
func NewBridge(ctx context.Context, settings config.AWSSettings) (*Bridge, error) {
	var options []func(*awsconfig.LoadOptions) error
	if settings.RegionName != "" && settings.AccessKeyId != "" && settings.SecretAccessKey != "" {
		options = append(options,
			awsconfig.WithRegion(settings.RegionName),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(settings.AccessKeyId, settings.SecretAccessKey, ""),
			),
		)
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS configuration:\n>>> %w", err)
	}
	return &Bridge{
		schemas: map[string]*Schema{},
		lambda:  lambda.NewFromConfig(cfg),
	}, nil
}

// ResolveSchema returns the cached schema for the module's funct, fetching it
// through the module's transport on first use. The fetch happens outside the
// lock.
func (b *Bridge) ResolveSchema(ctx context.Context, module Module) (*Schema, error) {
	b.mu.RLock()
	schema, found := b.schemas[module.Funct]
	b.mu.RUnlock()
	if found {
		return schema, nil
	}

	data, err := b.execute(ctx, module, introspectionQuery, "IntrospectionQuery", nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching schema for funct %s:\n>>> %w", module.Funct, err)
	}
	schema, err = ParseSchema(data["__schema"])
	if err != nil {
		return nil, fmt.Errorf("error parsing schema for funct %s:\n>>> %w", module.Funct, err)
	}

	b.mu.Lock()
	b.schemas[module.Funct] = schema
	b.mu.Unlock()
	return schema, nil
}

// Execute resolves the module's schema, generates the operation document and
// dispatches it, returning the envelope's data map.
func (b *Bridge) Execute(ctx context.Context, module Module, operationName string, opType OperationType, variables map[string]any) (map[string]any, error) {
	schema, err := b.ResolveSchema(ctx, module)
	if err != nil {
		return nil, err
	}
	document, err := GenerateOperation(operationName, opType, schema)
	if err != nil {
		return nil, err
	}
	data, err := b.execute(ctx, module, document, operationName, variables)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.BridgeCalls.WithLabelValues(module.Funct, operationName, outcome).Inc()
	return data, err
}

func (b *Bridge) execute(ctx context.Context, module Module, document string, operationName string, variables map[string]any) (map[string]any, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	var envelope any
	var err error
	if module.Endpoint != "" {
		envelope, err = b.httpQuery(ctx, module, document, variables)
	} else {
		envelope, err = b.invoke(ctx, module, document, operationName, variables)
	}
	if err != nil {
		return nil, &RequestError{EndpointId: module.EndpointId, Funct: module.Funct, Err: err}
	}
	return reconcileEnvelope(module, operationName, envelope)
}

func (b *Bridge) httpQuery(ctx context.Context, module Module, document string, variables map[string]any) (any, error) {
	query, _ := app.GetCacheValue(ctx, []any{"GraphQL", "HTTPQuery"}, helpers.GraphQLQuery)
	headers := map[string]string{
		"x-api-key": module.XApiKey,
		"Part-Id":   module.PartId,
	}
	return query(ctx, module.Endpoint, headers, document, variables)
}

func (b *Bridge) invoke(ctx context.Context, module Module, document string, operationName string, variables map[string]any) (any, error) {
	payload, err := json.Marshal(map[string]any{
		"endpointId": module.EndpointId,
		"funct":      module.Funct,
		"payload": map[string]any{
			"query":         document,
			"variables":     variables,
			"operationName": operationName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling invocation payload:\n>>> %w", err)
	}
	invoke, _ := app.GetCacheValue(ctx, []any{"GraphQL", "Invoke"}, b.invokeLambda)
	return invoke(ctx, module.Funct, payload)
}

func (b *Bridge) invokeLambda(ctx context.Context, funct string, payload []byte) (any, error) {
	output, err := b.lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(funct),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("error invoking funct %s:\n>>> %w", funct, err)
	}
	if output.FunctionError != nil {
		return nil, fmt.Errorf("funct %s invocation failed: %s\n>>> %s", funct, *output.FunctionError, string(output.Payload))
	}
	var envelope any
	if err := json.Unmarshal(output.Payload, &envelope); err != nil {
		return nil, fmt.Errorf("error unmarshalling funct %s response payload:\n>>> %s\n>>> %w", funct, string(output.Payload), err)
	}
	// Backend functions may return the envelope JSON-encoded a second time.
	if encoded, isString := envelope.(string); isString {
		if err := json.Unmarshal([]byte(encoded), &envelope); err != nil {
			return nil, fmt.Errorf("error unmarshalling funct %s encoded envelope:\n>>> %s\n>>> %w", funct, encoded, err)
		}
	}
	return envelope, nil
}

// reconcileEnvelope applies the data/errors contract shared by both
// transports: a non-empty errors array wins and surfaces its first message,
// otherwise the data map is returned.
func reconcileEnvelope(module Module, operationName string, envelope any) (map[string]any, error) {
	envelopeMap, ok := envelope.(map[string]any)
	if !ok {
		return nil, &RequestError{
			EndpointId: module.EndpointId,
			Funct:      module.Funct,
			Err:        fmt.Errorf("invalid response envelope, expected map, got: %v", envelope),
		}
	}
	if errorsAny, found := envelopeMap["errors"]; found && errorsAny != nil {
		errorsList, isList := errorsAny.([]any)
		if !isList {
			return nil, &ResponseError{Funct: module.Funct, Operation: operationName, Message: fmt.Sprintf("%v", errorsAny)}
		}
		if len(errorsList) > 0 {
			message := helpers.Traverse(errorsList, []any{0, "message"}, "")
			if message == "" {
				message = fmt.Sprintf("%v", errorsList[0])
			}
			return nil, &ResponseError{Funct: module.Funct, Operation: operationName, Message: message}
		}
	}
	data, dataOk := envelopeMap["data"].(map[string]any)
	if !dataOk {
		return nil, &RequestError{
			EndpointId: module.EndpointId,
			Funct:      module.Funct,
			Err:        fmt.Errorf("data map not found in response envelope: %v", envelopeMap),
		}
	}
	return data, nil
}
