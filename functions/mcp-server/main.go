package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"aim/go/app"
	"aim/go/config"
	"aim/go/graphql"
	"aim/go/logging"
	"aim/go/marketing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// toolHandler adapts one manifest tool to the MCP contract: tool failures
// come back as IsError results, not protocol errors.
func toolHandler(collection *marketing.Collection, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := map[string]any{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &arguments); err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("invalid arguments: %v", err)}},
					IsError: true,
				}, nil
			}
		}

		result, err := collection.Dispatch(ctx, name, arguments)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		body, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("error marshalling %s result:\n>>> %w", name, err)
		}
		return &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: string(body)}},
			StructuredContent: result,
		}, nil
	}
}

func inputSchema(tool marketing.Tool) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("error marshalling %s input schema:\n>>> %w", tool.Name, err)
	}
	schema := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, fmt.Errorf("error decoding %s input schema:\n>>> %w", tool.Name, err)
	}
	return schema, nil
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
	collection := marketing.NewCollection(logger, settings, bridge)

	server := mcp.NewServer(&mcp.Implementation{Name: "marketing-collection"}, nil)
	for _, tool := range marketing.Tools {
		schema, err := inputSchema(tool)
		if err != nil {
			logger.Fatal("Error building tool schema", zap.String("tool", tool.Name), zap.Error(err))
		}
		server.AddTool(&mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schema,
		}, toolHandler(collection, tool.Name))
	}

	if addr := settings.MetricsAddr; addr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			logger.Info("Metrics server listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	ctx := app.ContextWithCache(context.Background())
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
