// Package marketing is the tool facade of the collection service: the
// manifest of published tools, the dispatcher that validates and routes
// invocations, and one handler per tool on top of the GraphQL bridge.
package marketing

import (
	"aim/go/config"
	"aim/go/graphql"

	"go.uber.org/zap"
)

// Backend functions the facade talks to.
const (
	MarketingFunct = "ai_marketing_graphql"
	ShopifyFunct   = "shopify_app_engine_graphql"
)

// Collection owns what the handlers share: the logger, the deployment
// settings and the GraphQL bridge.
type Collection struct {
	logger   *zap.Logger
	settings *config.Settings
	bridge   *graphql.Bridge
}

func NewCollection(logger *zap.Logger, settings *config.Settings, bridge *graphql.Bridge) *Collection {
	return &Collection{logger: logger, settings: settings, bridge: bridge}
}

// marketingModule is the AI marketing backend for the calling endpoint.
func (c *Collection) marketingModule(endpointId string) graphql.Module {
	return graphql.NewModule(MarketingFunct, endpointId, c.settings.GraphQL)
}

// shopifyModule is the Shopify app engine backend, always reached through
// the configured shop endpoint.
func (c *Collection) shopifyModule() graphql.Module {
	return graphql.NewModule(ShopifyFunct, c.settings.ShopifyEndpointId, c.settings.GraphQL)
}

func stringField(record map[string]any, key string) string {
	value, _ := record[key].(string)
	return value
}
