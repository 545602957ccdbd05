package config

import (
	"testing"

	"aim/go/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	defer helpers.TempEnvVars(map[string]string{
		"ENDPOINT_ID":        "",
		"SALES_REP":          "",
		"SALES_REP_EMAIL":    "",
		"PROMOTION_PRODUCTS": "",
	})()

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "marketing", s.Keyword)
	assert.Equal(t, "Marketing Team", s.SalesRep)
	assert.Equal(t, "marketing@company.com", s.SalesRepEmail)
	assert.Equal(t, "shopify_store", s.ShopifyEndpointId)
	assert.Empty(t, s.PromotionProducts)
	assert.True(t, s.ContactProfileOmitEmpty)
	assert.Equal(t, ItemSourceCaller, s.DraftOrderItemSource)
}

func TestLoadEnvOverrides(t *testing.T) {
	defer helpers.TempEnvVars(map[string]string{
		"ENDPOINT_ID":                "site_1",
		"SALES_REP":                  "West Coast Team",
		"GRAPHQL_ENDPOINT":           "https://api.example.com/{endpoint_id}/graphql",
		"GRAPHQL_X_API_KEY":          "k-123",
		"GRAPHQL_PART_ID":            "p-1",
		"CONTACT_PROFILE_OMIT_EMPTY": "false",
		"DRAFT_ORDER_ITEM_SOURCE":    ItemSourcePromotion,
	})()

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "site_1", s.EndpointId)
	assert.Equal(t, "West Coast Team", s.SalesRep)
	assert.Equal(t, "https://api.example.com/{endpoint_id}/graphql", s.GraphQL.Endpoint)
	assert.Equal(t, "k-123", s.GraphQL.XApiKey)
	assert.Equal(t, "p-1", s.GraphQL.PartId)
	assert.False(t, s.ContactProfileOmitEmpty)
	assert.Equal(t, ItemSourcePromotion, s.DraftOrderItemSource)
}

func TestLoadPromotionProductsFromEnv(t *testing.T) {
	defer helpers.TempEnvVars(map[string]string{
		"PROMOTION_PRODUCTS": `[{"handle":"espresso-blend","variant_id":"gid://shopify/ProductVariant/111","quantity":2}]`,
	})()

	s, err := Load()
	require.NoError(t, err)

	require.Len(t, s.PromotionProducts, 1)
	assert.Equal(t, "espresso-blend", s.PromotionProducts[0].Handle)
	assert.Equal(t, "gid://shopify/ProductVariant/111", s.PromotionProducts[0].VariantId)
	assert.Equal(t, 2, s.PromotionProducts[0].Quantity)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("invalid promotion blob", func(t *testing.T) {
		defer helpers.TempEnvVars(map[string]string{
			"PROMOTION_PRODUCTS": "{not json",
		})()
		_, err := Load()
		require.ErrorContains(t, err, "invalid PROMOTION_PRODUCTS")
	})

	t.Run("invalid item source", func(t *testing.T) {
		defer helpers.TempEnvVars(map[string]string{
			"PROMOTION_PRODUCTS":      "",
			"DRAFT_ORDER_ITEM_SOURCE": "sideways",
		})()
		_, err := Load()
		require.ErrorContains(t, err, "invalid draft_order_item_source")
	})
}
