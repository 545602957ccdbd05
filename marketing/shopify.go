package marketing

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"aim/go/config"
	"aim/go/graphql"
	"aim/go/helpers"
)

var digitRun = regexp.MustCompile(`\d+`)

// GetShopifyProductData lists the configured promotion products with their
// selected variant pricing. Missing promotion config or endpoint yields an
// empty list, not an error.
func (c *Collection) GetShopifyProductData(ctx context.Context, request ProductDataRequest) ([]map[string]any, error) {
	if len(c.settings.PromotionProducts) == 0 || request.EndpointId == "" {
		return []map[string]any{}, nil
	}

	// Last configured entry wins when a handle repeats.
	configured := map[string]config.PromotionProduct{}
	handles := []string{}
	for _, product := range c.settings.PromotionProducts {
		if product.Handle == "" {
			continue
		}
		if _, seen := configured[product.Handle]; !seen {
			handles = append(handles, product.Handle)
		}
		configured[product.Handle] = product
	}

	variables := map[string]any{
		"shop":       request.EndpointId,
		"attributes": map[string]any{"handle": strings.Join(handles, ",")},
	}
	result, err := c.bridge.Execute(ctx, c.shopifyModule(), "productList", graphql.Query, variables)
	if err != nil {
		return nil, err
	}

	products := helpers.Traverse(result, []any{"productList", "productList"}, []any(nil))
	productData := make([]map[string]any, 0, len(products))
	for _, entry := range products {
		product, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		promotion, found := configured[stringField(product, "handle")]
		if !found {
			continue
		}
		variants, _ := product["variants"].([]any)
		var selected map[string]any
		for _, candidate := range variants {
			variant, ok := candidate.(map[string]any)
			if !ok {
				continue
			}
			// Falls back to the last variant seen when no id matches.
			selected = variant
			if stringField(variant, "id") == promotion.VariantId {
				break
			}
		}
		if selected == nil {
			continue
		}
		title := stringField(product, "title")
		if len(variants) != 1 {
			title = fmt.Sprintf("%s - %s", title, stringField(selected, "title"))
		}
		productData = append(productData, map[string]any{
			"title":     title,
			"handle":    stringField(product, "handle"),
			"price":     selected["price"],
			"body_html": product["bodyHtml"],
		})
	}
	return productData, nil
}

// PlaceShopifyDraftOrder creates a draft order for the contact. Line items
// come from the caller or from the configured promotion products, per the
// configured source strategy.
func (c *Collection) PlaceShopifyDraftOrder(ctx context.Context, request DraftOrderRequest) (map[string]any, error) {
	if len(c.settings.PromotionProducts) == 0 {
		return nil, errors.New("no promotion products found")
	}
	if request.EndpointId == "" {
		return nil, errors.New("no endpoint id provided")
	}

	items := request.Items
	if c.settings.DraftOrderItemSource == config.ItemSourcePromotion {
		items = c.promotionItems()
	}
	variables := map[string]any{
		"shop":            request.EndpointId,
		"email":           request.Contact.Email,
		"lineItems":       draftOrderLineItems(items),
		"shippingAddress": request.ShippingAddress,
		"billingAddress":  request.BillingAddress,
	}
	result, err := c.bridge.Execute(ctx, c.shopifyModule(), "createDraftOrder", graphql.Mutation, variables)
	if err != nil {
		return nil, err
	}
	// Draft orders keep their wire casing; Shopify field names are the
	// caller contract here.
	draftOrder := helpers.Traverse(result, []any{"createDraftOrder", "draftOrder"}, map[string]any(nil))
	if len(draftOrder) == 0 {
		return nil, nil
	}
	return draftOrder, nil
}

// draftOrderLineItems reduces order items to the wire shape: the first
// digit run of each variant id, quantity defaulted to one. Items without a
// numeric variant id are dropped.
func draftOrderLineItems(items []DraftOrderItem) []map[string]any {
	lineItems := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.VariantId == "" {
			continue
		}
		variantId := digitRun.FindString(item.VariantId)
		if variantId == "" {
			continue
		}
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		lineItems = append(lineItems, map[string]any{
			"variant_id": variantId,
			"quantity":   quantity,
		})
	}
	return lineItems
}

func (c *Collection) promotionItems() []DraftOrderItem {
	items := make([]DraftOrderItem, 0, len(c.settings.PromotionProducts))
	for _, product := range c.settings.PromotionProducts {
		quantity := product.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, DraftOrderItem{VariantId: product.VariantId, Quantity: &quantity})
	}
	return items
}
