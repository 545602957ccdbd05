package marketing

// Published tool names.
const (
	ToolGetGooglePlaceSetting  = "get_google_place_setting"
	ToolGetQuestionGroup       = "get_question_group"
	ToolGetContactProfile      = "get_contact_profile"
	ToolDataCollect            = "data_collect"
	ToolSubmitRequest          = "submit_request"
	ToolGetShopifyProductData  = "get_shopify_product_data"
	ToolPlaceShopifyDraftOrder = "place_shopify_draft_order"
	ToolGetPlace               = "get_place"
)

// Tool is one manifest entry: the published name, its description and the
// JSON Schema its arguments are validated against.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func draftOrderAddressSchema(description string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": description,
		"properties": map[string]any{
			"address1":      map[string]any{"type": "string"},
			"address2":      map[string]any{"type": "string"},
			"city":          map[string]any{"type": "string"},
			"province_code": map[string]any{"type": "string"},
			"province":      map[string]any{"type": "string"},
			"zip":           map[string]any{"type": "string"},
			"country":       map[string]any{"type": "string"},
			"country_code":  map[string]any{"type": "string"},
			"company":       map[string]any{"type": "string"},
			"first_name":    map[string]any{"type": "string"},
			"last_name":     map[string]any{"type": "string"},
			"phone":         map[string]any{"type": "string"},
		},
	}
}

// Tools is the published tool registry.
var Tools = []Tool{
	{
		Name:        ToolGetGooglePlaceSetting,
		Description: "Get Google Place API settings for marketing collection",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
			"required":   []any{},
		},
	},
	{
		Name:        ToolGetQuestionGroup,
		Description: "Get question group for a place",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"place_uuid": map[string]any{"type": "string", "description": "UUID of the place"},
			},
			"required": []any{"place_uuid"},
		},
	},
	{
		Name:        ToolGetContactProfile,
		Description: "Get or create contact profile",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"contact": map[string]any{
					"type":        "object",
					"description": "Contact information",
					"properties": map[string]any{
						"email":      map[string]any{"type": "string"},
						"first_name": map[string]any{"type": "string"},
						"last_name":  map[string]any{"type": "string"},
					},
					"required": []any{"email"},
				},
				"place": map[string]any{
					"type":        "object",
					"description": "Place information",
					"properties": map[string]any{
						"place_uuid": map[string]any{"type": "string"},
					},
					"required": []any{"place_uuid"},
				},
			},
			"required": []any{"contact", "place"},
		},
	},
	{
		Name:        ToolDataCollect,
		Description: "Collect data and create/update contact profile",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"data_collect_dataset": map[string]any{
					"type":        "string",
					"description": "JSON string containing collected data including place_uuid, email, first_name, last_name and other fields",
				},
			},
			"required": []any{"data_collect_dataset"},
		},
	},
	{
		Name:        ToolSubmitRequest,
		Description: "Submit a contact request",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"place_uuid": map[string]any{
					"type":        "string",
					"description": "UUID of the place",
				},
				"contact_uuid": map[string]any{
					"type":        "string",
					"description": "UUID of the contact",
				},
				"request_title": map[string]any{
					"type":        "string",
					"description": "Title of the request",
				},
				"request_detail": map[string]any{
					"type":        "string",
					"description": "Detailed description of the request",
				},
			},
			"required": []any{"place_uuid", "contact_uuid", "request_title", "request_detail"},
		},
	},
	{
		Name:        ToolGetShopifyProductData,
		Description: "Get Shopify product data for promotion",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
			"required":   []any{},
		},
	},
	{
		Name:        ToolPlaceShopifyDraftOrder,
		Description: "Place a Shopify draft order",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"contact": map[string]any{
					"type":        "object",
					"description": "Contact information",
					"properties": map[string]any{
						"email": map[string]any{"type": "string"},
					},
					"required": []any{"email"},
				},
				"shipping_address": draftOrderAddressSchema("Shipping address information"),
				"billing_address":  draftOrderAddressSchema("Billing address information"),
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"variant_id": map[string]any{"type": "string"},
							"quantity":   map[string]any{"type": "integer"},
						},
					},
					"description": "Array of line items for the draft order",
				},
			},
			"required": []any{"contact"},
		},
	},
	{
		Name:        ToolGetPlace,
		Description: "Get or create a place by UUID or by location",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"place_uuid": map[string]any{
					"type":        "string",
					"description": "UUID of the place",
				},
				"region": map[string]any{
					"type":        "string",
					"description": "Region of the place",
				},
				"latitude":  map[string]any{"type": "number"},
				"longitude": map[string]any{"type": "number"},
				"address": map[string]any{
					"type":        "string",
					"description": "Street address of the place",
				},
				"business_name": map[string]any{"type": "string"},
				"phone_number":  map[string]any{"type": "string"},
				"website":       map[string]any{"type": "string"},
				"types": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"anyOf": []any{
				map[string]any{"required": []any{"place_uuid"}},
				map[string]any{"required": []any{"region", "latitude", "longitude", "address"}},
			},
		},
	},
}

// ToolByName resolves a manifest entry.
func ToolByName(name string) (*Tool, bool) {
	for i := range Tools {
		if Tools[i].Name == name {
			return &Tools[i], true
		}
	}
	return nil, false
}
