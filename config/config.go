package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// PromotionProduct is one configured promotion entry: the product handle to
// offer, the preferred variant and the quantity to order.
type PromotionProduct struct {
	Handle    string `mapstructure:"handle" json:"handle"`
	VariantId string `mapstructure:"variant_id" json:"variant_id"`
	Quantity  int    `mapstructure:"quantity" json:"quantity"`
}

// GraphQLSettings describe the HTTP transport of a backend module. Endpoint
// is a URL template with an {endpoint_id} placeholder; when empty the module
// is reached through a Lambda invocation instead.
type GraphQLSettings struct {
	Endpoint string `mapstructure:"endpoint"`
	XApiKey  string `mapstructure:"x_api_key"`
	PartId   string `mapstructure:"part_id"`
}

// AWSSettings select the Lambda invocation client. With all three set a
// static-credential client is built, otherwise the default chain is used.
type AWSSettings struct {
	RegionName      string `mapstructure:"region_name"`
	AccessKeyId     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type Settings struct {
	EndpointId        string             `mapstructure:"endpoint_id"`
	Keyword           string             `mapstructure:"keyword"`
	GoogleApiKey      string             `mapstructure:"google_api_key"`
	SalesRep          string             `mapstructure:"sales_rep"`
	SalesRepEmail     string             `mapstructure:"sales_rep_email"`
	ShopifyEndpointId string             `mapstructure:"shopify_endpoint_id"`
	PromotionProducts []PromotionProduct `mapstructure:"promotion_products"`

	GraphQL GraphQLSettings `mapstructure:"graphql"`
	AWS     AWSSettings     `mapstructure:"aws"`

	// Deployment variant switches.
	ContactProfileOmitEmpty bool   `mapstructure:"contact_profile_omit_empty"`
	DraftOrderItemSource    string `mapstructure:"draft_order_item_source"`

	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Item source strategies for place_shopify_draft_order.
const (
	ItemSourceCaller    = "caller"
	ItemSourcePromotion = "promotion"
)

// Load reads settings from an optional config.yaml plus environment
// overrides (nested keys join with underscores, e.g. GRAPHQL_X_API_KEY).
// A .env file is honored when present.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Defaults mirror the module manifest and register every key so that
	// environment overrides are picked up on Unmarshal.
	v.SetDefault("endpoint_id", "")
	v.SetDefault("keyword", "marketing")
	v.SetDefault("google_api_key", "")
	v.SetDefault("sales_rep", "Marketing Team")
	v.SetDefault("sales_rep_email", "marketing@company.com")
	v.SetDefault("shopify_endpoint_id", "shopify_store")
	v.SetDefault("graphql.endpoint", "")
	v.SetDefault("graphql.x_api_key", "")
	v.SetDefault("graphql.part_id", "")
	v.SetDefault("aws.region_name", "")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("contact_profile_omit_empty", true)
	v.SetDefault("draft_order_item_source", ItemSourceCaller)
	v.SetDefault("metrics_addr", "")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file:\n>>> %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshalling settings:\n>>> %w", err)
	}

	// The promotion list may also arrive as a JSON blob in the environment,
	// the way the hosting runtime passes module settings.
	if len(s.PromotionProducts) == 0 {
		if blob := os.Getenv("PROMOTION_PRODUCTS"); blob != "" {
			if err := json.Unmarshal([]byte(blob), &s.PromotionProducts); err != nil {
				return nil, fmt.Errorf("invalid PROMOTION_PRODUCTS value: %s\n>>> %w", blob, err)
			}
		}
	}

	if s.DraftOrderItemSource != ItemSourceCaller && s.DraftOrderItemSource != ItemSourcePromotion {
		return nil, fmt.Errorf("invalid draft_order_item_source: %s", s.DraftOrderItemSource)
	}

	return &s, nil
}
