package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
)

// validateWebhook checks a storefront form webhook: the shop domain must be
// the configured one and the body HMAC, keyed with the shop secret, must
// match the x-shopify-hmac-sha256 header.
func validateWebhook(request events.APIGatewayProxyRequest) error {
	shopDomain, okDomain := request.Headers["x-shopify-shop-domain"]
	hmacHeader, okHeader := request.Headers["x-shopify-hmac-sha256"]
	if !(okDomain && okHeader && shopDomain != "" && hmacHeader != "") {
		return fmt.Errorf("invalid or incomplete webhook headers")
	}

	expectedDomain := os.Getenv("STOREFRONT_DOMAIN")
	secret := os.Getenv("STOREFRONT_SECRET")
	if expectedDomain == "" || secret == "" {
		return fmt.Errorf("invalid or incomplete storefront environment variables")
	}
	if shopDomain != expectedDomain {
		return fmt.Errorf("webhook from unexpected shop domain: %s", shopDomain)
	}

	if len(request.Body) == 0 {
		return fmt.Errorf("empty request")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(request.Body))
	calculated := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(calculated), []byte(hmacHeader)) {
		return fmt.Errorf("the webhook signature is not valid")
	}

	return nil
}
