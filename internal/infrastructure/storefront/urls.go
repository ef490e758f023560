// Package storefront resolves shopper-facing page URLs.
package storefront

import (
	"fmt"
	"strings"

	"paygate/internal/domain/order"
)

// URLProvider builds the storefront pages the shopper lands on after the
// gateway reports a payment result.
type URLProvider struct {
	baseURL string
}

func NewURLProvider(baseURL string) *URLProvider {
	return &URLProvider{baseURL: strings.TrimRight(baseURL, "/")}
}

// OrderReceivedURL is the order confirmation page.
func (p *URLProvider) OrderReceivedURL(o *order.Order) string {
	return fmt.Sprintf("%s/checkout/order-received/%s", p.baseURL, o.Number())
}

// OrderPaymentRetryURL is the page where the shopper can retry payment.
func (p *URLProvider) OrderPaymentRetryURL(o *order.Order) string {
	return fmt.Sprintf("%s/checkout/order-pay/%s", p.baseURL, o.Number())
}
