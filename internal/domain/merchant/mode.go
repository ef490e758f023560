package merchant

import "fmt"

// Mode selects which MMG checkout environment tokens are issued against.
type Mode string

const (
	ModeLive Mode = "live"
	ModeDemo Mode = "demo"
)

func NewMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLive, ModeDemo:
		return Mode(s), nil
	case "":
		return ModeDemo, nil
	default:
		return "", fmt.Errorf("invalid checkout mode %q", s)
	}
}

func (m Mode) String() string {
	return string(m)
}

const (
	liveCheckoutURL = "https://gtt-checkout.qpass.com:8743/checkout-endpoint/home"
	demoCheckoutURL = "https://gtt-uat-checkout.qpass.com:8743/checkout-endpoint/home"
)

// CheckoutEndpoint returns the hosted payment page URL for the mode.
func (m Mode) CheckoutEndpoint() string {
	if m == ModeLive {
		return liveCheckoutURL
	}
	return demoCheckoutURL
}
