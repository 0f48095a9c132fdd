package models

// PurchaseQuote is what the core backend returns for a purchase request:
// either an amount still owed (checkout required) or nothing to pay.
type PurchaseQuote struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`   // minor-unit-free, e.g. 49.50
	Currency  string  `json:"currency"` // ISO 4217, defaults to "usd"
	Paid      bool    `json:"paid"`
}

// PurchaseResult is returned to the browser: a hosted-checkout redirect
// URL, or a synchronous success flag when nothing was owed.
type PurchaseResult struct {
	RedirectURL string `json:"redirectUrl,omitempty"`
	Paid        bool   `json:"paid"`
	Reference   string `json:"reference,omitempty"`
}
