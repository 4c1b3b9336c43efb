package domain

import "unicode/utf8"

// List of possible shipment result statuses
const (
	StatusSuccess ShipmentStatus = "Success"
	StatusError   ShipmentStatus = "Error"
)

// ShipmentStatus reports whether the carrier accepted a shipment.
type ShipmentStatus string

// Recipient is the carrier-side address block derived from a business partner.
type Recipient struct {
	CC         string `json:"cc"`
	Region     string `json:"region"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	Person     string `json:"person"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// Insurance is the insured amount attached to a shipment.
type Insurance struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// ShipmentOptions is the fixed option set sent with every shipment.
type ShipmentOptions struct {
	PackageType      int       `json:"package_type"`
	OnlyRecipient    int       `json:"only_recipient"`
	Signature        int       `json:"signature"`
	Return           int       `json:"return"`
	Insurance        Insurance `json:"insurance"`
	LargeFormat      int       `json:"large_format"`
	LabelDescription string    `json:"label_description"`
	AgeCheck         int       `json:"age_check"`
}

// ShipmentRequest is a single shipment as the carrier expects it.
type ShipmentRequest struct {
	ReferenceIdentifier string          `json:"reference_identifier"`
	Recipient           Recipient       `json:"recipient"`
	Options             ShipmentOptions `json:"options"`
	Carrier             int             `json:"carrier"`
}

// ShipmentResult is the outcome returned to the caller. ProviderResponse is
// the carrier's raw body, passed through unparsed even on rejection.
type ShipmentResult struct {
	Status           ShipmentStatus
	DocEntry         int64
	ProviderResponse string
}

// TrimToMax truncates s to at most max characters. The carrier schema caps
// address fields at 40 characters. Counting is per rune so multibyte input
// is never cut mid-character.
func TrimToMax(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
