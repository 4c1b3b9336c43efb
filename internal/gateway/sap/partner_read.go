package sap

import "service-shipment-bridge/internal/domain"

// partnerDefaults is the tolerant-read default table for business partner
// fields. A field that is absent or not a string takes its default; the
// postal code default is a deliberate non-empty sentinel because the carrier
// rejects blank postal codes.
var partnerDefaults = map[string]string{
	"Address":       "",
	"ZipCode":       "0000XX",
	"City":          "",
	"Country":       "",
	"ContactPerson": "SAP Contact",
	"Phone1":        "",
	"EmailAddress":  "",
}

func partnerFromRecord(cardCode string, record map[string]any) domain.BusinessPartner {
	return domain.BusinessPartner{
		CardCode:      cardCode,
		Address:       stringField(record, "Address"),
		ZipCode:       stringField(record, "ZipCode"),
		City:          stringField(record, "City"),
		Country:       stringField(record, "Country"),
		ContactPerson: stringField(record, "ContactPerson"),
		Phone:         stringField(record, "Phone1"),
		Email:         stringField(record, "EmailAddress"),
	}
}

func stringField(record map[string]any, key string) string {
	if v, ok := record[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return partnerDefaults[key]
}
