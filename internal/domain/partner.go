package domain

// DeliveryNote is the slice of an ERP delivery note this service consumes.
// CardCode links the note to its business partner.
type DeliveryNote struct {
	DocEntry int64
	CardCode string
}

// BusinessPartner holds the contact and address fields of an ERP business
// partner record. Values arrive already defaulted by the gateway's tolerant
// read, so every field is safe to use as-is.
type BusinessPartner struct {
	CardCode      string
	Address       string
	ZipCode       string
	City          string
	Country       string
	ContactPerson string
	Phone         string
	Email         string
}
