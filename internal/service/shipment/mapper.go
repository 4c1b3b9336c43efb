package shipment

import (
	"strconv"

	"service-shipment-bridge/internal/domain"
)

// Mapping constants dictated by the carrier contract.
const (
	// maxFieldLen is the carrier's hard cap on address fields.
	maxFieldLen = 40

	// regionLiteral is fixed because the ERP record carries no region; known
	// limitation of the integration.
	regionLiteral = "Zuid-Holland"

	referencePrefix  = "DEL-"
	labelDescription = "Sent from SAP B1 Cloud"
	carrierPostNL    = 1
)

// shipmentOptions is the fixed option set sent with every shipment.
var shipmentOptions = domain.ShipmentOptions{
	PackageType:      1,
	OnlyRecipient:    1,
	Signature:        1,
	Return:           1,
	Insurance:        domain.Insurance{Amount: 1, Currency: "EUR"},
	LargeFormat:      0,
	LabelDescription: labelDescription,
	AgeCheck:         0,
}

// BuildShipmentRequest maps a business partner record onto the carrier's
// shipment schema. Pure transform: all truncation and defaulting happens
// here or earlier, never later.
func BuildShipmentRequest(bp domain.BusinessPartner, docEntry int64) domain.ShipmentRequest {
	return domain.ShipmentRequest{
		ReferenceIdentifier: referencePrefix + strconv.FormatInt(docEntry, 10),
		Recipient: domain.Recipient{
			CC:         bp.Country,
			Region:     regionLiteral,
			City:       domain.TrimToMax(bp.City, maxFieldLen),
			Street:     domain.TrimToMax(bp.Address, maxFieldLen),
			PostalCode: bp.ZipCode,
			Person:     bp.ContactPerson,
			Phone:      bp.Phone,
			Email:      bp.Email,
		},
		Options: shipmentOptions,
		Carrier: carrierPostNL,
	}
}
