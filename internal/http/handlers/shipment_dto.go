package handlers

type createShipmentRequest struct {
	DocEntry int64 `json:"docEntry"`
}

type createShipmentResponse struct {
	Status      string `json:"status"`
	SapDocEntry int64  `json:"sapDocEntry"`
	MyParcel    string `json:"myParcel"`
}
