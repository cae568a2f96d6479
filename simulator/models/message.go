package models

// DataElements are the ISO 8583 data elements every message in the
// mock carries, keyed by their DE-alias JSON names. Values are opaque
// strings; the mock echoes them back without semantic validation.
type DataElements struct {
	PAN                    string `json:"de2"`
	ProcessingCode         string `json:"de3"`
	Amount                 string `json:"de4"`
	TransmittedAt          string `json:"de7"`
	STAN                   string `json:"de11"`
	MerchantType           string `json:"de18"`
	AcquiringInstitutionID string `json:"de32"`
	AdditionalData         string `json:"de48"`
	CurrencyCode           string `json:"de49"`
	POSData                string `json:"de61"`
}

// AuthorizationRequest is a 0100 authorization request.
type AuthorizationRequest struct {
	MTI string `json:"mti"`
	DataElements
}

// AuthorizationResponse is a 0110 authorization response echoing the
// request's data elements plus the outcome in DE39.
type AuthorizationResponse struct {
	MTI string `json:"mti"`
	DataElements
	ResponseCode    string `json:"de39"`
	ResponseMessage string `json:"response_message"`
}

// ReversalRequest is a 0400 reversal request. On top of the common
// data elements it carries the POS entry mode, the response code of
// the original authorization and the original data elements reference.
type ReversalRequest struct {
	MTI string `json:"mti"`
	DataElements
	POSEntryMode         string `json:"de22"`
	OriginalResponseCode string `json:"de39"`
	OriginalData         string `json:"de90"`
}

// ReversalResponse is a 0410 reversal response. DE22 and the original
// DE39 are not echoed; DE39 carries the reversal outcome instead.
type ReversalResponse struct {
	MTI string `json:"mti"`
	DataElements
	ResponseCode    string `json:"de39"`
	OriginalData    string `json:"de90"`
	ResponseMessage string `json:"response_message"`
}

// Transaction is the record kept for an approved authorization,
// keyed by STAN for the lifetime of the process.
type Transaction struct {
	PAN          string
	Amount       string
	STAN         string
	Timestamp    string
	ResponseCode string
}
