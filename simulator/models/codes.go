package models

// Message type indicators understood by the mock.
const (
	MTIAuthorizationRequest  = "0100"
	MTIAuthorizationResponse = "0110"
	MTIReversalRequest       = "0400"
	MTIReversalResponse      = "0410"
)

// DE39 response codes.
const (
	ResponseCodeApproved         = "00"
	ResponseCodeInvalidMTI       = "03"
	ResponseCodeNotAuthorized    = "05"
	ResponseCodeOriginalNotFound = "94"
)

// AuthorizationMessage returns the human-readable message for an
// authorization response code.
func AuthorizationMessage(code string) string {
	switch code {
	case ResponseCodeApproved:
		return "Transaction Approved"
	case ResponseCodeNotAuthorized:
		return "Transaction Not Authorized"
	case ResponseCodeInvalidMTI:
		return "Invalid MTI for Authorization Request"
	default:
		return "Unknown Response"
	}
}

// ReversalMessage returns the human-readable message for a reversal
// response code.
func ReversalMessage(code string) string {
	switch code {
	case ResponseCodeApproved:
		return "Reversal Approved"
	case ResponseCodeOriginalNotFound:
		return "Duplicate Reversal or Original Not Found"
	case ResponseCodeInvalidMTI:
		return "Invalid MTI for Reversal Request"
	default:
		return "Unknown Response"
	}
}
