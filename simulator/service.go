package simulator

import (
	"fmt"
	"strings"

	"github.com/alovak/iso8583-mock/simulator/models"
)

// DefaultApprovedPANPrefix is the PAN prefix the default issuer
// decision approves. It mimics a crude card-brand check, not real
// issuer logic.
const DefaultApprovedPANPrefix = "4"

// ApprovalPolicy decides whether an authorization for the given PAN
// is approved.
type ApprovalPolicy func(pan string) bool

// PrefixApprovalPolicy approves every PAN that starts with prefix.
func PrefixApprovalPolicy(prefix string) ApprovalPolicy {
	return func(pan string) bool {
		return strings.HasPrefix(pan, prefix)
	}
}

// Service implements the authorization and reversal operations of the
// mock. It is stateless apart from the transaction store and safe for
// concurrent use.
type Service struct {
	store   *TransactionStore
	approve ApprovalPolicy
}

func NewService(store *TransactionStore, approve ApprovalPolicy) *Service {
	if approve == nil {
		approve = PrefixApprovalPolicy(DefaultApprovedPANPrefix)
	}

	return &Service{
		store:   store,
		approve: approve,
	}
}

// Authorize handles a 0100 authorization request. The store is only
// touched on the approved path.
func (s *Service) Authorize(req models.AuthorizationRequest) (models.AuthorizationResponse, error) {
	if req.MTI != models.MTIAuthorizationRequest {
		return authorizationResponse(req, models.ResponseCodeInvalidMTI), nil
	}

	code := models.ResponseCodeNotAuthorized
	if s.approve(req.PAN) {
		code = models.ResponseCodeApproved
	}

	if code == models.ResponseCodeApproved {
		transaction := models.Transaction{
			PAN:          req.PAN,
			Amount:       req.Amount,
			STAN:         req.STAN,
			Timestamp:    req.TransmittedAt,
			ResponseCode: code,
		}

		if err := s.store.Put(req.STAN, transaction); err != nil {
			return models.AuthorizationResponse{}, fmt.Errorf("storing transaction: %w", err)
		}
	}

	return authorizationResponse(req, code), nil
}

// Reverse handles a 0400 reversal request. The original transaction
// is looked up by STAN and stays in the store; reversing the same
// STAN again keeps succeeding.
func (s *Service) Reverse(req models.ReversalRequest) (models.ReversalResponse, error) {
	if req.MTI != models.MTIReversalRequest {
		return reversalResponse(req, models.ResponseCodeInvalidMTI), nil
	}

	found, err := s.store.Exists(req.STAN)
	if err != nil {
		return models.ReversalResponse{}, fmt.Errorf("looking up original transaction: %w", err)
	}

	code := models.ResponseCodeOriginalNotFound
	if found {
		code = models.ResponseCodeApproved
	}

	return reversalResponse(req, code), nil
}

func authorizationResponse(req models.AuthorizationRequest, code string) models.AuthorizationResponse {
	return models.AuthorizationResponse{
		MTI:             models.MTIAuthorizationResponse,
		DataElements:    req.DataElements,
		ResponseCode:    code,
		ResponseMessage: models.AuthorizationMessage(code),
	}
}

func reversalResponse(req models.ReversalRequest, code string) models.ReversalResponse {
	return models.ReversalResponse{
		MTI:             models.MTIReversalResponse,
		DataElements:    req.DataElements,
		ResponseCode:    code,
		OriginalData:    req.OriginalData,
		ResponseMessage: models.ReversalMessage(code),
	}
}
