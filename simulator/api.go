package simulator

import (
	"encoding/json"
	"net/http"

	"github.com/alovak/iso8583-mock/simulator/models"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is the HTTP API of the mock server
type API struct {
	simulator *Service
	logger    *slog.Logger
}

func NewAPI(logger *slog.Logger, simulator *Service) *API {
	return &API{
		simulator: simulator,
		logger:    logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/authorize", a.authorize)
	r.Post("/reversal", a.reversal)
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	req := models.AuthorizationRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.logger.Info("authorization request",
		slog.String("mti", req.MTI),
		slog.String("pan", maskPAN(req.PAN)),
		slog.String("stan", req.STAN),
		slog.String("amount", req.Amount),
	)

	resp, err := a.simulator.Authorize(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.logger.Info("authorization response",
		slog.String("mti", resp.MTI),
		slog.String("stan", resp.STAN),
		slog.String("de39", resp.ResponseCode),
		slog.String("message", resp.ResponseMessage),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (a *API) reversal(w http.ResponseWriter, r *http.Request) {
	req := models.ReversalRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.logger.Info("reversal request",
		slog.String("mti", req.MTI),
		slog.String("pan", maskPAN(req.PAN)),
		slog.String("stan", req.STAN),
		slog.String("de90", req.OriginalData),
	)

	resp, err := a.simulator.Reverse(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.logger.Info("reversal response",
		slog.String("mti", resp.MTI),
		slog.String("stan", resp.STAN),
		slog.String("de39", resp.ResponseCode),
		slog.String("message", resp.ResponseMessage),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// maskPAN keeps only the last four digits for logs.
func maskPAN(pan string) string {
	if len(pan) <= 4 {
		return pan
	}
	return "****" + pan[len(pan)-4:]
}
