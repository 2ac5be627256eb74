package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/mutation"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/qrimage"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/qris"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/usecase/checkmutation"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/usecase/createpayment"
)

type Handler struct {
	createPaymentUC *createpayment.UseCase
	checkMutationUC *checkmutation.UseCase
}

func NewHandler(createPaymentUC *createpayment.UseCase, checkMutationUC *checkmutation.UseCase) *Handler {
	return &Handler{
		createPaymentUC: createPaymentUC,
		checkMutationUC: checkMutationUC,
	}
}

type CreatePaymentRequest struct {
	Amount int64  `json:"amount"`
	CodeQR string `json:"codeqr,omitempty"`
}

type CreatePaymentResponse struct {
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	ExpiresAt     time.Time `json:"expires_at"`
	QRImageURL    string    `json:"qr_image_url"`
	Payload       string    `json:"payload"`
}

type MutationResponse struct {
	Found  bool   `json:"found"`
	Date   string `json:"date,omitempty"`
	Brand  string `json:"brand,omitempty"`
	Amount int64  `json:"amount,omitempty"`
}

func (h *Handler) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, `{"error":"amount must be positive"}`, http.StatusBadRequest)
		return
	}

	resp, err := h.createPaymentUC.Execute(r.Context(), createpayment.Request{
		Amount:   req.Amount,
		Template: req.CodeQR,
	})
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CreatePaymentResponse{
		TransactionID: resp.TransactionID,
		Amount:        resp.Amount,
		ExpiresAt:     resp.ExpiresAt,
		QRImageURL:    resp.ImageURL,
		Payload:       resp.Payload,
	})
}

func (h *Handler) HandleMutationStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.checkMutationUC.Execute(r.Context())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, statusFor(err))
		return
	}

	out := MutationResponse{Found: resp.Found}
	if resp.Found {
		out.Date = resp.Date.Format(time.RFC3339)
		out.Brand = resp.Brand
		out.Amount = resp.Amount
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, qris.ErrInvalidAmount), errors.Is(err, qris.ErrMalformedTemplate):
		return http.StatusBadRequest
	case errors.Is(err, mutation.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, qrimage.ErrRenderFailed), errors.Is(err, qrimage.ErrUploadFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
