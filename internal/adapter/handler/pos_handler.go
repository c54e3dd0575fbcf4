package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/ports"
	"github.com/wonderpark/parkpos/internal/core/services"
)

// POSHandler is the presentation collaborator: it collects primitive inputs,
// calls the core and maps the sentinel errors onto status codes. No business
// rules live here.
type POSHandler struct {
	accounts  *services.AccountService
	ticketing *services.TicketingService
	admin     *services.AdminService
}

func NewPOSHandler(accounts *services.AccountService, ticketing *services.TicketingService, admin *services.AdminService) *POSHandler {
	return &POSHandler{accounts: accounts, ticketing: ticketing, admin: admin}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDiscountValue),
		errors.Is(err, domain.ErrUnknownTicketType),
		errors.Is(err, domain.ErrNoSelection),
		errors.Is(err, domain.ErrNotPriced),
		errors.Is(err, domain.ErrPaymentRequired),
		errors.Is(err, domain.ErrAlreadyConfirmed),
		errors.Is(err, domain.ErrInsufficientPoints):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, domain.ErrAccountNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrDuplicateUsername):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, domain.ErrPaymentDeclined):
		status = http.StatusPaymentRequired
		msg = err.Error()
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *POSHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req services.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	if err := h.accounts.Register(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

func (h *POSHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	role, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"username": req.Username, "role": string(role)})
}

func (h *POSHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ticketing.PricedCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

type purchaseRequest struct {
	Customer       string `json:"customer"`
	TicketType     string `json:"ticket_type"`
	Quantity       int    `json:"quantity"`
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	CVV            string `json:"cvv"`
}

// Purchase drives the whole workflow for a single already-validated request
// body: select, price, collect payment fields, confirm.
func (h *POSHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	purchase := h.ticketing.NewPurchase(req.Customer)

	if err := h.ticketing.Select(purchase, req.TicketType, req.Quantity); err != nil {
		writeError(w, err)
		return
	}

	details := ports.PaymentRequest{
		CardNumber:     req.CardNumber,
		CardholderName: req.CardholderName,
		CVV:            req.CVV,
	}
	if err := h.ticketing.ProvidePayment(purchase, details); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.ticketing.Confirm(r.Context(), purchase)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *POSHandler) Orders(w http.ResponseWriter, r *http.Request) {
	customer := r.URL.Query().Get("customer")
	if customer == "" {
		writeError(w, domain.ErrMissingField)
		return
	}

	orders, err := h.ticketing.OrdersFor(r.Context(), customer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *POSHandler) Sales(w http.ResponseWriter, r *http.Request) {
	rows, err := h.admin.SalesReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *POSHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		TicketType string `json:"ticket_type"`
		Value      string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	value, err := h.admin.SetDiscount(r.Context(), req.TicketType, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ticket_type": req.TicketType, "discount": value})
}

func (h *POSHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Username string  `json:"username"`
		Points   float64 `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	balance, err := h.accounts.RedeemPoints(r.Context(), req.Username, req.Points)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"username": req.Username, "balance": balance})
}
