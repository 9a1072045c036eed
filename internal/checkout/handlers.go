package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/common"
	"github.com/noah-isme/backend-kasir/internal/pricing"
	"github.com/noah-isme/backend-kasir/internal/receipt"
)

// Handler exposes checkout over HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
	Printer  receipt.Printer
}

type itemPayload struct {
	Name     string  `json:"name" validate:"required"`
	Unit     string  `json:"unit" validate:"required,oneof=each kilo"`
	Quantity float64 `json:"quantity"`
}

type checkoutPayload struct {
	Items []itemPayload `json:"items" validate:"dive"`
}

type itemDTO struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type discountDTO struct {
	Description string  `json:"description"`
	Product     string  `json:"product"`
	Amount      float64 `json:"amount"`
}

type receiptDTO struct {
	ID        string        `json:"id"`
	Items     []itemDTO     `json:"items"`
	Discounts []discountDTO `json:"discounts"`
	Total     float64       `json:"total"`
}

// Checkout handles POST /api/v1/checkout. With ?format=text the printed
// receipt is returned instead of JSON.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	var payload checkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", validationDetails(err))
			return
		}
	}

	c := cart.New()
	for _, item := range payload.Items {
		unit, err := catalog.ParseUnit(item.Unit)
		if err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		c.AddQuantity(catalog.Product{Name: item.Name, Unit: unit}, item.Quantity)
	}

	rcpt, err := h.Svc.Checkout(r.Context(), c)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(h.Printer.Render(rcpt)))
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": toDTO(rcpt)})
}

func toDTO(rcpt *receipt.Receipt) receiptDTO {
	out := receiptDTO{
		ID:        rcpt.ID().String(),
		Items:     make([]itemDTO, 0, len(rcpt.Items())),
		Discounts: make([]discountDTO, 0, len(rcpt.Discounts())),
		Total:     rcpt.Total(),
	}
	for _, item := range rcpt.Items() {
		out.Items = append(out.Items, itemDTO{
			Name:     item.Product.Name,
			Unit:     string(item.Product.Unit),
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}
	for _, discount := range rcpt.Discounts() {
		out.Discounts = append(out.Discounts, discountDTO{
			Description: discount.Description,
			Product:     discount.Product.Name,
			Amount:      discount.Amount,
		})
	}
	return out
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownProduct):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, pricing.ErrInvalidInput):
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_INPUT", err.Error(), nil)
	case errors.Is(err, pricing.ErrUnknownOfferType):
		common.JSONError(w, http.StatusInternalServerError, "OFFER_MISCONFIGURED", err.Error(), nil)
	default:
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			status := appErr.HTTPStatus
			if status == 0 {
				status = http.StatusBadRequest
			}
			common.JSONError(w, status, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, map[string]string{
			"field": fe.Namespace(),
			"rule":  fe.Tag(),
		})
	}
	return map[string]any{"fields": fields}
}
