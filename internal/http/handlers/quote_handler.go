// README: Quote handler: one-shot fare estimation without persistence.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/quote"
)

type QuoteHandler struct {
	quotes *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quotes: svc}
}

type quoteReq struct {
	Owner          string  `json:"owner"`
	Branch         string  `json:"branch"`
	Category       string  `json:"category"`
	SubType        string  `json:"sub_type"`
	Vehicle        string  `json:"vehicle"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	ManualKm       float64 `json:"manual_km"`
	WaitingMinutes float64 `json:"waiting_minutes"`
	PackageID      string  `json:"package_id"`
	Days           int     `json:"days"`
	Nights         int     `json:"nights"`
}

func (r quoteReq) toRequest() (quote.QuoteRequest, string) {
	category, ok := parseCategory(r.Category)
	if !ok {
		return quote.QuoteRequest{}, "invalid category"
	}
	subType, ok := parseSubType(r.SubType)
	if !ok {
		return quote.QuoteRequest{}, "invalid sub_type"
	}
	vehicle, ok := parseVehicle(r.Vehicle)
	if !ok {
		return quote.QuoteRequest{}, "invalid vehicle"
	}
	return quote.QuoteRequest{
		OwnerID:        r.Owner,
		Branch:         r.Branch,
		Category:       category,
		SubType:        subType,
		Vehicle:        vehicle,
		Origin:         r.Origin,
		Destination:    r.Destination,
		ManualKm:       r.ManualKm,
		WaitingMinutes: r.WaitingMinutes,
		PackageID:      r.PackageID,
		Days:           r.Days,
		Nights:         r.Nights,
	}, ""
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Owner == "" {
		writeError(c, http.StatusBadRequest, "missing owner")
		return
	}

	qr, msg := req.toRequest()
	if msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return
	}

	q, err := h.quotes.Quote(c.Request.Context(), qr)
	if err != nil {
		writeEnquiryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}
