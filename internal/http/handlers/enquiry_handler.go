// README: Enquiry handlers for recording and listing sent quotes.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/enquiry"
	"cabdesk/internal/types"
)

type EnquiryHandler struct {
	enquiries *enquiry.Service
}

func NewEnquiryHandler(svc *enquiry.Service) *EnquiryHandler {
	return &EnquiryHandler{enquiries: svc}
}

type createEnquiryReq struct {
	Customer string `json:"customer"`
	quoteReq
}

type enquiryResponse struct {
	ID          string      `json:"id"`
	Owner       string      `json:"owner"`
	Branch      string      `json:"branch"`
	Customer    string      `json:"customer"`
	Category    string      `json:"category"`
	SubType     string      `json:"sub_type,omitempty"`
	Vehicle     string      `json:"vehicle"`
	Origin      string      `json:"origin,omitempty"`
	Destination string      `json:"destination,omitempty"`
	DistanceKm  float64     `json:"distance_km"`
	Quoted      types.Money `json:"quoted"`
	Message     string      `json:"message"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toEnquiryResponse(e *enquiry.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:          string(e.ID),
		Owner:       e.OwnerID,
		Branch:      e.Branch,
		Customer:    e.Customer,
		Category:    string(e.Category),
		SubType:     string(e.SubType),
		Vehicle:     string(e.Vehicle),
		Origin:      e.Origin,
		Destination: e.Destination,
		DistanceKm:  e.DistanceKm,
		Quoted:      e.Quoted,
		Message:     e.Message,
		CreatedAt:   e.CreatedAt,
	}
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req createEnquiryReq
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

	e, err := h.enquiries.Create(c.Request.Context(), enquiry.CreateCommand{
		Customer: req.Customer,
		Request:  qr,
	})
	if err != nil {
		writeEnquiryError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toEnquiryResponse(e))
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing enquiry id")
		return
	}
	e, err := h.enquiries.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeEnquiryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toEnquiryResponse(e))
}

func (h *EnquiryHandler) List(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		writeError(c, http.StatusBadRequest, "missing owner")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.enquiries.ListByOwner(c.Request.Context(), owner, limit)
	if err != nil {
		writeEnquiryError(c, err)
		return
	}
	out := make([]enquiryResponse, len(items))
	for i := range items {
		out[i] = toEnquiryResponse(&items[i])
	}
	writeJSON(c, http.StatusOK, gin.H{"items": out})
}
