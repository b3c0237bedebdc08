// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/enquiry"
	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeEnquiryError(c *gin.Context, err error) {
	switch err {
	case enquiry.ErrBadRequest, quote.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case enquiry.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func parseCategory(v string) (estimate.TripCategory, bool) {
	switch estimate.TripCategory(v) {
	case estimate.CategoryLocal, estimate.CategoryRental, estimate.CategoryOutstation:
		return estimate.TripCategory(v), true
	}
	return "", false
}

func parseSubType(v string) (estimate.OutstationSubType, bool) {
	switch estimate.OutstationSubType(v) {
	case estimate.OneWay, estimate.RoundTrip, "":
		return estimate.OutstationSubType(v), true
	}
	return "", false
}

func parseVehicle(v string) (tariff.VehicleClass, bool) {
	switch tariff.VehicleClass(v) {
	case tariff.VehicleSedan, tariff.VehicleSUV:
		return tariff.VehicleClass(v), true
	}
	return "", false
}
