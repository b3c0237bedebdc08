// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/http/handlers"
	"cabdesk/internal/http/middleware"
	"cabdesk/internal/modules/enquiry"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
)

func NewRouter(
	tariffResolver *tariff.Resolver,
	quoteService *quote.Service,
	enquiryService *enquiry.Service,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	tariffHandler := handlers.NewTariffHandler(tariffResolver)
	r.GET("/api/tariffs", tariffHandler.Resolve)
	r.PUT("/api/tariffs", tariffHandler.Save)

	quoteHandler := handlers.NewQuoteHandler(quoteService)
	r.POST("/api/quotes", quoteHandler.Create)

	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	r.POST("/api/enquiries", enquiryHandler.Create)
	r.GET("/api/enquiries/:id", enquiryHandler.Get)
	r.GET("/api/enquiries", enquiryHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
