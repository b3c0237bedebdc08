// README: Tariff handlers for resolving and saving scope configuration.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/tariff"
)

type TariffHandler struct {
	tariffs *tariff.Resolver
}

func NewTariffHandler(resolver *tariff.Resolver) *TariffHandler {
	return &TariffHandler{tariffs: resolver}
}

type tariffResponse struct {
	Owner    string                 `json:"owner"`
	Branch   string                 `json:"branch"`
	Rules    tariff.RuleSet         `json:"rules"`
	Packages []tariff.RentalPackage `json:"packages"`
}

// Resolve returns the effective config for a scope, fallback chain applied.
// A scope with nothing configured resolves to the compiled defaults, never
// to an error.
func (h *TariffHandler) Resolve(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		writeError(c, http.StatusBadRequest, "missing owner")
		return
	}
	branch := c.Query("branch")
	if branch == "" {
		branch = tariff.GlobalBranch
	}

	ctx := c.Request.Context()
	writeJSON(c, http.StatusOK, tariffResponse{
		Owner:    owner,
		Branch:   branch,
		Rules:    h.tariffs.ResolvePricing(ctx, owner, branch),
		Packages: h.tariffs.ResolvePackages(ctx, owner, branch),
	})
}

type saveTariffReq struct {
	Owner    string                 `json:"owner"`
	Branch   string                 `json:"branch"`
	Rules    tariff.RuleSet         `json:"rules"`
	Packages []tariff.RentalPackage `json:"packages"`
}

// Save writes both artifacts at exactly the given scope.
func (h *TariffHandler) Save(c *gin.Context) {
	var req saveTariffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Owner == "" {
		writeError(c, http.StatusBadRequest, "missing owner")
		return
	}
	if req.Branch == "" {
		req.Branch = tariff.GlobalBranch
	}

	if err := h.tariffs.SaveConfig(c.Request.Context(), req.Owner, req.Branch, req.Rules, req.Packages); err != nil {
		writeError(c, http.StatusInternalServerError, "failed to save configuration")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"owner": req.Owner, "branch": req.Branch})
}
