package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeplan/backend/internal/application/usecase/ledger"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/entrypoint/dto"
	"github.com/lifeplan/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the derived analytics endpoint.
type DashboardController struct {
	getDashboardUseCase *ledger.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *ledger.GetDashboardUseCase) *DashboardController {
	return &DashboardController{getDashboardUseCase: getDashboardUseCase}
}

// GetDashboard handles GET /dashboard requests. Everything in the response
// is re-derived from the current ledger snapshot.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "not authenticated",
			Code:  string(domainerror.ErrCodeNotAuthenticated),
		})
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), ledger.GetDashboardInput{UID: identity.UID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
