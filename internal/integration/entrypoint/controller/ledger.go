package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeplan/backend/internal/application/usecase/ledger"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/entrypoint/dto"
	"github.com/lifeplan/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles the ledger read and mutation endpoints.
type LedgerController struct {
	getSnapshotUseCase    *ledger.GetSnapshotUseCase
	addEntryUseCase       *ledger.AddEntryUseCase
	addInstitutionUseCase *ledger.AddInstitutionUseCase
	addGoalUseCase        *ledger.AddGoalUseCase
	updateProfileUseCase  *ledger.UpdateProfileUseCase
	getSyncStatusUseCase  *ledger.GetSyncStatusUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	getSnapshotUseCase *ledger.GetSnapshotUseCase,
	addEntryUseCase *ledger.AddEntryUseCase,
	addInstitutionUseCase *ledger.AddInstitutionUseCase,
	addGoalUseCase *ledger.AddGoalUseCase,
	updateProfileUseCase *ledger.UpdateProfileUseCase,
	getSyncStatusUseCase *ledger.GetSyncStatusUseCase,
) *LedgerController {
	return &LedgerController{
		getSnapshotUseCase:    getSnapshotUseCase,
		addEntryUseCase:       addEntryUseCase,
		addInstitutionUseCase: addInstitutionUseCase,
		addGoalUseCase:        addGoalUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		getSyncStatusUseCase:  getSyncStatusUseCase,
	}
}

// uid extracts the authenticated user's UID or writes a 401 response.
func uid(ctx *gin.Context) (string, bool) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "not authenticated",
			Code:  string(domainerror.ErrCodeNotAuthenticated),
		})
		return "", false
	}
	return identity.UID, true
}

// GetState handles GET /ledger requests.
func (c *LedgerController) GetState(ctx *gin.Context) {
	userID, ok := uid(ctx)
	if !ok {
		return
	}

	output, err := c.getSnapshotUseCase.Execute(ctx.Request.Context(), ledger.GetSnapshotInput{UID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerStateResponse(output.State))
}

// AddEntry handles POST /ledger/entries requests.
func (c *LedgerController) AddEntry(ctx *gin.Context) {
	userID, ok := uid(ctx)
	if !ok {
		return
	}

	var req dto.AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.addEntryUseCase.Execute(ctx.Request.Context(), ledger.AddEntryInput{
		UID:           userID,
		Amount:        req.Amount,
		Date:          req.Date,
		InstitutionID: req.InstitutionID,
		GoalID:        req.GoalID,
		AssetClass:    req.AssetClass,
		Description:   req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// AddInstitution handles POST /ledger/institutions requests.
func (c *LedgerController) AddInstitution(ctx *gin.Context) {
	userID, ok := uid(ctx)
	if !ok {
		return
	}

	var req dto.AddInstitutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.addInstitutionUseCase.Execute(ctx.Request.Context(), ledger.AddInstitutionInput{
		UID:       userID,
		Name:      req.Name,
		Type:      req.Type,
		Yield:     req.Yield,
		Liquidity: req.Liquidity,
		Risk:      req.Risk,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInstitutionResponse(output.Institution))
}

// AddGoal handles POST /ledger/goals requests.
func (c *LedgerController) AddGoal(ctx *gin.Context) {
	userID, ok := uid(ctx)
	if !ok {
		return
	}

	var req dto.AddGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.addGoalUseCase.Execute(ctx.Request.Context(), ledger.AddGoalInput{
		UID:      userID,
		Name:     req.Name,
		Target:   req.Target,
		Due:      req.Due,
		Priority: req.Priority,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// UpdateProfile handles PUT /ledger/profile requests.
func (c *LedgerController) UpdateProfile(ctx *gin.Context) {
	userID, ok := uid(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), ledger.UpdateProfileInput{
		UID:              userID,
		Income:           req.Income,
		Expenses:         req.Expenses,
		MainGoalName:     req.MainGoalName,
		MainGoalTarget:   req.MainGoalTarget,
		MainGoalDeadline: req.MainGoalDeadline,
		PrimaryGoalID:    req.PrimaryGoalID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// GetSyncStatus handles GET /ledger/sync requests.
func (c *LedgerController) GetSyncStatus(ctx *gin.Context) {
	userID, ok := uid(ctx)
	if !ok {
		return
	}

	output, err := c.getSyncStatusUseCase.Execute(ctx.Request.Context(), ledger.GetSyncStatusInput{UID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncStatusResponse(output.Sync))
}
