package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/entrypoint/dto"
	"github.com/lifeplan/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles the session lifecycle endpoints.
type AuthController struct {
	registerUseCase *session.RegisterUseCase
	loginUseCase    *session.LoginUseCase
	resumeUseCase   *session.ResumeUseCase
	logoutUseCase   *session.LogoutUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *session.RegisterUseCase,
	loginUseCase *session.LoginUseCase,
	resumeUseCase *session.ResumeUseCase,
	logoutUseCase *session.LogoutUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		resumeUseCase:   resumeUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := session.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.Name,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.Identity),
		State: dto.ToLedgerStateResponse(output.State),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := session.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.Identity),
		State: dto.ToLedgerStateResponse(output.State),
	})
}

// Resume handles POST /auth/resume requests. It re-enters a session using
// the identity remembered by a previous login, without credentials.
func (c *AuthController) Resume(ctx *gin.Context) {
	output, err := c.resumeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.Identity),
		State: dto.ToLedgerStateResponse(output.State),
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "not authenticated",
			Code:  string(domainerror.ErrCodeNotAuthenticated),
		})
		return
	}

	if err := c.logoutUseCase.Execute(ctx.Request.Context(), session.LogoutInput{UID: identity.UID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully logged out",
	})
}
