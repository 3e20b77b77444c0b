package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, verification and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// GoogleSigninRequest carries a Google ID token.
type GoogleSigninRequest struct {
	GoogleToken string `json:"googleToken" validate:"required"`
}

// ResetPasswordRequest carries the new password.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the current refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req usecase.SignupInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	if err := h.authUC.Signup(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusCreated, "Signup successfully")
}

func (h *AuthHandler) Signin(c echo.Context) error {
	var req usecase.SigninInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	session, err := h.authUC.Signin(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *AuthHandler) GoogleSignin(c echo.Context) error {
	var req GoogleSigninRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid google signin input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	session, err := h.authUC.GoogleSignin(c.Request().Context(), req.GoogleToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	if err := h.authUC.VerifyEmail(c.Request().Context(), c.Param("email"), c.Param("token")); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Verify email successfully")
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	if err := h.authUC.ForgotPassword(c.Request().Context(), c.Param("email")); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Email exists")
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), c.Param("email"), req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Reset password successfully")
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	out, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AuthHandler) Signout(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	if err := h.authUC.Signout(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "signout successfully")
}
