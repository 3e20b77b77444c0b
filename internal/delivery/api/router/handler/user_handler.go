package handler

import (
	"io"
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const avatarFormField = "file"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's profile and the user directory.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ChangeAvatarRequest sets the avatar to an existing URL.
type ChangeAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

func (h *UserHandler) ListDirectory(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	entries, err := h.userUC.ListDirectory(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	var req usecase.ChangePasswordInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), userID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Change password successfully")
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	profile, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *UserHandler) ChangeAvatar(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	var req ChangeAvatarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid avatar input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	profile, err := h.userUC.ChangeAvatar(c.Request().Context(), userID, req.Avatar)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *UserHandler) DeleteAvatar(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	profile, err := h.userUC.DeleteAvatar(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadAvatar accepts a multipart image in the "file" field.
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	header, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"file\" is required")
	}

	file, err := header.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded file cannot be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded file cannot be read")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	profile, err := h.userUC.UploadAvatar(c.Request().Context(), userID, &usecase.AvatarUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
