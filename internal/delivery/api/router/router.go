// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todoez/config"
	"todoez/internal/delivery/api/middleware"
	"todoez/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TeamHandler    *handler.TeamHandler
	ProjectHandler *handler.ProjectHandler
	MemberHandlers *handler.MemberHandlers
	SprintHandler  *handler.SprintHandler
	TaskHandler    *handler.TaskHandler
	CommentHandler *handler.CommentHandler
	NoteHandler    *handler.NoteHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authenticate := p.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group(p.Config.HTTP.Prefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", p.AuthHandler.Signup)
		authGroup.POST("/signin", p.AuthHandler.Signin)
		authGroup.POST("/google/signin", p.AuthHandler.GoogleSignin)
		authGroup.GET("/verify/:email/:token", p.AuthHandler.VerifyEmail)
		authGroup.GET("/forgot/:email", p.AuthHandler.ForgotPassword)
		authGroup.PUT("/reset-password/:email", p.AuthHandler.ResetPassword)
		authGroup.POST("/refresh", p.AuthHandler.RefreshToken)
		authGroup.GET("/signout", p.AuthHandler.Signout, authenticate)
	}

	usersGroup := api.Group("/users", authenticate)
	{
		usersGroup.GET("/all-users", p.UserHandler.ListDirectory)
		usersGroup.GET("/profile", p.UserHandler.GetProfile)
		usersGroup.PUT("/change-password", p.UserHandler.ChangePassword)
		usersGroup.PUT("/update-profile", p.UserHandler.UpdateProfile)
		usersGroup.PUT("/change-avatar", p.UserHandler.ChangeAvatar)
		usersGroup.PUT("/delete-avatar", p.UserHandler.DeleteAvatar)
		usersGroup.POST("/upload-avatar", p.UserHandler.UploadAvatar)
	}

	teamsGroup := api.Group("/teams", authenticate)
	{
		teamsGroup.POST("", p.TeamHandler.Create)
		teamsGroup.GET("", p.TeamHandler.List)
		teamsGroup.GET("/:id", p.TeamHandler.Get)
		teamsGroup.PUT("/:id", p.TeamHandler.Update)
		teamsGroup.DELETE("/:id", p.TeamHandler.Delete)
	}

	projectsGroup := api.Group("/projects", authenticate)
	{
		projectsGroup.POST("", p.ProjectHandler.Create)
		projectsGroup.GET("", p.ProjectHandler.List)
		projectsGroup.GET("/:id", p.ProjectHandler.Get)
		projectsGroup.GET("/:id/qr", p.ProjectHandler.ShareQR)
		projectsGroup.PUT("/:id", p.ProjectHandler.Update)
		projectsGroup.DELETE("/:id", p.ProjectHandler.Delete)
	}

	registerMembers(api.Group("/team-users", authenticate), p.MemberHandlers.Team)
	registerMembers(api.Group("/project-users", authenticate), p.MemberHandlers.Project)

	sprintsGroup := api.Group("/sprints", authenticate)
	{
		sprintsGroup.POST("/:project_id", p.SprintHandler.Create)
		sprintsGroup.GET("/:project_id", p.SprintHandler.List)
		sprintsGroup.GET("/:project_id/tasks", p.SprintHandler.ListWithTasks)
		sprintsGroup.PUT("/:project_id/:id", p.SprintHandler.UpdateTitle)
		sprintsGroup.DELETE("/:project_id/:id", p.SprintHandler.Delete)
	}

	tasksGroup := api.Group("/tasks", authenticate)
	{
		tasksGroup.GET("/my-task", p.TaskHandler.ListMine)
		tasksGroup.POST("/:project_id", p.TaskHandler.Create)
		tasksGroup.GET("/:project_id", p.TaskHandler.List)
		tasksGroup.GET("/:project_id/:id", p.TaskHandler.Get)
		tasksGroup.PUT("/:project_id/:id/update-status", p.TaskHandler.UpdateStatus)
		tasksGroup.PUT("/:project_id/:id", p.TaskHandler.Update)
		tasksGroup.DELETE("/:project_id/:id", p.TaskHandler.Delete)
	}

	commentsGroup := api.Group("/comments", authenticate)
	{
		commentsGroup.POST("/:project_id", p.CommentHandler.Create)
		commentsGroup.GET("/:project_id/:task_id", p.CommentHandler.List)
		commentsGroup.PUT("/:project_id/:id", p.CommentHandler.Update)
		commentsGroup.DELETE("/:project_id/:id", p.CommentHandler.Delete)
	}

	notesGroup := api.Group("/notes", authenticate)
	{
		notesGroup.POST("/:team_id", p.NoteHandler.Create)
		notesGroup.GET("/:team_id", p.NoteHandler.List)
		notesGroup.PUT("/:team_id/:id", p.NoteHandler.Update)
		notesGroup.DELETE("/:team_id/:id", p.NoteHandler.Delete)
	}

	devicesGroup := api.Group("/devices", authenticate)
	{
		devicesGroup.POST("", p.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", p.DeviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", p.DeviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", p.DeviceHandler.DeactivateDevice)
	}
}

func registerMembers(group *echo.Group, h *handler.MemberHandler) {
	scope := "/:" + h.ScopeParam()
	group.POST(scope, h.Add)
	group.GET(scope, h.List)
	group.DELETE(scope+"/:id", h.Remove)
}
