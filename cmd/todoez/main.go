package main

import (
	"context"
	"log/slog"
	"os"

	"todoez/config"
	"todoez/internal/delivery"
	"todoez/internal/delivery/api"
	"todoez/internal/delivery/api/middleware"
	"todoez/internal/delivery/api/router/handler"
	"todoez/internal/domain/service"
	"todoez/internal/infra/auth"
	"todoez/internal/infra/auth/google"
	logs "todoez/internal/infra/log"
	"todoez/internal/infra/mail"
	"todoez/internal/infra/persistence/postgres"
	"todoez/internal/infra/pubsub"
	"todoez/internal/infra/qrcode"
	"todoez/internal/infra/storage"
	"todoez/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMembershipRepository,
			postgres.NewTeamRepository,
			postgres.NewProjectRepository,
			postgres.NewSprintRepository,
			postgres.NewTaskRepository,
			postgres.NewCommentRepository,
			postgres.NewNoteRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newTokenService,
			newOAuthService,
			newQRCodeService,
			mail.NewMailer,
			pubsub.NewEventPublisher,
			storage.NewAvatarStorage,
		),
	)
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newTokenService maps the secrets and lifetimes onto the JWT service.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	return auth.NewJWTService(auth.JWTOptions{
		AccessSecret:  cfg.SecretKey.Access,
		RefreshSecret: cfg.SecretKey.Refresh,
		AccessTTL:     cfg.Token.AccessTTL,
		RefreshTTL:    cfg.Token.RefreshTTL,
	})
}

func newOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return google.NewAuthService(cfg.GoogleOAuth.ClientID, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewTeamService,
			impl.NewProjectService,
			impl.NewTeamMemberService,
			impl.NewProjectMemberService,
			impl.NewSprintService,
			impl.NewTaskService,
			impl.NewCommentService,
			impl.NewNoteService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewTeamHandler,
			handler.NewProjectHandler,
			handler.NewMemberHandlers,
			handler.NewSprintHandler,
			handler.NewTaskHandler,
			handler.NewCommentHandler,
			handler.NewNoteHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
