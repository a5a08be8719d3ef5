// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/lifeplan/backend/config"
	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/application/usecase/ledger"
	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/infra/db"
	"github.com/lifeplan/backend/internal/infra/server/router"
	"github.com/lifeplan/backend/internal/integration/adapters"
	"github.com/lifeplan/backend/internal/integration/entrypoint/controller"
	"github.com/lifeplan/backend/internal/integration/entrypoint/middleware"
	"github.com/lifeplan/backend/internal/integration/persistence"
	"github.com/lifeplan/backend/internal/integration/persistence/model"
)

// Injector holds all application dependencies. The persistence backend is
// chosen once at construction from the configuration: Firestore plus the
// Firebase identity toolkit when remote credentials are configured, the
// embedded SQLite store otherwise. There is no runtime fallback.
type Injector struct {
	Config *config.Config
	Router *router.Router

	database  *db.Database
	firestore *firestore.Client
	backend   string
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	inj := &Injector{Config: cfg}

	var (
		stateRepo  adapter.StateRepository
		provider   adapter.IdentityProvider
		remembered adapter.RememberedIdentityStore
		healthy    func() bool
	)

	if cfg.RemoteEnabled() {
		inj.backend = "firestore"

		var opts []option.ClientOption
		if cfg.Firebase.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
		}

		client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
		inj.firestore = client

		stateRepo = persistence.NewFirestoreStateRepository(client)
		provider = adapters.NewFirebaseIdentityProvider(cfg.Firebase.APIKey)
		healthy = func() bool { return true }

		slog.Info("Remote backend configured", "project_id", cfg.Firebase.ProjectID)
	} else {
		inj.backend = "local"

		database, err := db.NewSQLiteConnection(&cfg.Local)
		if err != nil {
			return nil, fmt.Errorf("failed to open local database: %w", err)
		}
		inj.database = database

		if err := database.AutoMigrate(
			&model.LedgerStateModel{},
			&model.LocalUserModel{},
			&model.RememberedUserModel{},
		); err != nil {
			return nil, err
		}

		stateRepo = persistence.NewLocalStateRepository(database.DB())
		provider = adapters.NewLocalIdentityProvider(persistence.NewLocalUserRepository(database.DB()))
		remembered = persistence.NewRememberedIdentityStore(database.DB())
		healthy = database.HealthCheck

		slog.Info("Local backend configured", "path", cfg.Local.DatabasePath)
	}

	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	manager := session.NewManager(stateRepo)

	// Session use cases
	registerUseCase := session.NewRegisterUseCase(provider, manager, tokenService, remembered)
	loginUseCase := session.NewLoginUseCase(provider, manager, tokenService, remembered)
	resumeUseCase := session.NewResumeUseCase(manager, tokenService, remembered)
	logoutUseCase := session.NewLogoutUseCase(provider, manager, remembered)

	// Ledger use cases
	getSnapshotUseCase := ledger.NewGetSnapshotUseCase(manager)
	addEntryUseCase := ledger.NewAddEntryUseCase(manager)
	addInstitutionUseCase := ledger.NewAddInstitutionUseCase(manager)
	addGoalUseCase := ledger.NewAddGoalUseCase(manager)
	updateProfileUseCase := ledger.NewUpdateProfileUseCase(manager)
	getSyncStatusUseCase := ledger.NewGetSyncStatusUseCase(manager)
	getDashboardUseCase := ledger.NewGetDashboardUseCase(manager)

	// Controllers
	healthController := controller.NewHealthController(inj.backend, healthy)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, resumeUseCase, logoutUseCase)
	ledgerController := controller.NewLedgerController(
		getSnapshotUseCase,
		addEntryUseCase,
		addInstitutionUseCase,
		addGoalUseCase,
		updateProfileUseCase,
		getSyncStatusUseCase,
	)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	inj.Router = router.NewRouter(
		healthController,
		authController,
		ledgerController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return inj, nil
}

// Backend returns the name of the configured persistence backend.
func (i *Injector) Backend() string {
	return i.backend
}

// Close releases the backend resources.
func (i *Injector) Close() error {
	if i.firestore != nil {
		if err := i.firestore.Close(); err != nil {
			return fmt.Errorf("failed to close firestore client: %w", err)
		}
	}
	if i.database != nil {
		return i.database.Close()
	}
	return nil
}
