package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"stock-admin/internal/auth"
	"stock-admin/internal/database"
	"stock-admin/internal/handler"
	"stock-admin/internal/repository"
	"stock-admin/internal/router"
	"stock-admin/internal/seed"
	"stock-admin/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Credentials of the admin account the test server accepts.
const (
	AdminUsername = "admin"
	AdminPassword = "integration-secret"
)

// SeedFile is the catalogue shipped with the repository.
const SeedFile = "../../data/seed/catalog.yaml"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the schema applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// NewTestServer starts the full stock API against testDB.
func NewTestServer(t *testing.T, testDB *TestDB) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()

	authenticator, err := auth.New(AdminUsername, AdminPassword, "integration-signing-key", time.Hour)
	if err != nil {
		t.Fatalf("failed to create authenticator: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(testDB.Pool, logger)
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	catalogRepo := repository.NewCatalogRepository(testDB.Pool, logger)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(authenticator, logger), logger),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, logger), logger),
		Product:  handler.NewProductHandler(service.NewProductService(productRepo, logger), logger),
		Admin: handler.NewAdminHandler(
			service.NewAdminService(catalogRepo, seed.NewFileLoader(logger), []string{SeedFile}, logger),
			logger,
		),
	}

	server := httptest.NewServer(router.New(h, authenticator, logger))
	t.Cleanup(server.Close)

	return server
}

// CleanupDB removes all rows and restarts the id sequences.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE products, categories RESTART IDENTITY`); err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}
