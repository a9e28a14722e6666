package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/ledger"
	"github.com/pocket-estoque/api/internal/application/report"
	"github.com/pocket-estoque/api/internal/application/usecase"
	"github.com/pocket-estoque/api/internal/infrastructure/postgres"
	httpRouter "github.com/pocket-estoque/api/internal/interfaces/http"
	"github.com/pocket-estoque/api/pkg/config"
	"github.com/pocket-estoque/api/pkg/logger"

	_ "github.com/lib/pq"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}
	log.Info().Msg("migrações aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	depositoRepo := postgres.NewDepositoRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedger := ledger.NewLedger(txRunner)
	produtoUC := usecase.NewProdutoUseCase(txRunner, stockLedger, produtoRepo, depositoRepo)
	depositoUC := usecase.NewDepositoUseCase(depositoRepo, estoqueRepo)
	empresaUC := usecase.NewEmpresaUseCase(txRunner, empresaRepo, usuarioRepo)
	reportUC := report.NewReportUseCase(reportRepo)
	authUC := auth.NewAuthUseCase(txRunner, usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(reg)
	app.Use(metrics.Middleware())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pocket Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	loginLimiter := httpRouter.NewLoginRateLimiter(rate.Limit(1), 5)
	go func() {
		for range time.Tick(time.Minute) {
			loginLimiter.LimparInativos(5 * time.Minute)
		}
	}()

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmpresaUC:    empresaUC,
		ProdutoUC:    produtoUC,
		DepositoUC:   depositoUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
		LoginLimiter: loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
