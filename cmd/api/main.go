package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appanalytics "github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/auth"
	"github.com/minegocio/minegocio-api/internal/application/billing"
	"github.com/minegocio/minegocio-api/internal/application/messaging"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	infraai "github.com/minegocio/minegocio-api/internal/infrastructure/ai"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
	httpRouter "github.com/minegocio/minegocio-api/internal/interfaces/http"
	"github.com/minegocio/minegocio-api/pkg/config"
	"github.com/minegocio/minegocio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("latency_ms", cfg.Mock.LatencyMS).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria: un tenant, datos sembrados al arrancar.
	store := memory.NewStore()

	orgRepo := memory.NewOrganizationRepository(store)
	userRepo := memory.NewUserRepository(store)
	itemRepo := memory.NewItemRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	quotationRepo := memory.NewQuotationRepository(store)
	projectRepo := memory.NewProjectRepository(store)
	taskRepo := memory.NewTaskRepository(store)
	expenseRepo := memory.NewExpenseRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	leadRepo := memory.NewLeadRepository(store)
	contactRepo := memory.NewContactRepository(store)
	ticketRepo := memory.NewTicketRepository(store)
	messageRepo := memory.NewMessageRepository(store)
	accountRepo := memory.NewEmailAccountRepository(store)
	campaignRepo := memory.NewCampaignRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	metricsRepo := memory.NewMetricsRepository(store)
	tenantRepo := memory.NewTenantRepository(store)

	recalc := appanalytics.NewRecalculator(itemRepo, invoiceRepo, leadRepo, metricsRepo)

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, tenantRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orgUC := usecase.NewOrgUseCase(orgRepo)
	moduleSvc := usecase.NewModuleService(orgRepo)
	userUC := usecase.NewUserUseCase(userRepo, orgRepo, store)
	itemUC := usecase.NewItemUseCase(itemRepo, store, recalc)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(invoiceRepo, store, recalc)
	subscriptionUC := billing.NewSubscriptionUseCase(orgRepo)
	operationsUC := usecase.NewOperationsUseCase(projectRepo, taskRepo, expenseRepo, employeeRepo, store)
	crmUC := usecase.NewCRMUseCase(leadRepo, quotationRepo, contactRepo, ticketRepo, store, recalc)
	marketingUC := usecase.NewMarketingUseCase(campaignRepo, notificationRepo, store)
	messagingUC := messaging.NewMessagingUseCase(messageRepo, accountRepo, store)
	dashboardUC := appanalytics.NewDashboardUseCase(metricsRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model)
	insightUC := usecase.NewInsightUseCase(anthropicSvc, metricsRepo, log)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		OrgUC:         orgUC,
		Modules:       moduleSvc,
		UserUC:        userUC,
		ItemUC:        itemUC,
		CreateInvoice: createInvoiceUC,
		Subscription:  subscriptionUC,
		OperationsUC:  operationsUC,
		CRMUC:         crmUC,
		MarketingUC:   marketingUC,
		MessagingUC:   messagingUC,
		DashboardUC:   dashboardUC,
		InsightUC:     insightUC,
		Store:         store,
		Log:           log,
		JWTSecret:     cfg.JWT.Secret,
		MockLatency:   cfg.Mock.Latency(),
		PromReg:       promReg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servidor detenido")
}
