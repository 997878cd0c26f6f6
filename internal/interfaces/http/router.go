package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/auth"
	"github.com/minegocio/minegocio-api/internal/application/billing"
	"github.com/minegocio/minegocio-api/internal/application/messaging"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
	"github.com/minegocio/minegocio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	OrgUC         *usecase.OrgUseCase
	Modules       *usecase.ModuleService
	UserUC        *usecase.UserUseCase
	ItemUC        *usecase.ItemUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	Subscription  *billing.SubscriptionUseCase
	OperationsUC  *usecase.OperationsUseCase
	CRMUC         *usecase.CRMUseCase
	MarketingUC   *usecase.MarketingUseCase
	MessagingUC   *messaging.MessagingUseCase
	DashboardUC   *analytics.DashboardUseCase
	InsightUC     *usecase.InsightUseCase

	Store       *memory.Store
	Log         *logger.Logger
	JWTSecret   string
	MockLatency time.Duration
	PromReg     *prometheus.Registry
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())

	// Rutas de operación, registradas antes de la latencia simulada para
	// que health checks y scraping no la paguen.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.PromReg != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.PromReg, promhttp.HandlerOpts{})))
	} else {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	if deps.PromReg != nil {
		app.Use(MetricsMiddleware(deps.PromReg))
	}
	app.Use(SimulatedLatency(deps.MockLatency))
	app.Use(SessionMiddleware(deps.JWTSecret))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/signup", authHandler.Signup)

	// Organización y configuración inicial
	orgHandler := NewOrgHandler(deps.OrgUC, deps.Modules)
	app.Get("/orgs/:id", orgHandler.Get)
	app.Post("/setup/reset", orgHandler.SetupReset)
	app.Post("/setup/complete", orgHandler.SetupComplete)
	app.Post("/modules/:name/enable", orgHandler.EnableModule)
	app.Post("/modules/:name/disable", orgHandler.DisableModule)

	// Usuarios del equipo
	userHandler := NewUserHandler(deps.UserUC)
	app.Post("/users", userHandler.Create)
	app.Delete("/users/:id", userHandler.Delete)

	// Ventas y suscripción
	salesHandler := NewSalesHandler(deps.ItemUC, deps.CreateInvoice, deps.Subscription)
	app.Post("/items", salesHandler.CreateItem)
	app.Post("/invoices", salesHandler.CreateInvoice)
	app.Post("/subscription/upgrade", salesHandler.UpgradeSubscription)
	app.Post("/addons/purchase", salesHandler.PurchaseAddon)

	// Operaciones
	opsHandler := NewOperationsHandler(deps.OperationsUC)
	app.Post("/projects", opsHandler.CreateProject)
	app.Post("/tasks", opsHandler.CreateTask)
	app.Post("/expenses", opsHandler.CreateExpense)
	app.Post("/employees", opsHandler.CreateEmployee)

	// CRM y soporte
	crmHandler := NewCRMHandler(deps.CRMUC)
	app.Post("/leads", crmHandler.CreateLead)
	app.Post("/quotations", crmHandler.CreateQuotation)
	app.Post("/contacts", crmHandler.CreateContact)
	app.Post("/tickets", crmHandler.CreateTicket)

	// Marketing y notificaciones
	mktHandler := NewMarketingHandler(deps.MarketingUC)
	app.Post("/marketing/campaigns", mktHandler.CreateCampaign)
	app.Post("/notifications/mark-read/:target", mktHandler.MarkRead)

	// Mensajería
	msgHandler := NewMessagingHandler(deps.MessagingUC)
	app.Post("/whatsapp/send", msgHandler.SendWhatsApp)
	app.Post("/whatsapp/webhook", msgHandler.ReceiveWhatsApp)
	app.Post("/email/send", msgHandler.SendEmail)
	app.Post("/email/connect", msgHandler.ConnectEmail)

	// Dashboard e insights
	dashHandler := NewDashboardHandler(deps.DashboardUC, deps.InsightUC)
	app.Get("/dashboard/summary", dashHandler.Summary)
	app.Get("/insights", dashHandler.Insights)

	// Lecturas genéricas de colecciones
	resHandler := NewResourceHandler(deps.Store, deps.Log)
	for _, path := range []string{
		"/users", "/employees", "/items", "/invoices",
		"/projects", "/tasks", "/expenses",
		"/marketing/campaigns", "/notifications",
		"/leads", "/quotations", "/messages", "/tickets", "/contacts",
		"/email/accounts",
	} {
		app.Get(path, resHandler.Collection)
	}

	// Toda ruta que termine en /enable y no tenga handler propio se
	// confirma con éxito. Va después de /modules/:name/enable para que la
	// gestión de módulos conserve su handler específico.
	app.Post("/*/enable", resHandler.Ack)

	// Comodín: cualquier ruta no registrada responde 200 {}.
	app.Use(resHandler.NotFound)
}
