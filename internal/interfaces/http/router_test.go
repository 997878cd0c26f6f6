package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/auth"
	"github.com/minegocio/minegocio-api/internal/application/billing"
	"github.com/minegocio/minegocio-api/internal/application/messaging"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	infraai "github.com/minegocio/minegocio-api/internal/infrastructure/ai"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
	apphttp "github.com/minegocio/minegocio-api/internal/interfaces/http"
	"github.com/minegocio/minegocio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildServer arma la app completa sobre un store sembrado, sin latencia
// simulada. Es el mismo cableado que hace el main.
func buildServer(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	orgRepo := memory.NewOrganizationRepository(store)
	userRepo := memory.NewUserRepository(store)
	itemRepo := memory.NewItemRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	leadRepo := memory.NewLeadRepository(store)
	metricsRepo := memory.NewMetricsRepository(store)

	recalc := appanalytics.NewRecalculator(itemRepo, invoiceRepo, leadRepo, metricsRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, orgRepo, memory.NewTenantRepository(store), store, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		OrgUC:         usecase.NewOrgUseCase(orgRepo),
		Modules:       usecase.NewModuleService(orgRepo),
		UserUC:        usecase.NewUserUseCase(userRepo, orgRepo, store),
		ItemUC:        usecase.NewItemUseCase(itemRepo, store, recalc),
		CreateInvoice: billing.NewCreateInvoiceUseCase(invoiceRepo, store, recalc),
		Subscription:  billing.NewSubscriptionUseCase(orgRepo),
		OperationsUC: usecase.NewOperationsUseCase(
			memory.NewProjectRepository(store),
			memory.NewTaskRepository(store),
			memory.NewExpenseRepository(store),
			memory.NewEmployeeRepository(store),
			store,
		),
		CRMUC: usecase.NewCRMUseCase(
			leadRepo,
			memory.NewQuotationRepository(store),
			memory.NewContactRepository(store),
			memory.NewTicketRepository(store),
			store,
			recalc,
		),
		MarketingUC: usecase.NewMarketingUseCase(
			memory.NewCampaignRepository(store),
			memory.NewNotificationRepository(store),
			store,
		),
		MessagingUC: messaging.NewMessagingUseCase(
			memory.NewMessageRepository(store),
			memory.NewEmailAccountRepository(store),
			store,
		),
		DashboardUC: appanalytics.NewDashboardUseCase(metricsRepo),
		// API key vacía: el insight degrada al placeholder sin fallar.
		InsightUC:   usecase.NewInsightUseCase(infraai.NewAnthropicService("", ""), metricsRepo, logger.Nop()),
		Store:       store,
		Log:         logger.Nop(),
		JWTSecret:   testJWTSecret,
		MockLatency: 0,
		PromReg:     prometheus.NewRegistry(),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func decodeSlice(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()
	var s []interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Comodín y lecturas genéricas
// ──────────────────────────────────────────────────────────────────────────────

// Una ruta desconocida responde 200 con objeto vacío, nunca 404: el frontend
// puede llamar endpoints que todavía no existen sin romperse.
func TestRouter_RutaDesconocida_Devuelve200Vacio(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodGet, "/ruta/que/no/existe", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeMap(t, resp))
}

func TestRouter_PostDesconocido_Devuelve200Vacio(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/todavia/no/implementado", `{"x":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeMap(t, resp))
}

func TestRouter_GetColecciones(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodGet, "/items", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeSlice(t, resp), 4, "el fixture trae 4 ítems")

	resp2 := doJSON(t, app, http.MethodGet, "/marketing/campaigns", "")
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Len(t, decodeSlice(t, resp2), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Login_SinEmail_401(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "AUTH", body["code"])
}

func TestRouter_Login_EmailDesconocido_CaeAlPrimero(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", `{"email":"nadie@example.com","password":"x"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["accessToken"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ana@eltornillo.co", user["email"])
}

// Con la colección de usuarios vacía el login falla con un mensaje propio,
// distinto al de email faltante.
func TestRouter_Login_SinUsuarios_401MensajePropio(t *testing.T) {
	app, _ := buildServer(t)

	for _, id := range []string{"usr-1736931600001", "usr-1736931600002"} {
		del := doJSON(t, app, http.MethodDelete, "/users/"+id, "")
		require.Equal(t, http.StatusOK, del.StatusCode)
		del.Body.Close()
	}

	resp := doJSON(t, app, http.MethodPost, "/auth/login", `{"email":"ana@eltornillo.co","password":"x"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "AUTH", body["code"])
	assert.Equal(t, "no hay usuarios registrados", body["message"])
}

func TestRouter_Signup_ReseteaYColeccionesQuedanVacias(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/auth/signup",
		`{"email":"fundador@negocio.co","password":"s3creta","fullName":"Fundador"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	items := doJSON(t, app, http.MethodGet, "/items", "")
	defer items.Body.Close()
	assert.Empty(t, decodeSlice(t, items), "tras el signup no quedan ítems")

	users := doJSON(t, app, http.MethodGet, "/users", "")
	defer users.Body.Close()
	assert.Len(t, decodeSlice(t, users), 1, "solo el admin nuevo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems y métricas
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: crear un ítem con stock como string y ver el efecto en el
// resumen del dashboard en la lectura siguiente.
func TestRouter_CrearItemConStockString_ActualizaDashboard(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/items",
		`{"sku":"BOL-001","name":"Bolt","stockLevel":"5","reOrderLevel":10}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	item := decodeMap(t, resp)
	assert.Equal(t, float64(5), item["stockLevel"])
	assert.Equal(t, float64(10), item["reOrderLevel"])

	sum := doJSON(t, app, http.MethodGet, "/dashboard/summary", "")
	defer sum.Body.Close()
	require.Equal(t, http.StatusOK, sum.StatusCode)
	metrics := decodeMap(t, sum)
	assert.Equal(t, float64(2), metrics["lowStockItems"],
		"el ítem nuevo (5 <= 10) se suma al martillo del fixture")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y límites
// ──────────────────────────────────────────────────────────────────────────────

// Bajar al plan free deja el cupo de staff excedido; la siguiente alta se
// rechaza con 403 LIMIT_REACHED.
func TestRouter_LimiteDeStaff_403(t *testing.T) {
	app, _ := buildServer(t)

	down := doJSON(t, app, http.MethodPost, "/subscription/upgrade", `{"planId":"free"}`)
	defer down.Body.Close()
	require.Equal(t, http.StatusOK, down.StatusCode)

	resp := doJSON(t, app, http.MethodPost, "/users", `{"email":"tercero@eltornillo.co"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "LIMIT_REACHED", body["code"])
}

func TestRouter_DeleteUser_Inexistente_404(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodDelete, "/users/usr-fantasma", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CrearFactura_NumeroYTotal(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/invoices",
		`{"clientName":"Constructora Andina","items":[
			{"description":"Tornillos","quantity":3,"unitPrice":15000,"total":45000},
			{"description":"Taladro","quantity":1,"unitPrice":289000,"total":289000}
		]}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	inv := decodeMap(t, resp)
	assert.Equal(t, fmt.Sprintf("INV-%d-0004", time.Now().Year()), inv["invoiceNumber"])
	assert.Equal(t, "334000", fmt.Sprintf("%v", inv["total"]))
	assert.Equal(t, "pending", inv["status"])

	invoices := doJSON(t, app, http.MethodGet, "/invoices", "")
	defer invoices.Body.Close()
	list := decodeSlice(t, invoices)
	require.Len(t, list, 4)
	first := list[0].(map[string]interface{})
	assert.Equal(t, inv["id"], first["id"], "la factura nueva va primero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones, módulos, suscripción
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_MarkReadAll(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/notifications/mark-read/all", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["updated"])
}

func TestRouter_MarkRead_Inexistente_404(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/notifications/mark-read/ntf-999", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ToggleModulo(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/modules/marketing/enable", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, true, body["success"])

	org := doJSON(t, app, http.MethodGet, "/orgs/org-cualquiera", "")
	defer org.Body.Close()
	orgBody := decodeMap(t, org)
	modules := orgBody["modules"].(map[string]interface{})
	assert.Equal(t, true, modules["marketing"])
}

// Cualquier ruta que termine en /enable sin handler propio se confirma con
// éxito en lugar de caer al comodín de objeto vacío.
func TestRouter_EnableGenerico_ConfirmaExito(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/integrations/zapier/enable", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, true, body["success"])
}

func TestRouter_Upgrade_PlanDesconocido_400(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/subscription/upgrade", `{"planId":"platino"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mensajería e insights
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_EnviarWhatsApp(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodPost, "/whatsapp/send",
		`{"contactId":"cnt-1736931600001","to":"+57 604 555 0001","body":"Su pedido está listo"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	msg := decodeMap(t, resp)
	assert.Equal(t, "whatsapp", msg["channel"])
	assert.Equal(t, "outbound", msg["direction"])
	assert.NotEmpty(t, msg["providerId"])
}

// Sin API key el insight degrada al placeholder con source fallback;
// el endpoint nunca devuelve error.
func TestRouter_Insights_DegradaAFallback(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodGet, "/insights", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "fallback", body["source"])
	assert.NotEmpty(t, body["body"])
}

func TestRouter_Health(t *testing.T) {
	app, _ := buildServer(t)

	resp := doJSON(t, app, http.MethodGet, "/health", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
