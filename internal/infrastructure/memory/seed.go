package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minegocio/minegocio-api/internal/domain/entity"
)

// seedBase fecha fija del fixture: los arranques repetidos son deterministas.
var seedBase = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func days(n int) time.Time { return seedBase.AddDate(0, 0, n) }

// seed puebla el store con el fixture de demostración. Cada llamada construye
// los registros desde cero, así ningún arranque comparte memoria con otro.
func seed(s *Store) {
	now := seedBase
	paid := days(-10)

	s.org = &entity.Organization{
		ID:          "org-1736931600000",
		Name:        "Ferretería El Tornillo",
		Plan:        entity.PlanStarter,
		Currency:    "COP",
		Timezone:    "America/Bogota",
		SetupStatus: entity.SetupComplete,
		Industry:    "retail",
		TaxID:       "900123456-7",
		Email:       "contacto@eltornillo.co",
		Phone:       "+57 301 555 0101",
		Address:     "Cra 45 # 12-34, Medellín",
		Subscription: entity.Subscription{
			PlanID:    entity.PlanStarter,
			Status:    "active",
			StartDate: days(-90),
			AutoRenew: true,
		},
		Limits: map[string]entity.UsageLimit{
			"staff":    {Current: 2, Max: 5},
			"invoices": {Current: 3, Max: 100},
			"storage":  {Current: 1, Max: -1},
		},
		Addons: []string{"reports-plus"},
		Modules: map[string]bool{
			entity.ModuleSales:      true,
			entity.ModuleInventory:  true,
			entity.ModuleFinance:    true,
			entity.ModuleHR:         false,
			entity.ModuleOperations: true,
			entity.ModuleMarketing:  false,
			entity.ModuleComms:      true,
		},
		CreatedAt: days(-90),
		UpdatedAt: now,
	}

	s.users = []entity.User{
		{ID: "usr-1736931600001", OrgID: s.org.ID, Email: "ana@eltornillo.co", FullName: "Ana Restrepo", Role: entity.RoleAdmin, Status: entity.UserActive, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "usr-1736931600002", OrgID: s.org.ID, Email: "carlos@eltornillo.co", FullName: "Carlos Mejía", Role: entity.RoleStaff, Status: entity.UserActive, CreatedAt: days(-60), UpdatedAt: now},
	}

	s.employees = []entity.Employee{
		{ID: "emp-1736931600001", FullName: "Ana Restrepo", Email: "ana@eltornillo.co", Position: "Gerente", Department: "Administración", Salary: d("6500000"), HireDate: days(-900), Status: "active", CreatedAt: days(-90)},
		{ID: "emp-1736931600002", FullName: "Carlos Mejía", Email: "carlos@eltornillo.co", Position: "Vendedor", Department: "Ventas", Salary: d("2800000"), HireDate: days(-400), Status: "active", CreatedAt: days(-60)},
		{ID: "emp-1736931600003", FullName: "Lucía Gómez", Email: "lucia@eltornillo.co", Position: "Bodeguera", Department: "Inventario", Salary: d("2500000"), HireDate: days(-200), Status: "active", CreatedAt: days(-50)},
	}

	s.items = []entity.Item{
		{ID: "itm-1736931600001", SKU: "TOR-001", Name: "Tornillo hexagonal 1/2\"", Description: "Caja x100", CostPrice: d("8000"), SellPrice: d("15000"), StockLevel: 120, ReorderLevel: 30, CreatedAt: days(-80)},
		{ID: "itm-1736931600002", SKU: "MAR-010", Name: "Martillo de uña 16oz", Description: "", CostPrice: d("22000"), SellPrice: d("39000"), StockLevel: 8, ReorderLevel: 10, CreatedAt: days(-75)},
		{ID: "itm-1736931600003", SKU: "PIN-205", Name: "Pintura blanca 1gal", Description: "Interior/exterior", CostPrice: d("45000"), SellPrice: d("72000"), StockLevel: 35, ReorderLevel: 12, CreatedAt: days(-70)},
		{ID: "itm-1736931600004", SKU: "TAL-033", Name: "Taladro percutor 650W", Description: "", CostPrice: d("180000"), SellPrice: d("289000"), StockLevel: 6, ReorderLevel: 4, CreatedAt: days(-40)},
	}

	s.invoices = []entity.Invoice{
		{
			ID: "inv-1736931600003", InvoiceNumber: "INV-2026-0003", ClientID: "cnt-1736931600001", ClientName: "Constructora Andina",
			Lines: []entity.InvoiceLine{
				{Description: "Tornillo hexagonal 1/2\" x100", Quantity: d("3"), UnitPrice: d("15000"), Total: d("45000")},
				{Description: "Taladro percutor 650W", Quantity: d("1"), UnitPrice: d("289000"), Total: d("289000")},
			},
			Total: d("334000"), Status: entity.InvoicePending, DueDate: days(15), CreatedAt: days(-2),
		},
		{
			ID: "inv-1736931600002", InvoiceNumber: "INV-2026-0002", ClientID: "cnt-1736931600002", ClientName: "Hogar y Jardín SAS",
			Lines: []entity.InvoiceLine{
				{Description: "Pintura blanca 1gal", Quantity: d("10"), UnitPrice: d("72000"), Total: d("720000")},
			},
			Total: d("720000"), Status: entity.InvoicePaid, DueDate: days(-5), PaidAt: &paid, CreatedAt: days(-20),
		},
		{
			ID: "inv-1736931600001", InvoiceNumber: "INV-2026-0001", ClientID: "cnt-1736931600003", ClientName: "José Ramírez",
			Lines: []entity.InvoiceLine{
				{Description: "Martillo de uña 16oz", Quantity: d("2"), UnitPrice: d("39000"), Total: d("78000")},
			},
			Total: d("78000"), Status: entity.InvoiceOverdue, DueDate: days(-30), CreatedAt: days(-45),
		},
	}

	s.projects = []entity.Project{
		{ID: "prj-1736931600002", Name: "Montaje estantería bodega", ClientName: "Interno", Status: "active", Budget: d("4500000"), StartDate: days(-15), CreatedAt: days(-15)},
		{ID: "prj-1736931600001", Name: "Suministro obra El Poblado", ClientName: "Constructora Andina", Status: "active", Budget: d("28000000"), StartDate: days(-60), CreatedAt: days(-60)},
	}

	s.tasks = []entity.Task{
		{ID: "tsk-1736931600001", ProjectID: "prj-1736931600001", Title: "Cotizar material eléctrico", Status: entity.TaskDone, Assignee: "Carlos Mejía", CreatedAt: days(-58)},
		{ID: "tsk-1736931600002", ProjectID: "prj-1736931600001", Title: "Coordinar entrega semana 3", Status: entity.TaskInProgress, Assignee: "Ana Restrepo", CreatedAt: days(-30)},
		{ID: "tsk-1736931600003", ProjectID: "prj-1736931600002", Title: "Armar estantería pasillo B", Status: entity.TaskTodo, Assignee: "Lucía Gómez", CreatedAt: days(-10)},
	}

	s.expenses = []entity.Expense{
		{ID: "exp-1736931600003", Category: "logística", Description: "Flete entrega obra", Amount: d("180000"), Date: days(-3), Status: "approved", CreatedAt: days(-3)},
		{ID: "exp-1736931600002", Category: "servicios", Description: "Energía local", Amount: d("420000"), Date: days(-12), Status: "approved", CreatedAt: days(-12)},
		{ID: "exp-1736931600001", Category: "arriendo", Description: "Arriendo local enero", Amount: d("3200000"), Date: days(-14), Status: "reimbursed", CreatedAt: days(-14)},
	}

	s.campaigns = []entity.Campaign{
		{ID: "cmp-1736931600002", Name: "Descuento temporada seca", Channel: "social", Status: "active", Budget: d("800000"), Spent: d("250000"), Leads: 14, StartDate: days(-7), CreatedAt: days(-7)},
		{ID: "cmp-1736931600001", Name: "Boletín clientes frecuentes", Channel: "email", Status: "finished", Budget: d("300000"), Spent: d("300000"), Leads: 9, StartDate: days(-40), CreatedAt: days(-40)},
	}

	s.notifications = []entity.Notification{
		{ID: "ntf-1736931600001", Title: "Stock bajo", Body: "Martillo de uña 16oz por debajo del nivel de reorden", Type: "warning", Read: false, CreatedAt: days(-1)},
		{ID: "ntf-1736931600002", Title: "Factura vencida", Body: "INV-2026-0001 lleva 30 días vencida", Type: "alert", Read: false, CreatedAt: days(-1)},
		{ID: "ntf-1736931600003", Title: "Bienvenida", Body: "Tu organización quedó configurada", Type: "info", Read: true, CreatedAt: days(-89)},
	}

	s.leads = []entity.Lead{
		{ID: "led-1736931600003", Name: "Mariana Duque", Company: "Acabados MD", Email: "mariana@acabadosmd.co", Phone: "+57 310 555 0188", Source: "campaign", Status: entity.LeadNew, Value: d("5200000"), CreatedAt: days(-4)},
		{ID: "led-1736931600002", Name: "Pedro Salazar", Company: "Obras PS", Email: "pedro@obrasps.co", Phone: "+57 312 555 0122", Source: "referral", Status: entity.LeadQualified, Value: d("12000000"), CreatedAt: days(-18)},
		{ID: "led-1736931600001", Name: "Laura Cano", Company: "", Email: "laura.cano@gmail.com", Phone: "+57 300 555 0310", Source: "web", Status: entity.LeadLost, Value: d("800000"), CreatedAt: days(-35)},
	}

	s.quotations = []entity.Quotation{
		{ID: "qot-1736931600002", LeadID: "led-1736931600002", ClientName: "Obras PS", Total: d("11500000"), Status: "sent", ValidUntil: days(20), CreatedAt: days(-6)},
		{ID: "qot-1736931600001", LeadID: "led-1736931600001", ClientName: "Laura Cano", Total: d("780000"), Status: "rejected", ValidUntil: days(-10), CreatedAt: days(-34)},
	}

	s.contacts = []entity.Contact{
		{ID: "cnt-1736931600001", Name: "Constructora Andina", Email: "compras@candina.co", Phone: "+57 604 555 0001", Company: "Constructora Andina", Tags: []string{"cliente", "mayorista"}, CreatedAt: days(-85)},
		{ID: "cnt-1736931600002", Name: "Hogar y Jardín SAS", Email: "admin@hogaryjardin.co", Phone: "+57 604 555 0002", Company: "Hogar y Jardín SAS", Tags: []string{"cliente"}, CreatedAt: days(-70)},
		{ID: "cnt-1736931600003", Name: "José Ramírez", Email: "jose.ramirez@gmail.com", Phone: "+57 311 555 0244", Company: "", CreatedAt: days(-50)},
	}

	s.messages = []entity.Message{
		{ID: "msg-1736931600002", Channel: entity.ChannelWhatsApp, Direction: entity.DirectionInbound, ContactID: "cnt-1736931600001", From: "+57 604 555 0001", Body: "¿Tienen disponibilidad del taladro 650W?", Status: "received", ProviderID: "9f1c2a34-6b7d-4e8f-9a10-58c3d2e1f000", SentAt: days(-1)},
		{ID: "msg-1736931600001", Channel: entity.ChannelEmail, Direction: entity.DirectionOutbound, ContactID: "cnt-1736931600002", To: "admin@hogaryjardin.co", Subject: "Factura INV-2026-0002", Body: "Adjuntamos su factura del pedido de pintura.", Status: "sent", ProviderID: "3b8e5c17-2d4a-4f61-8c09-77aa15b2c400", SentAt: days(-20)},
	}

	s.tickets = []entity.Ticket{
		{ID: "tck-1736931600002", Subject: "Cambio de referencia", Description: "Cliente pide cambiar tornillos 1/2 por 3/4", Priority: "medium", Status: "open", ContactID: "cnt-1736931600003", CreatedAt: days(-2)},
		{ID: "tck-1736931600001", Subject: "Demora en entrega", Description: "Pedido de pintura llegó con 2 días de retraso", Priority: "high", Status: "closed", ContactID: "cnt-1736931600002", CreatedAt: days(-18)},
	}

	s.emailAccounts = []entity.EmailAccount{
		{ID: "eac-1736931600001", Address: "ventas@eltornillo.co", Provider: "gmail", Status: "connected", ExternalID: "c7a91d02-5e3f-4b28-a6d4-0f19e8b7c500", ConnectedAt: days(-88)},
	}

	// Métricas coherentes con el fixture: revenue = facturas pagadas,
	// 1 factura pendiente, 1 ítem en stock bajo (martillo, 8 <= 10),
	// leads activos = new + qualified = 2.
	s.metrics = entity.BusinessMetrics{
		TotalRevenue:    d("720000"),
		ActiveLeads:     2,
		PendingInvoices: 1,
		LowStockItems:   1,
		RevenueTrend: []entity.RevenuePoint{
			{Period: "2025-08", Amount: d("9800000")},
			{Period: "2025-09", Amount: d("11250000")},
			{Period: "2025-10", Amount: d("10400000")},
			{Period: "2025-11", Amount: d("12900000")},
			{Period: "2025-12", Amount: d("15600000")},
			{Period: "2026-01", Amount: d("7300000")},
		},
	}
}
