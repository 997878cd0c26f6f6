package repository

// IDGenerator genera IDs opacos {prefijo}-{timestamp}, únicos por colección
// dentro de la vida del proceso. Lo implementa el store en memoria.
type IDGenerator interface {
	NewID(prefix string) string
}

// Prefijos de ID por colección.
const (
	PrefixUser         = "usr"
	PrefixOrg          = "org"
	PrefixEmployee     = "emp"
	PrefixItem         = "itm"
	PrefixInvoice      = "inv"
	PrefixProject      = "prj"
	PrefixTask         = "tsk"
	PrefixExpense      = "exp"
	PrefixCampaign     = "cmp"
	PrefixNotification = "ntf"
	PrefixLead         = "led"
	PrefixQuotation    = "qot"
	PrefixMessage      = "msg"
	PrefixTicket       = "tck"
	PrefixContact      = "cnt"
	PrefixEmailAccount = "eac"
)
