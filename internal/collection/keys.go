package collection

// Storage keys. These names predate this codebase: stores written by earlier
// versions of the portal use them, so changing one orphans existing data.
const (
	KeySession     = "eztech_current_user"
	KeyEmployees   = "eztech_employees"
	KeyCustomers   = "eztech_customers"
	KeyServices    = "eztech_services"
	KeyAttendances = "eztech_attendances"
	KeyAuditLogs   = "eztech_audit_logs"
	KeyCredentials = "eztech_credentials"
)
