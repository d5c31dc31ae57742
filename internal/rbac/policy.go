package rbac

// Resources and actions enforced across route registrations.
const (
	ResourceEmployee  = "employee"
	ResourcePayment   = "payment"
	ResourceGateway   = "gateway"
	ResourceDashboard = "dashboard"

	ActionManage       = "manage"
	ActionVerify       = "verify"
	ActionListVerified = "list_verified"
	ActionRequest      = "request"
	ActionApprove      = "approve"
	ActionListUnpaid   = "list_unpaid"
	ActionCreateIntent = "create_intent"
	ActionRead         = "read"
)

// policyTable is the authorization table: who may do what. HR requests
// payments and verifies employees; admin manages the roster and settles
// payroll; both read the dashboard.
func policyTable() [][3]string {
	return [][3]string{
		{"hr", ResourcePayment, ActionRequest},
		{"hr", ResourceGateway, ActionCreateIntent},
		{"hr", ResourceEmployee, ActionVerify},
		{"hr", ResourceDashboard, ActionRead},

		{"admin", ResourcePayment, ActionApprove},
		{"admin", ResourcePayment, ActionListUnpaid},
		{"admin", ResourceEmployee, ActionManage},
		{"admin", ResourceEmployee, ActionListVerified},
		{"admin", ResourceDashboard, ActionRead},
	}
}
