package dashboard

type RecentPayment struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Amount int64  `json:"amount"`
	PaidAt string `json:"paidAt"`
}

// Summary is the HR/admin dashboard aggregate. PendingSalary may go
// negative when disbursements outrun the current obligation.
type Summary struct {
	TotalEmployees  int64           `json:"total_employees"`
	TotalSalary     int64           `json:"total_salary"`
	TotalPaidSalary int64           `json:"total_paid_salary"`
	PendingSalary   int64           `json:"pending_salary"`
	RecentPayments  []RecentPayment `json:"recent_payments"`
}
