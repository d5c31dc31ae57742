package employee

type RegisterEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Role        string `json:"role" binding:"omitempty,oneof=employee hr admin"`
	Designation string `json:"designation"`
	BankAccount string `json:"bank_account"`
	PhotoURL    string `json:"photo_url"`
	Salary      int64  `json:"salary" binding:"gte=0"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee hr admin"`
}

type SetVerificationRequest struct {
	IsVerified *bool `json:"isVerified" binding:"required"`
}

type UpdateSalaryRequest struct {
	Salary *int64 `json:"salary" binding:"required,gte=0"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Designation string `json:"designation,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Salary      int64  `json:"salary"`
	IsVerified  bool   `json:"isVerified"`
	IsFired     bool   `json:"isFired"`
	CreatedAt   string `json:"created_at"`
}

type RoleResponse struct {
	Role *string `json:"role"`
}
