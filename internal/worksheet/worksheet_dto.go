package worksheet

type SubmitWorkEntryRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Task  string  `json:"task" binding:"required"`
	Hours float64 `json:"hours" binding:"gte=0"`
	Date  string  `json:"date" binding:"required"`
}

type UpdateWorkEntryRequest struct {
	Task  string   `json:"task"`
	Hours *float64 `json:"hours" binding:"omitempty,gte=0"`
	Date  string   `json:"date"`
}

// ListWorkEntriesFilter narrows the listing to one employee and/or one
// payroll period. Month and year only apply together.
type ListWorkEntriesFilter struct {
	Email string `form:"email"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int    `form:"year" binding:"omitempty,min=1970"`
}

type WorkEntryResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Task  string  `json:"task"`
	Hours float64 `json:"hours"`
	Date  string  `json:"date"`
}
