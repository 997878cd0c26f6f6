package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada de POST /projects.
type CreateProjectRequest struct {
	Name       string          `json:"name"`
	ClientName string          `json:"clientName"`
	Status     string          `json:"status"`
	Budget     decimal.Decimal `json:"budget"`
	StartDate  *time.Time      `json:"startDate"`
}

// CreateTaskRequest entrada de POST /tasks.
type CreateTaskRequest struct {
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Assignee  string     `json:"assignee"`
	DueDate   *time.Time `json:"dueDate"`
}

// CreateExpenseRequest entrada de POST /expenses.
type CreateExpenseRequest struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"`
	Status      string          `json:"status"`
}

// CreateEmployeeRequest entrada de POST /employees.
type CreateEmployeeRequest struct {
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   *time.Time      `json:"hireDate"`
}
