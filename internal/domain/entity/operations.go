package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Task.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// Project representa un proyecto de operaciones.
type Project struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ClientName string          `json:"clientName"`
	Status     string          `json:"status"` // active, on_hold, completed
	Budget     decimal.Decimal `json:"budget"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Task representa una tarea asociada a un proyecto (referencia por ProjectID, sin integridad referencial).
type Task struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Status    string     `json:"status"` // todo, in_progress, done
	Assignee  string     `json:"assignee"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Expense representa un gasto del negocio.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"` // pending, approved, reimbursed
	CreatedAt   time.Time       `json:"createdAt"`
}

// Employee representa un empleado (módulo HR).
type Employee struct {
	ID         string          `json:"id"`
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   time.Time       `json:"hireDate"`
	Status     string          `json:"status"` // active, on_leave, terminated
	CreatedAt  time.Time       `json:"createdAt"`
}
