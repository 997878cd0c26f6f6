package usecase

import (
	"time"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// OperationsUseCase creación de proyectos, tareas, gastos y empleados.
// Ninguna de estas colecciones afecta las métricas derivadas.
type OperationsUseCase struct {
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	expenses  repository.ExpenseRepository
	employees repository.EmployeeRepository
	ids       repository.IDGenerator
}

// NewOperationsUseCase construye el caso de uso.
func NewOperationsUseCase(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	expenses repository.ExpenseRepository,
	employees repository.EmployeeRepository,
	ids repository.IDGenerator,
) *OperationsUseCase {
	return &OperationsUseCase{projects: projects, tasks: tasks, expenses: expenses, employees: employees, ids: ids}
}

// CreateProject crea un proyecto (antepuesto: más reciente primero).
func (uc *OperationsUseCase) CreateProject(in dto.CreateProjectRequest) (*entity.Project, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "active"
	}
	start := now
	if in.StartDate != nil {
		start = *in.StartDate
	}
	p := &entity.Project{
		ID:         uc.ids.NewID(repository.PrefixProject),
		Name:       in.Name,
		ClientName: in.ClientName,
		Status:     status,
		Budget:     in.Budget,
		StartDate:  start,
		CreatedAt:  now,
	}
	if err := uc.projects.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateTask crea una tarea referida a un proyecto por ID (sin verificar que exista).
func (uc *OperationsUseCase) CreateTask(in dto.CreateTaskRequest) (*entity.Task, error) {
	status := in.Status
	switch status {
	case entity.TaskTodo, entity.TaskInProgress, entity.TaskDone:
	default:
		status = entity.TaskTodo
	}
	t := &entity.Task{
		ID:        uc.ids.NewID(repository.PrefixTask),
		ProjectID: in.ProjectID,
		Title:     in.Title,
		Status:    status,
		Assignee:  in.Assignee,
		DueDate:   in.DueDate,
		CreatedAt: time.Now(),
	}
	if err := uc.tasks.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateExpense crea un gasto (antepuesto: más reciente primero).
func (uc *OperationsUseCase) CreateExpense(in dto.CreateExpenseRequest) (*entity.Expense, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	status := in.Status
	if status == "" {
		status = "pending"
	}
	e := &entity.Expense{
		ID:          uc.ids.NewID(repository.PrefixExpense),
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		Status:      status,
		CreatedAt:   now,
	}
	if err := uc.expenses.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEmployee crea un empleado (agregado al final: orden de contratación).
func (uc *OperationsUseCase) CreateEmployee(in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	now := time.Now()
	hire := now
	if in.HireDate != nil {
		hire = *in.HireDate
	}
	e := &entity.Employee{
		ID:         uc.ids.NewID(repository.PrefixEmployee),
		FullName:   in.FullName,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
		Salary:     in.Salary,
		HireDate:   hire,
		Status:     "active",
		CreatedAt:  now,
	}
	if err := uc.employees.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}
