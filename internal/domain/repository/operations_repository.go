package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// ProjectRepository define el puerto de acceso a proyectos.
type ProjectRepository interface {
	List() ([]entity.Project, error)
	// Create antepone el proyecto (más reciente primero).
	Create(p *entity.Project) error
}

// TaskRepository define el puerto de acceso a tareas.
type TaskRepository interface {
	List() ([]entity.Task, error)
	Create(t *entity.Task) error
}

// ExpenseRepository define el puerto de acceso a gastos.
type ExpenseRepository interface {
	List() ([]entity.Expense, error)
	// Create antepone el gasto (más reciente primero).
	Create(e *entity.Expense) error
}

// EmployeeRepository define el puerto de acceso a empleados.
type EmployeeRepository interface {
	List() ([]entity.Employee, error)
	// Create agrega al final (más antiguo primero, orden de contratación).
	Create(e *entity.Employee) error
}
