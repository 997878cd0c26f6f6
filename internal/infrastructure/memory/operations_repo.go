package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var (
	_ repository.ProjectRepository  = (*ProjectRepo)(nil)
	_ repository.TaskRepository     = (*TaskRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
)

// ProjectRepo adaptador de proyectos sobre el store en memoria.
type ProjectRepo struct {
	store *Store
}

// NewProjectRepository construye el adaptador de proyectos.
func NewProjectRepository(store *Store) *ProjectRepo {
	return &ProjectRepo{store: store}
}

// List devuelve una copia de la colección de proyectos.
func (r *ProjectRepo) List() ([]entity.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.projects), nil
}

// Create antepone el proyecto (más reciente primero).
func (r *ProjectRepo) Create(p *entity.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.projects = prepend(r.store.projects, *p)
	return nil
}

// TaskRepo adaptador de tareas sobre el store en memoria.
type TaskRepo struct {
	store *Store
}

// NewTaskRepository construye el adaptador de tareas.
func NewTaskRepository(store *Store) *TaskRepo {
	return &TaskRepo{store: store}
}

// List devuelve una copia de la colección de tareas.
func (r *TaskRepo) List() ([]entity.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.tasks), nil
}

// Create agrega la tarea al final de la colección.
func (r *TaskRepo) Create(t *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tasks = append(r.store.tasks, *t)
	return nil
}

// ExpenseRepo adaptador de gastos sobre el store en memoria.
type ExpenseRepo struct {
	store *Store
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(store *Store) *ExpenseRepo {
	return &ExpenseRepo{store: store}
}

// List devuelve una copia de la colección de gastos.
func (r *ExpenseRepo) List() ([]entity.Expense, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.expenses), nil
}

// Create antepone el gasto (más reciente primero).
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.expenses = prepend(r.store.expenses, *e)
	return nil
}

// EmployeeRepo adaptador de empleados sobre el store en memoria.
type EmployeeRepo struct {
	store *Store
}

// NewEmployeeRepository construye el adaptador de empleados.
func NewEmployeeRepository(store *Store) *EmployeeRepo {
	return &EmployeeRepo{store: store}
}

// List devuelve una copia de la colección de empleados.
func (r *EmployeeRepo) List() ([]entity.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.employees), nil
}

// Create agrega al final (orden de contratación, más antiguo primero).
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.employees = append(r.store.employees, *e)
	return nil
}
