package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
)

func buildOpsUC(s *memory.Store) *usecase.OperationsUseCase {
	return usecase.NewOperationsUseCase(
		memory.NewProjectRepository(s),
		memory.NewTaskRepository(s),
		memory.NewExpenseRepository(s),
		memory.NewEmployeeRepository(s),
		s,
	)
}

// Un status de tarea fuera del conjunto conocido cae a todo.
func TestCreateTask_StatusInvalidoCaeATodo(t *testing.T) {
	uc := buildOpsUC(memory.NewStore())

	task, err := uc.CreateTask(dto.CreateTaskRequest{Title: "Revisar bodega", Status: "inventado"})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskTodo, task.Status)
}

func TestCreateTask_StatusValidoSeRespeta(t *testing.T) {
	uc := buildOpsUC(memory.NewStore())

	task, err := uc.CreateTask(dto.CreateTaskRequest{Title: "En curso", Status: entity.TaskInProgress})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskInProgress, task.Status)
}

// Las tareas se agregan al final; los proyectos y gastos se anteponen.
func TestOperations_OrdenDeInsercion(t *testing.T) {
	s := memory.NewStore()
	uc := buildOpsUC(s)

	task, err := uc.CreateTask(dto.CreateTaskRequest{Title: "Última tarea"})
	require.NoError(t, err)
	tasks, _ := memory.NewTaskRepository(s).List()
	assert.Equal(t, task.ID, tasks[len(tasks)-1].ID, "tareas al final")

	pr, err := uc.CreateProject(dto.CreateProjectRequest{Name: "Proyecto nuevo"})
	require.NoError(t, err)
	projects, _ := memory.NewProjectRepository(s).List()
	assert.Equal(t, pr.ID, projects[0].ID, "proyectos antepuestos")

	ex, err := uc.CreateExpense(dto.CreateExpenseRequest{Category: "varios", Amount: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	expenses, _ := memory.NewExpenseRepository(s).List()
	assert.Equal(t, ex.ID, expenses[0].ID, "gastos antepuestos")
}

func TestCreateEmployee_AgregadoAlFinal(t *testing.T) {
	s := memory.NewStore()
	uc := buildOpsUC(s)

	emp, err := uc.CreateEmployee(dto.CreateEmployeeRequest{
		FullName: "Nuevo Empleado",
		Salary:   decimal.NewFromInt(2000000),
	})
	require.NoError(t, err)
	assert.Equal(t, "active", emp.Status)
	assert.False(t, emp.HireDate.IsZero())

	emps, _ := memory.NewEmployeeRepository(s).List()
	assert.Equal(t, emp.ID, emps[len(emps)-1].ID, "empleados en orden de contratación")
}

func TestCreateProject_Defaults(t *testing.T) {
	uc := buildOpsUC(memory.NewEmptyStore())

	p, err := uc.CreateProject(dto.CreateProjectRequest{Name: "Obra sur"})
	require.NoError(t, err)
	assert.Equal(t, "active", p.Status)
	assert.False(t, p.StartDate.IsZero())
}
