package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
)

func buildUserUC(s *memory.Store) *usecase.UserUseCase {
	return usecase.NewUserUseCase(memory.NewUserRepository(s), memory.NewOrganizationRepository(s), s)
}

// Con asientos disponibles el usuario se crea en estado pending y el contador
// de staff sube en la organización.
func TestUserCreate_ConsumeAsiento(t *testing.T) {
	s := memory.NewStore() // fixture: staff 2/5
	uc := buildUserUC(s)

	user, err := uc.Create(dto.CreateUserRequest{Email: "lucia@eltornillo.co", FullName: "Lucía Gómez"})
	require.NoError(t, err)
	assert.Equal(t, entity.UserPending, user.Status, "los invitados nacen pendientes")
	assert.Equal(t, entity.RoleStaff, user.Role, "rol por defecto")

	org, err := memory.NewOrganizationRepository(s).Get()
	require.NoError(t, err)
	assert.Equal(t, 3, org.Limits["staff"].Current)
}

// Con el límite alcanzado la creación se rechaza con ErrLimitReached.
func TestUserCreate_LimiteAlcanzado(t *testing.T) {
	s := memory.NewStore()
	orgRepo := memory.NewOrganizationRepository(s)

	org, err := orgRepo.Get()
	require.NoError(t, err)
	org.Limits["staff"] = entity.UsageLimit{Current: 5, Max: 5}
	require.NoError(t, orgRepo.Save(org))

	uc := buildUserUC(s)
	_, err = uc.Create(dto.CreateUserRequest{Email: "otro@eltornillo.co"})
	assert.ErrorIs(t, err, domain.ErrLimitReached)

	users, err := memory.NewUserRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, users, 2, "no debe crearse ningún usuario al rechazar")
}

// Max = -1 significa asientos ilimitados.
func TestUserCreate_LimiteIlimitado(t *testing.T) {
	s := memory.NewStore()
	orgRepo := memory.NewOrganizationRepository(s)

	org, err := orgRepo.Get()
	require.NoError(t, err)
	org.Limits["staff"] = entity.UsageLimit{Current: 9999, Max: -1}
	require.NoError(t, orgRepo.Save(org))

	uc := buildUserUC(s)
	_, err = uc.Create(dto.CreateUserRequest{Email: "masuno@eltornillo.co"})
	assert.NoError(t, err)
}

func TestUserCreate_SinEmail_Falla(t *testing.T) {
	uc := buildUserUC(memory.NewStore())

	_, err := uc.Create(dto.CreateUserRequest{FullName: "Sin Correo"})
	assert.ErrorIs(t, err, domain.ErrEmailRequired)
}

// Borrar un usuario libera su asiento de staff.
func TestUserDelete_LiberaAsiento(t *testing.T) {
	s := memory.NewStore()
	uc := buildUserUC(s)

	require.NoError(t, uc.Delete("usr-1736931600002"))

	org, err := memory.NewOrganizationRepository(s).Get()
	require.NoError(t, err)
	assert.Equal(t, 1, org.Limits["staff"].Current)
}

func TestUserDelete_NoExiste(t *testing.T) {
	uc := buildUserUC(memory.NewStore())
	assert.ErrorIs(t, uc.Delete("usr-fantasma"), domain.ErrUserNotFound)
}
