package usecase

import (
	"time"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// UserUseCase altas y bajas de usuarios, con control del límite de asientos del plan.
type UserUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	ids      repository.IDGenerator
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, ids repository.IDGenerator) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, orgRepo: orgRepo, ids: ids}
}

// Create crea un usuario en estado pending. Aplica el límite "staff" del plan:
// ErrLimitReached si current ya llegó a max (max = -1 es ilimitado). El
// contador current se actualiza en la organización al crear.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*entity.User, error) {
	if in.Email == "" {
		return nil, domain.ErrEmailRequired
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	limit := org.Limits["staff"]
	if !limit.Allows() {
		return nil, domain.ErrLimitReached
	}

	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	now := time.Now()
	user := &entity.User{
		ID:        uc.ids.NewID(repository.PrefixUser),
		OrgID:     org.ID,
		Email:     in.Email,
		FullName:  in.FullName,
		Role:      role,
		Status:    entity.UserPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	limit.Current++
	org.Limits["staff"] = limit
	org.UpdatedAt = now
	if err := uc.orgRepo.Save(org); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete elimina el usuario por ID y libera su asiento de staff.
func (uc *UserUseCase) Delete(id string) error {
	if err := uc.userRepo.Delete(id); err != nil {
		return err
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return err
	}
	limit := org.Limits["staff"]
	if limit.Current > 0 {
		limit.Current--
	}
	org.Limits["staff"] = limit
	org.UpdatedAt = time.Now()
	return uc.orgRepo.Save(org)
}
