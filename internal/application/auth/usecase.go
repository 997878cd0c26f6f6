package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
	"github.com/minegocio/minegocio-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login simulado y signup con reset de tenant.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	orgRepo    repository.OrganizationRepository
	tenantRepo repository.TenantRepository
	ids        repository.IDGenerator
	jwtCfg     JWTConfig
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	tenantRepo repository.TenantRepository,
	ids repository.IDGenerator,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		tenantRepo: tenantRepo,
		ids:        ids,
		jwtCfg:     jwtCfg,
		now:        time.Now,
	}
}

// Login simula el inicio de sesión. El password NO se verifica: este backend
// existe para que el frontend ejercite sus flujos. La única entrada rechazada
// es un email ausente (ErrEmailRequired). Si el email no corresponde a ningún
// usuario, cae al primer usuario de la colección.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrEmailRequired
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if user, err = uc.userRepo.First(); err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrgID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{AccessToken: token, User: *user}, nil
}

// Signup da de alta un tenant NUEVO: reemplaza la organización por una en
// setup pendiente con un solo asiento de staff, deja un único usuario admin
// y vacía todas las demás colecciones y las métricas. Es el único caso de uso
// que muta más de una colección.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	fullName := in.FullName
	if fullName == "" {
		fullName = strings.SplitN(in.Email, "@", 2)[0]
	}

	org := &entity.Organization{
		ID:          uc.ids.NewID(repository.PrefixOrg),
		Plan:        entity.PlanFree,
		Currency:    "COP",
		Timezone:    "America/Bogota",
		SetupStatus: entity.SetupPending,
		Email:       in.Email,
		Subscription: entity.Subscription{
			PlanID:    entity.PlanFree,
			Status:    "trial",
			StartDate: now,
			AutoRenew: false,
		},
		// Tenant fresco: un solo asiento de staff hasta que mejore el plan.
		Limits: map[string]entity.UsageLimit{
			"staff":    {Current: 1, Max: 1},
			"invoices": {Current: 0, Max: 20},
			"storage":  {Current: 0, Max: 5},
		},
		Addons: []string{},
		Modules: map[string]bool{
			entity.ModuleSales:      true,
			entity.ModuleInventory:  true,
			entity.ModuleFinance:    true,
			entity.ModuleHR:         true,
			entity.ModuleOperations: true,
			entity.ModuleMarketing:  true,
			entity.ModuleComms:      true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	admin := &entity.User{
		ID:           uc.ids.NewID(repository.PrefixUser),
		OrgID:        org.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         entity.RoleAdmin,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.tenantRepo.Reset(org, admin); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.OrgID, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{AccessToken: token, User: *admin}, nil
}
