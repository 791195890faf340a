package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/config"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context, exceptoCoVen string) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uint, actorCoVen string) error
}

type authService struct {
	repo         repository.UsuarioRepository
	vendedorRepo repository.VendedorRepository
	cfg          *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, vendedorRepo repository.VendedorRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, vendedorRepo: vendedorRepo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByCoVen(ctx, strings.TrimSpace(req.CoVen))
	if err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	return s.loginResponse(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims invalidos")
	}
	coVen, ok := claims["co_ven"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}

	user, err := s.repo.FindByCoVen(ctx, coVen)
	if err != nil {
		return nil, errors.New("usuario no encontrado o inactivo")
	}

	return s.loginResponse(user)
}

// CrearUsuario only accepts a co_ven the ERP already knows: sellers and
// admins must exist in vendedor, supervisors in the supervisor table. The
// display name is taken from the ERP row, not from the request.
func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if req.Rol == nil {
		return nil, apierror.Validation("rol requerido", map[string]string{"rol": "requerido"})
	}
	rol := model.Rol(*req.Rol)
	if !rol.Valid() {
		return nil, apierror.Validation("rol desconocido", map[string]string{"rol": "valor fuera de rango"})
	}

	coVen := strings.TrimSpace(req.CoVen)
	var nombre string
	if rol.EsVendedor() {
		v, err := s.vendedorRepo.FindByCoVen(ctx, coVen)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Referential("el codigo de vendedor no existe en el ERP")
			}
			return nil, err
		}
		nombre = strings.TrimSpace(v.VenDes)
	} else {
		sup, err := s.vendedorRepo.FindSupervisor(ctx, coVen)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Referential("el codigo de supervisor no existe en el ERP")
			}
			return nil, err
		}
		nombre = strings.TrimSpace(sup.SupDes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		CoVen:        coVen,
		Nombre:       nombre,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe un usuario con ese co_ven", err)
		}
		return nil, err
	}
	return usuarioToResponse(user), nil
}

// ListarUsuarios returns active users excluding the caller.
func (s *authService) ListarUsuarios(ctx context.Context, exceptoCoVen string) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		if users[i].CoVen == exceptoCoVen {
			continue
		}
		resp = append(resp, *usuarioToResponse(&users[i]))
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("usuario no encontrado")
	}
	if req.Email != "" {
		user.Email = strings.TrimSpace(req.Email)
	}
	if req.Rol != nil {
		rol := model.Rol(*req.Rol)
		if !rol.Valid() {
			return nil, apierror.Validation("rol desconocido", map[string]string{"rol": "valor fuera de rango"})
		}
		user.Rol = rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return usuarioToResponse(user), nil
}

func (s *authService) DesactivarUsuario(ctx context.Context, id uint, actorCoVen string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("usuario no encontrado")
	}
	if user.CoVen == actorCoVen {
		return apierror.State("no puede desactivar su propio usuario")
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *authService) loginResponse(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         *usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"co_ven": user.CoVen,
		"nombre": user.Nombre,
		"rol":    int(user.Rol),
		"exp":    time.Now().Add(duration).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:     u.ID,
		CoVen:  u.CoVen,
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    int(u.Rol),
		RolDes: u.Rol.Label(),
		Activo: u.Activo,
	}
}
