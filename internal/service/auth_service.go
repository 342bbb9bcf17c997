package service

import (
	"context"
	"errors"
	"time"

	"superganaderia/internal/config"
	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// homePorRol es la tabla rol → dashboard; el frontend redirige a Home tras el
// login. Tabla plana en lugar de condicionales anidados.
var homePorRol = map[string]string{
	model.RolAdministrador:   "/admin/dashboard",
	model.RolCapitan:         "/capitan/dashboard",
	model.RolDirectorTecnico: "/director-tecnico/dashboard",
	model.RolSupervisor:      "/supervisor/dashboard",
	model.RolRepresentante:   "/representante/dashboard",
	model.RolArbitro:         "/arbitro/dashboard",
}

// HomeRoute devuelve la ruta del dashboard para un rol; "/" si no se conoce.
func HomeRoute(rol string) string {
	if home, ok := homePorRol[rol]; ok {
		return home
	}
	return "/"
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CrearPerfil(ctx context.Context, req dto.CrearPerfilRequest) (*dto.PerfilResponse, error)
	ListarPerfiles(ctx context.Context, incluirInactivos bool) ([]dto.PerfilResponse, error)
	ActualizarPerfil(ctx context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.PerfilResponse, error)
	DesactivarPerfil(ctx context.Context, id uuid.UUID) error
	ReactivarPerfil(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.PerfilRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.PerfilRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	perfil, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(perfil.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales inválidas")
	}
	return s.buildLoginResponse(perfil)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token inválido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims inválidos")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	perfil, err := s.repo.FindByID(ctx, uid)
	if err != nil || !perfil.Activo {
		return nil, errors.New("perfil no encontrado o inactivo")
	}
	return s.buildLoginResponse(perfil)
}

func (s *authService) buildLoginResponse(perfil *model.Perfil) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(perfil, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(perfil, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Home:         HomeRoute(perfil.Rol),
		User:         perfilToResponse(perfil),
	}, nil
}

func (s *authService) CrearPerfil(ctx context.Context, req dto.CrearPerfilRequest) (*dto.PerfilResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	equipoID, err := parseEquipoID(req.EquipoID)
	if err != nil {
		return nil, err
	}
	perfil := &model.Perfil{
		Username:     req.Username,
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		EquipoID:     equipoID,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, perfil); err != nil {
		return nil, err
	}
	resp := perfilToResponse(perfil)
	return &resp, nil
}

func (s *authService) ListarPerfiles(ctx context.Context, incluirInactivos bool) ([]dto.PerfilResponse, error) {
	perfiles, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PerfilResponse, len(perfiles))
	for i := range perfiles {
		resp[i] = perfilToResponse(&perfiles[i])
	}
	return resp, nil
}

func (s *authService) ActualizarPerfil(ctx context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.PerfilResponse, error) {
	perfil, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("perfil no encontrado")
	}
	if req.Nombre != "" {
		perfil.Nombre = req.Nombre
	}
	if req.Email != nil {
		perfil.Email = req.Email
	}
	if req.Rol != "" {
		perfil.Rol = req.Rol
	}
	if req.EquipoID != nil {
		equipoID, err := parseEquipoID(req.EquipoID)
		if err != nil {
			return nil, err
		}
		perfil.EquipoID = equipoID
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		perfil.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, perfil); err != nil {
		return nil, err
	}
	resp := perfilToResponse(perfil)
	return &resp, nil
}

func (s *authService) DesactivarPerfil(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

func (s *authService) ReactivarPerfil(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *authService) generateToken(perfil *model.Perfil, duration time.Duration) (string, error) {
	var equipoID *string
	if perfil.EquipoID != nil {
		eid := perfil.EquipoID.String()
		equipoID = &eid
	}
	claims := jwt.MapClaims{
		"user_id":   perfil.ID.String(),
		"username":  perfil.Username,
		"rol":       perfil.Rol,
		"equipo_id": equipoID,
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func parseEquipoID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errors.New("equipo_id inválido")
	}
	return &id, nil
}

func perfilToResponse(p *model.Perfil) dto.PerfilResponse {
	var equipoID *string
	if p.EquipoID != nil {
		eid := p.EquipoID.String()
		equipoID = &eid
	}
	return dto.PerfilResponse{
		ID:       p.ID.String(),
		Username: p.Username,
		Nombre:   p.Nombre,
		Email:    p.Email,
		Rol:      p.Rol,
		EquipoID: equipoID,
		Activo:   p.Activo,
	}
}
