package service

import (
	"context"
	"testing"

	"superganaderia/internal/config"
	"superganaderia/internal/dto"
	"superganaderia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *stubPerfilRepo) AuthService {
	return NewAuthService(repo, &config.Config{
		JWTSecret:          "secreto-de-test",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	})
}

func TestCrearPerfilYLogin(t *testing.T) {
	repo := newStubPerfilRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	equipoID := uuid.New().String()
	perfil, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
		Username: "mgonzalez",
		Password: "secreto123",
		Nombre:   "María González",
		Rol:      model.RolCapitan,
		EquipoID: &equipoID,
	})
	require.NoError(t, err)
	assert.True(t, perfil.Activo)
	require.NotNil(t, perfil.EquipoID)
	assert.Equal(t, equipoID, *perfil.EquipoID)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "mgonzalez", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "/capitan/dashboard", resp.Home)
	assert.Equal(t, "mgonzalez", resp.User.Username)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	repo := newStubPerfilRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
		Username: "mgonzalez",
		Password: "secreto123",
		Nombre:   "María González",
		Rol:      model.RolCapitan,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "mgonzalez", Password: "otra"})
	require.Error(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "inexistente", Password: "secreto123"})
	require.Error(t, err)
}

func TestLoginPerfilDesactivado(t *testing.T) {
	repo := newStubPerfilRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	perfil, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
		Username: "jlopez",
		Password: "secreto123",
		Nombre:   "Juan López",
		Rol:      model.RolRepresentante,
	})
	require.NoError(t, err)

	id := uuid.MustParse(perfil.ID)
	require.NoError(t, svc.DesactivarPerfil(ctx, id))
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "jlopez", Password: "secreto123"})
	require.Error(t, err)

	require.NoError(t, svc.ReactivarPerfil(ctx, id))
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "jlopez", Password: "secreto123"})
	require.NoError(t, err)
}

func TestRefreshDevuelveTokensNuevos(t *testing.T) {
	repo := newStubPerfilRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
		Username: "admin",
		Password: "secreto123",
		Nombre:   "Admin",
		Rol:      model.RolAdministrador,
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "admin", resp.User.Username)

	_, err = svc.Refresh(ctx, "no-es-un-jwt")
	require.Error(t, err)
}

func TestCrearPerfilEquipoInvalido(t *testing.T) {
	svc := newAuthService(newStubPerfilRepo())

	malo := "no-es-uuid"
	_, err := svc.CrearPerfil(context.Background(), dto.CrearPerfilRequest{
		Username: "x",
		Password: "secreto123",
		Nombre:   "X",
		Rol:      model.RolCapitan,
		EquipoID: &malo,
	})
	require.Error(t, err)
}

func TestActualizarPerfil(t *testing.T) {
	repo := newStubPerfilRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	perfil, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
		Username: "jlopez",
		Password: "secreto123",
		Nombre:   "Juan López",
		Rol:      model.RolRepresentante,
	})
	require.NoError(t, err)
	id := uuid.MustParse(perfil.ID)

	actualizado, err := svc.ActualizarPerfil(ctx, id, dto.ActualizarPerfilRequest{
		Rol:      model.RolCapitan,
		Password: "nueva456",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolCapitan, actualizado.Rol)
	assert.Equal(t, "Juan López", actualizado.Nombre)

	// La contraseña vieja deja de servir.
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "jlopez", Password: "secreto123"})
	require.Error(t, err)
	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "jlopez", Password: "nueva456"})
	require.NoError(t, err)
	assert.Equal(t, "/capitan/dashboard", resp.Home)
}

func TestListarPerfiles(t *testing.T) {
	repo := newStubPerfilRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	for _, u := range []string{"uno", "dos"} {
		_, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
			Username: u, Password: "secreto123", Nombre: u, Rol: model.RolRepresentante,
		})
		require.NoError(t, err)
	}
	perfil, err := svc.CrearPerfil(ctx, dto.CrearPerfilRequest{
		Username: "tres", Password: "secreto123", Nombre: "tres", Rol: model.RolRepresentante,
	})
	require.NoError(t, err)
	require.NoError(t, svc.DesactivarPerfil(ctx, uuid.MustParse(perfil.ID)))

	activos, err := svc.ListarPerfiles(ctx, false)
	require.NoError(t, err)
	assert.Len(t, activos, 2)

	todos, err := svc.ListarPerfiles(ctx, true)
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestHomeRoute(t *testing.T) {
	tests := []struct {
		rol  string
		want string
	}{
		{model.RolAdministrador, "/admin/dashboard"},
		{model.RolCapitan, "/capitan/dashboard"},
		{model.RolDirectorTecnico, "/director-tecnico/dashboard"},
		{model.RolSupervisor, "/supervisor/dashboard"},
		{model.RolRepresentante, "/representante/dashboard"},
		{model.RolArbitro, "/arbitro/dashboard"},
		{"desconocido", "/"},
		{"", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HomeRoute(tt.rol), "rol=%s", tt.rol)
	}
}
