package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"colegio_backend/internals/configs"
	"colegio_backend/internals/constants"
	authModel "colegio_backend/internals/features/usuarios/auth/model"
	userModel "colegio_backend/internals/features/usuarios/user/model"
)

func setupService(t *testing.T) *AuthService {
	t.Helper()
	configs.JWTSecret = "secreto-de-test"
	configs.JWTRefreshSecret = "refresh-de-test"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.RolModel{},
		&userModel.RolUsuarioModel{},
		&authModel.RefreshTokenModel{},
	))
	return NewAuthService(db)
}

func seedUsuario(t *testing.T, db *gorm.DB, username, password, rol string) *userModel.UserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := userModel.UserModel{Username: username, Password: string(hash), Activo: true}
	require.NoError(t, db.Create(&user).Error)

	r := userModel.RolModel{Nombre: rol}
	require.NoError(t, db.Create(&r).Error)
	require.NoError(t, db.Create(&userModel.RolUsuarioModel{UserID: user.UserID, RolID: r.RolID}).Error)
	return &user
}

func TestLoginYRoles(t *testing.T) {
	s := setupService(t)
	seedUsuario(t, s.DB, "preceptor1", "secreto123", constants.RolePreceptor)

	user, pair, roles, err := s.Login("preceptor1", "secreto123", "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "preceptor1", user.Username)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, []string{constants.RolePreceptor}, roles)

	// contraseña incorrecta
	_, _, _, err = s.Login("preceptor1", "otra", "", "")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	// usuario inexistente
	_, _, _, err = s.Login("nadie", "secreto123", "", "")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	s := setupService(t)
	user := seedUsuario(t, s.DB, "baja1", "secreto123", constants.RoleTutor)
	require.NoError(t, s.DB.Model(user).Update("activo", false).Error)

	_, _, _, err := s.Login("baja1", "secreto123", "", "")
	assert.ErrorIs(t, err, ErrUsuarioInactivo)
}

func TestRefreshRota(t *testing.T) {
	s := setupService(t)
	seedUsuario(t, s.DB, "docente1", "secreto123", constants.RoleDocente)

	_, pair, _, err := s.Login("docente1", "secreto123", "", "")
	require.NoError(t, err)

	// el refresh emite un par nuevo e invalida el usado
	_, nuevo, _, err := s.Refresh(pair.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, nuevo.RefreshToken)

	_, _, _, err = s.Refresh(pair.RefreshToken, "", "")
	assert.ErrorIs(t, err, ErrRefreshInvalido)
}

func TestLogoutInvalidaRefresh(t *testing.T) {
	s := setupService(t)
	seedUsuario(t, s.DB, "admin1", "secreto123", constants.RoleAdmin)

	_, pair, _, err := s.Login("admin1", "secreto123", "", "")
	require.NoError(t, err)

	require.NoError(t, s.Logout(pair.RefreshToken))

	_, _, _, err = s.Refresh(pair.RefreshToken, "", "")
	assert.ErrorIs(t, err, ErrRefreshInvalido)
}

func TestRefreshHashNoGuardaElTokenEnClaro(t *testing.T) {
	s := setupService(t)
	seedUsuario(t, s.DB, "tutor1", "secreto123", constants.RoleTutor)

	_, pair, _, err := s.Login("tutor1", "secreto123", "", "")
	require.NoError(t, err)

	var rt authModel.RefreshTokenModel
	require.NoError(t, s.DB.First(&rt).Error)
	assert.NotEqual(t, []byte(pair.RefreshToken), rt.Token)
	assert.Equal(t, HashRefreshToken(pair.RefreshToken), rt.Token)
}
