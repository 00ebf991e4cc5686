package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"colegio_backend/internals/configs"
	authModel "colegio_backend/internals/features/usuarios/auth/model"
	userModel "colegio_backend/internals/features/usuarios/user/model"
	helper "colegio_backend/internals/helpers"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioInactivo       = errors.New("el usuario está inactivo")
	ErrRefreshInvalido       = errors.New("refresh token inválido o expirado")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// rolesDe junta los nombres de rol y, para preceptores, los cursos a cargo.
func (s *AuthService) rolesDe(userID int64) ([]string, []string, error) {
	var vinculos []userModel.RolUsuarioModel
	if err := s.DB.Preload("Rol").Where("user_id = ?", userID).Find(&vinculos).Error; err != nil {
		return nil, nil, err
	}
	roles := make([]string, 0, len(vinculos))
	cursos := make([]string, 0)
	for _, v := range vinculos {
		if v.Rol != nil {
			roles = append(roles, v.Rol.Nombre)
		}
		if v.CursoID != nil {
			cursos = append(cursos, helper.FormatID(*v.CursoID))
		}
	}
	return roles, cursos, nil
}

func (s *AuthService) issueTokens(user *userModel.UserModel, userAgent, ip string) (TokenPair, []string, error) {
	roles, cursos, err := s.rolesDe(user.UserID)
	if err != nil {
		return TokenPair{}, nil, err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":            strconv.FormatInt(user.UserID, 10),
		"user_name":      user.Username,
		"roles":          roles,
		"cursos_a_cargo": cursos,
		"iat":            now.Unix(),
		"exp":            now.Add(AccessTokenTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return TokenPair{}, nil, err
	}

	// refresh: valor aleatorio opaco; persistimos solo el HMAC
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return TokenPair{}, nil, err
	}
	refresh := hex.EncodeToString(raw)

	rt := authModel.RefreshTokenModel{
		UserID:    user.UserID,
		Token:     HashRefreshToken(refresh),
		ExpiresAt: now.Add(RefreshTokenTTL),
	}
	if userAgent != "" {
		rt.UserAgent = &userAgent
	}
	if ip != "" {
		rt.IP = &ip
	}
	if err := s.DB.Create(&rt).Error; err != nil {
		return TokenPair{}, nil, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, roles, nil
}

func HashRefreshToken(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// Login por username.
func (s *AuthService) Login(username, password, userAgent, ip string) (*userModel.UserModel, TokenPair, []string, error) {
	var user userModel.UserModel
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TokenPair{}, nil, ErrCredencialesInvalidas
		}
		return nil, TokenPair{}, nil, err
	}
	return s.finishLogin(&user, password, userAgent, ip)
}

// LoginDNI: acceso de tutores por documento.
func (s *AuthService) LoginDNI(dni, password, userAgent, ip string) (*userModel.UserModel, TokenPair, []string, error) {
	var user userModel.UserModel
	if err := s.DB.
		Joins("JOIN data_personal ON data_personal.persona_id = users.persona_id").
		Where("data_personal.dni = ?", dni).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TokenPair{}, nil, ErrCredencialesInvalidas
		}
		return nil, TokenPair{}, nil, err
	}
	return s.finishLogin(&user, password, userAgent, ip)
}

func (s *AuthService) finishLogin(user *userModel.UserModel, password, userAgent, ip string) (*userModel.UserModel, TokenPair, []string, error) {
	if !user.Activo {
		return nil, TokenPair{}, nil, ErrUsuarioInactivo
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, TokenPair{}, nil, ErrCredencialesInvalidas
	}
	pair, roles, err := s.issueTokens(user, userAgent, ip)
	if err != nil {
		return nil, TokenPair{}, nil, err
	}
	return user, pair, roles, nil
}

// Refresh rota el par: invalida el refresh usado y emite uno nuevo.
func (s *AuthService) Refresh(refreshToken, userAgent, ip string) (*userModel.UserModel, TokenPair, []string, error) {
	hash := HashRefreshToken(refreshToken)

	var rt authModel.RefreshTokenModel
	if err := s.DB.Where("token = ?", hash).First(&rt).Error; err != nil {
		return nil, TokenPair{}, nil, ErrRefreshInvalido
	}
	if time.Now().After(rt.ExpiresAt) {
		s.DB.Delete(&rt)
		return nil, TokenPair{}, nil, ErrRefreshInvalido
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "user_id = ?", rt.UserID).Error; err != nil {
		return nil, TokenPair{}, nil, ErrRefreshInvalido
	}
	if !user.Activo {
		return nil, TokenPair{}, nil, ErrUsuarioInactivo
	}

	if err := s.DB.Delete(&rt).Error; err != nil {
		return nil, TokenPair{}, nil, err
	}
	pair, roles, err := s.issueTokens(&user, userAgent, ip)
	if err != nil {
		return nil, TokenPair{}, nil, err
	}
	return &user, pair, roles, nil
}

// Logout invalida un refresh token puntual.
func (s *AuthService) Logout(refreshToken string) error {
	hash := HashRefreshToken(refreshToken)
	return s.DB.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}
