// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/configs"
	"konisurabaya_backend/internals/features/users/user/model"
)

// Masa berlaku access token.
const accessTokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("email/username atau password salah")
	ErrUserInactive       = errors.New("akun Anda telah dinonaktifkan")
	ErrUserNotRegistered  = errors.New("akun belum terdaftar. Pendaftaran hanya lewat token undangan")
	ErrGoogleTokenInvalid = errors.New("token Google tidak valid")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login memverifikasi identifier (email atau username) + password.
// Error dibuat seragam supaya tidak bocor akun mana yang ada.
func (s *AuthService) Login(identifier, password string) (*model.UserModel, error) {
	var user model.UserModel
	err := s.DB.
		Where("user_email = ? OR user_username = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.UserIsActive {
		return nil, ErrUserInactive
	}

	return &user, nil
}

// LoginGoogle memverifikasi ID token Google lalu mencocokkan email-nya
// dengan akun yang sudah ada. Tidak pernah membuat akun baru — pendaftaran
// tetap lewat jalur token undangan.
func (s *AuthService) LoginGoogle(idToken string) (*model.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, ErrGoogleTokenInvalid
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claimSet.Email == "" {
		return nil, ErrGoogleTokenInvalid
	}

	var user model.UserModel
	if err := s.DB.Where("user_email = ?", claimSet.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotRegistered
		}
		return nil, err
	}
	if !user.UserIsActive {
		return nil, ErrUserInactive
	}

	return &user, nil
}

// IssueAccessToken menerbitkan JWT HS256 dengan claim user_id + role.
func (s *AuthService) IssueAccessToken(user *model.UserModel) (string, time.Time, error) {
	expiresAt := time.Now().Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    string(user.UserRole),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
