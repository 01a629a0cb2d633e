// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	dto "schoolku_backend/internals/features/users/auth/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Register ==========
// Membuat user principal + sekolahnya dalam satu transaksi:
// gagal di tengah tidak boleh meninggalkan user tanpa sekolah.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.User
	err := ctl.DB.Where("user_name = ? OR user_email = ?", req.UserName, strings.ToLower(req.UserEmail)).
		First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa data user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.User{
		UserName:     req.UserName,
		UserEmail:    strings.ToLower(req.UserEmail),
		UserPassword: string(hashed),
		UserFullName: req.UserFullName,
		UserRole:     "principal",
		UserIsActive: true,
	}
	school := schoolModel.School{
		SchoolName:    req.SchoolName,
		SchoolNPSN:    req.SchoolNPSN,
		SchoolAddress: req.SchoolAddress,
		SchoolPhone:   req.SchoolPhone,
		SchoolEmail:   req.SchoolEmail,
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		school.SchoolPrincipalID = &user.UserID
		if err := tx.Create(&school).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.User{}).
			Where("user_id = ?", user.UserID).
			Update("user_school_id", school.SchoolID).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Registrasi gagal: "+err.Error())
	}

	user.UserSchoolID = &school.SchoolID
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", dto.RegisterResponse{
		User:   dto.FromModelUser(&user),
		School: school,
	})
}

// ========== Login ==========
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.User
	if err := ctl.DB.Where("user_name = ? OR user_email = ?", req.UserName, strings.ToLower(req.UserName)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa data user")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, expiresIn, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        dto.FromModelUser(&user),
	})
}

// ========== Me ==========
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.User
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.Success(c, "OK", dto.FromModelUser(&user))
}

func signAccessToken(u *userModel.User) (string, int64, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if u.UserSchoolID != nil {
		claims["school_id"] = u.UserSchoolID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(accessTokenTTL.Seconds()), nil
}
