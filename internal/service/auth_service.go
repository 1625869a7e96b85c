package service

import (
	"errors"
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/pkg/bcrypt"
	"github.com/berkeoz/quizpark-backend/pkg/email"
	jwtPkg "github.com/berkeoz/quizpark-backend/pkg/jwt"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// OTP kodunun geçerlilik süresi
	OTPExpiry = 5 * time.Minute
)

type AuthService struct {
	userRepo     *repository.UserRepository
	adminRepo    *repository.AdminRepository
	otpRepo      *repository.OTPRepository
	emailService *email.EmailService
	logger       *zap.Logger
}

func NewAuthService(
	userRepo *repository.UserRepository,
	adminRepo *repository.AdminRepository,
	otpRepo *repository.OTPRepository,
	emailService *email.EmailService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		otpRepo:      otpRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// RequestOTP email'e tek kullanımlık giriş kodu gönderir. Kullanıcı ilk
// kez görülüyorsa kaydı burada açılır.
func (s *AuthService) RequestOTP(req models.RequestOTPRequest) error {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return err
	}
	if !exists {
		user := &models.User{Email: req.Email}
		if err := s.userRepo.Create(user); err != nil {
			return err
		}
	}

	// Önceki bekleyen kodlar geçersiz olur, aynı anda tek aktif kod kalır
	if err := s.otpRepo.InvalidateAll(req.Email); err != nil {
		return err
	}

	code := utils.GenerateOTPCode()
	codeHash, err := bcrypt.HashPassword(code)
	if err != nil {
		return err
	}

	otp := &models.EmailOTP{
		Email:     req.Email,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(OTPExpiry),
	}
	if err := s.otpRepo.Create(otp); err != nil {
		return err
	}

	go func() {
		if err := s.emailService.SendOTPEmail(req.Email, code); err != nil {
			s.logger.Error("otp email delivery failed", zap.String("email", req.Email), zap.Error(err))
		}
	}()

	return nil
}

// VerifyOTP kodu doğrular ve JWT döner. Kod tek kullanımlıktır.
func (s *AuthService) VerifyOTP(req models.VerifyOTPRequest) (*models.AuthResponse, error) {
	otp, err := s.otpRepo.GetLatestActive(req.Email, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid or expired code")
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(otp.CodeHash, req.Code); err != nil {
		return nil, errors.New("invalid or expired code")
	}

	if err := s.otpRepo.MarkConsumed(otp.ID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	token, err := jwtPkg.GenerateUserToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// AdminLogin email ve şifre ile admin girişi yapar
func (s *AuthService) AdminLogin(req models.AdminLoginRequest) (*models.AdminAuthResponse, error) {
	admin, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.ComparePassword(admin.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateAdminToken(admin.Email, admin.ID)
	if err != nil {
		return nil, err
	}

	return &models.AdminAuthResponse{
		Token: token,
		Admin: *admin,
	}, nil
}
