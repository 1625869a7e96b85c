package service

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/pkg/bcrypt"
	"github.com/berkeoz/quizpark-backend/pkg/email"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()

	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewAdminRepository(db),
		repository.NewOTPRepository(db),
		email.NewEmailService(newTestLogger()),
		newTestLogger(),
	)
}

func seedOTP(t *testing.T, db *gorm.DB, emailAddr, code string, expiresAt time.Time) *models.EmailOTP {
	t.Helper()

	hash, err := bcrypt.HashPassword(code)
	if err != nil {
		t.Fatalf("hashing otp code: %v", err)
	}
	otp := &models.EmailOTP{Email: emailAddr, CodeHash: hash, ExpiresAt: expiresAt}
	if err := db.Create(otp).Error; err != nil {
		t.Fatalf("creating otp: %v", err)
	}
	return otp
}

func TestRequestOTPCreatesUserOnFirstSight(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.RequestOTP(models.RequestOTPRequest{Email: "new@example.com"}); err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", "new@example.com").First(&user).Error; err != nil {
		t.Fatalf("expected user to be created: %v", err)
	}

	var count int64
	if err := db.Model(&models.EmailOTP{}).Where("email = ? AND consumed = ?", "new@example.com", false).Count(&count).Error; err != nil {
		t.Fatalf("counting otps: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 active otp, got %d", count)
	}
}

func TestRequestOTPInvalidatesPreviousCodes(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.RequestOTP(models.RequestOTPRequest{Email: "repeat@example.com"}); err != nil {
		t.Fatalf("first RequestOTP: %v", err)
	}
	if err := svc.RequestOTP(models.RequestOTPRequest{Email: "repeat@example.com"}); err != nil {
		t.Fatalf("second RequestOTP: %v", err)
	}

	var active int64
	if err := db.Model(&models.EmailOTP{}).Where("email = ? AND consumed = ?", "repeat@example.com", false).Count(&active).Error; err != nil {
		t.Fatalf("counting active otps: %v", err)
	}
	if active != 1 {
		t.Errorf("expected exactly 1 active otp after re-request, got %d", active)
	}
}

func TestVerifyOTPIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	createTestUser(t, db, "verify@example.com")
	seedOTP(t, db, "verify@example.com", "123456", time.Now().Add(OTPExpiry))

	resp, err := svc.VerifyOTP(models.VerifyOTPRequest{Email: "verify@example.com", Code: "123456"})
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a token")
	}
	if resp.User.Email != "verify@example.com" {
		t.Errorf("expected user payload, got %+v", resp.User)
	}

	if _, err := svc.VerifyOTP(models.VerifyOTPRequest{Email: "verify@example.com", Code: "123456"}); err == nil {
		t.Fatalf("expected consumed code to be rejected")
	}
}

func TestVerifyOTPRejectsWrongCode(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	createTestUser(t, db, "wrong@example.com")
	seedOTP(t, db, "wrong@example.com", "123456", time.Now().Add(OTPExpiry))

	if _, err := svc.VerifyOTP(models.VerifyOTPRequest{Email: "wrong@example.com", Code: "654321"}); err == nil {
		t.Fatalf("expected wrong code to be rejected")
	}
}

func TestVerifyOTPRejectsExpiredCode(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	createTestUser(t, db, "late@example.com")
	seedOTP(t, db, "late@example.com", "123456", time.Now().Add(-time.Minute))

	if _, err := svc.VerifyOTP(models.VerifyOTPRequest{Email: "late@example.com", Code: "123456"}); err == nil {
		t.Fatalf("expected expired code to be rejected")
	}
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	hash, err := bcrypt.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	admin := &models.Admin{FullName: "Admin", Email: "admin@example.com", Password: hash}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("creating admin: %v", err)
	}

	resp, err := svc.AdminLogin(models.AdminLoginRequest{Email: "admin@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a token")
	}

	if _, err := svc.AdminLogin(models.AdminLoginRequest{Email: "admin@example.com", Password: "nope"}); err == nil {
		t.Fatalf("expected wrong password to be rejected")
	}
	if _, err := svc.AdminLogin(models.AdminLoginRequest{Email: "ghost@example.com", Password: "s3cret"}); err == nil {
		t.Fatalf("expected unknown admin to be rejected")
	}
}
