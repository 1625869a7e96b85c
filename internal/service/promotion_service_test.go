package service

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
)

func newPromotionService(t *testing.T, db *gorm.DB) *PromotionService {
	t.Helper()

	return NewPromotionService(
		repository.NewPromotionRepository(db),
		repository.NewUserRepository(db),
	)
}

func createPromotionCode(t *testing.T, db *gorm.DB, code string, mutate ...func(*models.PromotionCode)) *models.PromotionCode {
	t.Helper()

	promo := &models.PromotionCode{
		Code:           code,
		MembershipDays: 30,
		ValidFrom:      time.Now().Add(-time.Hour),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		IsActive:       true,
	}
	for _, fn := range mutate {
		fn(promo)
	}
	if err := db.Create(promo).Error; err != nil {
		t.Fatalf("creating promotion code: %v", err)
	}
	return promo
}

func TestRedeemGrantsPremium(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)
	user := createTestUser(t, db, "redeem@example.com")
	createPromotionCode(t, db, "WELCOME30")

	resp, err := svc.Redeem(user.ID, "WELCOME30")
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if !resp.PremiumUntil.After(time.Now().AddDate(0, 0, 29)) {
		t.Errorf("expected premium_until ~30 days out, got %v", resp.PremiumUntil)
	}

	// Premium durumu profil üzerinden hesaplanır, user satırına yazılmaz
	userService := NewUserService(repository.NewUserRepository(db), repository.NewPromotionRepository(db))
	profile, err := userService.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !profile.IsPaidMembership {
		t.Errorf("expected is_paid_membership=true after redeem")
	}
	if profile.MembershipExpiresAt != nil {
		t.Errorf("redeem must not touch membership_expires_at, got %v", profile.MembershipExpiresAt)
	}
}

func TestRedeemRejectsSecondUse(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)
	user := createTestUser(t, db, "double@example.com")
	createPromotionCode(t, db, "ONCE")

	if _, err := svc.Redeem(user.ID, "ONCE"); err != nil {
		t.Fatalf("first redeem: %v", err)
	}
	if _, err := svc.Redeem(user.ID, "ONCE"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on second redeem, got %v", err)
	}
}

func TestRedeemRejectsExpiredCode(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)
	user := createTestUser(t, db, "expired@example.com")
	createPromotionCode(t, db, "OLD", func(p *models.PromotionCode) {
		p.ExpiresAt = time.Now().Add(-time.Hour)
	})

	if _, err := svc.Redeem(user.ID, "OLD"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for expired code, got %v", err)
	}
}

func TestRedeemRejectsInactiveCode(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)
	user := createTestUser(t, db, "inactive@example.com")
	createPromotionCode(t, db, "DISABLED", func(p *models.PromotionCode) {
		p.IsActive = false
	})

	if _, err := svc.Redeem(user.ID, "DISABLED"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for inactive code, got %v", err)
	}
}

func TestRedeemRejectsUnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)
	user := createTestUser(t, db, "unknown@example.com")

	if _, err := svc.Redeem(user.ID, "NOPE"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown code, got %v", err)
	}
}

func TestRedeemEnforcesUsageLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)
	first := createTestUser(t, db, "limit-1@example.com")
	second := createTestUser(t, db, "limit-2@example.com")
	createPromotionCode(t, db, "LIMITED", func(p *models.PromotionCode) {
		p.UsageLimit = 1
	})

	if _, err := svc.Redeem(first.ID, "LIMITED"); err != nil {
		t.Fatalf("first user redeem: %v", err)
	}
	if _, err := svc.Redeem(second.ID, "LIMITED"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden once usage limit reached, got %v", err)
	}
}

func TestExpiredRedemptionDoesNotGrantPremium(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "lapsed@example.com")

	promo := createPromotionCode(t, db, "LAPSED")
	redemption := &models.UserPromotionCode{
		UserID:          user.ID,
		PromotionCodeID: promo.ID,
		ExpiresAt:       time.Now().Add(-time.Hour),
	}
	if err := db.Create(redemption).Error; err != nil {
		t.Fatalf("seeding expired redemption: %v", err)
	}

	userService := NewUserService(repository.NewUserRepository(db), repository.NewPromotionRepository(db))
	profile, err := userService.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.IsPaidMembership {
		t.Errorf("expired redemption must not count as premium")
	}
}

func TestCreateCodeGeneratesWhenEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newPromotionService(t, db)

	promo, err := svc.CreateCode(models.PromotionCodeRequest{
		MembershipDays: 7,
		ValidFrom:      time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateCode: %v", err)
	}
	if len(promo.Code) != 8 {
		t.Errorf("expected generated 8-char code, got %q", promo.Code)
	}
	if !promo.IsActive {
		t.Errorf("new codes should be active")
	}
}
