package service

import (
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
)

// isPaidMember premium durumunu her çağrıda yeniden hesaplar. Üyelik bitiş
// tarihi veya süresi dolmamış bir promosyon hakkı varsa kullanıcı premiumdur.
// Sonuç hiçbir yerde cache'lenmez, tek doğruluk kaynağı bu hesaptır.
func isPaidMember(promotionRepo *repository.PromotionRepository, user *models.User, now time.Time) (bool, error) {
	if user.MembershipExpiresAt != nil && user.MembershipExpiresAt.After(now) {
		return true, nil
	}
	return promotionRepo.HasActiveRedemption(user.ID, now)
}
