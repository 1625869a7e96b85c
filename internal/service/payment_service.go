package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/pkg/payment"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	stripeService *payment.StripeService
	userRepo      *repository.UserRepository
	planRepo      *repository.MembershipPlanRepository
	purchaseRepo  *repository.MembershipPurchaseRepository
	logger        *zap.Logger
}

func NewPaymentService(
	stripeService *payment.StripeService,
	userRepo *repository.UserRepository,
	planRepo *repository.MembershipPlanRepository,
	purchaseRepo *repository.MembershipPurchaseRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		stripeService: stripeService,
		userRepo:      userRepo,
		planRepo:      planRepo,
		purchaseRepo:  purchaseRepo,
		logger:        logger,
	}
}

func (s *PaymentService) GetPlans() ([]models.MembershipPlan, error) {
	return s.planRepo.GetAllActive()
}

func (s *PaymentService) CreateCheckoutSession(userID, planID uint) (*models.CheckoutResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, models.ErrNotFound
	}

	metadata := map[string]string{
		"user_id": strconv.FormatUint(uint64(user.ID), 10),
		"plan_id": strconv.FormatUint(uint64(plan.ID), 10),
	}

	session, err := s.stripeService.CreateCheckoutSession(user.Email, plan.Name, plan.Price, metadata)
	if err != nil {
		return nil, err
	}

	purchase := &models.MembershipPurchase{
		UserID:          user.ID,
		PlanID:          plan.ID,
		StripeSessionID: session.ID,
		Status:          "pending",
		Amount:          plan.Price,
	}
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	return &models.CheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

// HandleWebhook tamamlanan checkout oturumunda üyelik bitişini planın
// süresi kadar uzatır. Süresi geçmiş üyelikte uzatma bugünden başlar.
func (s *PaymentService) HandleWebhook(payload []byte, signature string) error {
	event, err := s.stripeService.ConstructWebhookEvent(payload, signature)
	if err != nil {
		return err
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("parsing webhook session: %w", err)
	}

	purchase, err := s.purchaseRepo.GetBySessionID(session.ID)
	if err != nil {
		return err
	}
	if purchase.Status == "completed" {
		// Webhook tekrarında çift uzatma yapma
		return nil
	}

	plan, err := s.planRepo.GetByID(purchase.PlanID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(purchase.UserID)
	if err != nil {
		return err
	}

	now := time.Now()
	base := now
	if user.MembershipExpiresAt != nil && user.MembershipExpiresAt.After(now) {
		base = *user.MembershipExpiresAt
	}
	expiresAt := base.AddDate(0, 0, plan.Days)
	user.MembershipExpiresAt = &expiresAt

	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	purchase.Status = "completed"
	if err := s.purchaseRepo.Update(purchase); err != nil {
		return err
	}

	s.logger.Info("membership purchase completed",
		zap.Uint("user_id", user.ID),
		zap.Uint("plan_id", plan.ID),
		zap.Time("membership_expires_at", expiresAt),
	)
	return nil
}

func (s *PaymentService) GetPurchaseHistory(userID uint) ([]models.MembershipPurchase, error) {
	return s.purchaseRepo.GetUserPurchaseHistory(userID)
}
