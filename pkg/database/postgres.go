package database

import (
	"log"
	"os"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.DeviceToken{},
		&models.EmailOTP{},
		&models.Category{},
		&models.Tag{},
		&models.UserLikedCategory{},
		&models.UserReferencedCategory{},
		&models.Question{},
		&models.UserLikedQuestion{},
		&models.UserCompletedQuestion{},
		&models.Event{},
		&models.EventQuestion{},
		&models.EventQuestionAnswer{},
		&models.EventMatch{},
		&models.UserViewedEvent{},
		&models.UserLikedEvent{},
		&models.PromotionCode{},
		&models.UserPromotionCode{},
		&models.MembershipPlan{},
		&models.MembershipPurchase{},
		&models.NotificationLog{},
		&models.AppVersion{},
	)
	if err != nil {
		return err
	}

	return seedMembershipPlans(db)
}

// Varsayılan üyelik planlarını ekle (eğer yoksa)
func seedMembershipPlans(db *gorm.DB) error {
	plans := []models.MembershipPlan{
		{
			Name:        "1 Month Premium",
			Description: "30 days of premium membership, unlimited event searches",
			Days:        30,
			Price:       29.99,
			IsActive:    true,
		},
		{
			Name:        "3 Months Premium",
			Description: "90 days of premium membership, unlimited event searches",
			Days:        90,
			Price:       69.99,
			IsActive:    true,
		},
		{
			Name:        "1 Year Premium",
			Description: "365 days of premium membership, unlimited event searches",
			Days:        365,
			Price:       199.99,
			IsActive:    true,
		},
	}

	for _, plan := range plans {
		var count int64
		db.Model(&models.MembershipPlan{}).Where("name = ?", plan.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
