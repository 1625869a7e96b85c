package service

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
)

func newEventService(t *testing.T, db *gorm.DB) *EventService {
	t.Helper()

	return NewEventService(
		db,
		repository.NewEventRepository(db),
		repository.NewUserRepository(db),
		repository.NewPromotionRepository(db),
		time.UTC,
		rand.New(rand.NewSource(1)),
		newTestLogger(),
	)
}

// createMatchableEvent verilen cevap metinlerini gerektiren bir event kurar
func createMatchableEvent(t *testing.T, db *gorm.DB, name string, answerTexts ...string) *models.Event {
	t.Helper()

	event := &models.Event{Name: name, Description: name + " description"}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("creating event: %v", err)
	}

	question := &models.EventQuestion{Text: "question for " + name}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("creating event question: %v", err)
	}

	for _, text := range answerTexts {
		answer := &models.EventQuestionAnswer{EventQuestionID: question.ID, Text: text}
		if err := db.Create(answer).Error; err != nil {
			t.Fatalf("creating event answer: %v", err)
		}
		match := &models.EventMatch{EventID: event.ID, EventQuestionAnswerID: answer.ID}
		if err := db.Create(match).Error; err != nil {
			t.Fatalf("creating event match: %v", err)
		}
	}

	return event
}

func makePremium(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	expires := time.Now().Add(30 * 24 * time.Hour)
	user.MembershipExpiresAt = &expires
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("updating user membership: %v", err)
	}
}

func TestFindMatchExactCoverage(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "match@example.com")

	exact := createMatchableEvent(t, db, "exact", "red", "blue")
	createMatchableEvent(t, db, "superset", "red", "blue", "green")

	result, err := svc.FindMatch(user.ID, []string{"red", "blue"})
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result))
	}
	if result[0].ID != exact.ID {
		t.Errorf("expected event %d, got %d", exact.ID, result[0].ID)
	}
}

func TestFindMatchNoPartialCredit(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "partial@example.com")

	createMatchableEvent(t, db, "needs-three", "red", "blue", "green")

	result, err := svc.FindMatch(user.ID, []string{"red", "blue"})
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected no match, got %d", len(result))
	}
}

func TestFindMatchNormalizesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "normalize@example.com")

	event := createMatchableEvent(t, db, "cafe", "café")

	// Büyük harf + decomposed aksan, NFC+lowercase sonrası eşleşmeli
	result, err := svc.FindMatch(user.ID, []string{" Café "})
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if len(result) != 1 || result[0].ID != event.ID {
		t.Fatalf("expected normalized answer to match event %d, got %+v", event.ID, result)
	}
}

func TestFindMatchUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)

	_, err := svc.FindMatch(9999, []string{"red"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDailyQuotaLimitsFreeUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "quota@example.com")

	// Eşleşme olmasa da her arama kotadan düşer
	for i := 0; i < DailySearchLimit; i++ {
		if _, err := svc.FindMatch(user.ID, []string{"nothing"}); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}

	_, err := svc.FindMatch(user.ID, []string{"nothing"})
	if !errors.Is(err, models.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited on 4th call, got %v", err)
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	if fresh.EventSearchCount != DailySearchLimit {
		t.Errorf("expected search count %d, got %d", DailySearchLimit, fresh.EventSearchCount)
	}
}

func TestDailyQuotaResetsOnNewDay(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "reset@example.com")

	// Dünkü sayacı dolmuş göster
	yesterday := time.Now().UTC().Add(-24 * time.Hour)
	err := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"event_search_count":     DailySearchLimit,
		"event_search_last_date": yesterday,
	}).Error
	if err != nil {
		t.Fatalf("seeding quota state: %v", err)
	}

	if _, err := svc.FindMatch(user.ID, []string{"nothing"}); err != nil {
		t.Fatalf("expected new-day call to succeed, got %v", err)
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	if fresh.EventSearchCount != 1 {
		t.Errorf("expected search count reset to 1, got %d", fresh.EventSearchCount)
	}
}

func TestPremiumUsersBypassQuota(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "premium@example.com")
	makePremium(t, db, user)

	for i := 0; i < DailySearchLimit+3; i++ {
		if _, err := svc.FindMatch(user.ID, []string{"nothing"}); err != nil {
			t.Fatalf("premium call %d: %v", i+1, err)
		}
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	if fresh.EventSearchCount != 0 {
		t.Errorf("premium user quota count should stay 0, got %d", fresh.EventSearchCount)
	}
	if fresh.EventSearchLastDate != nil {
		t.Errorf("premium user quota date should stay nil, got %v", fresh.EventSearchLastDate)
	}
}

func TestViewedEventsTrimmedToLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "recent@example.com")
	makePremium(t, db, user)

	var eventIDs []uint
	answers := []string{"alpha", "beta", "gamma", "delta"}
	for _, answer := range answers {
		event := createMatchableEvent(t, db, "event-"+answer, answer)
		eventIDs = append(eventIDs, event.ID)
	}

	for _, answer := range answers {
		result, err := svc.FindMatch(user.ID, []string{answer})
		if err != nil {
			t.Fatalf("FindMatch %q: %v", answer, err)
		}
		if len(result) != 1 {
			t.Fatalf("expected match for %q", answer)
		}
	}

	var count int64
	if err := db.Model(&models.UserViewedEvent{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("counting viewed events: %v", err)
	}
	if count != RecentEventsLimit {
		t.Errorf("expected %d viewed rows, got %d", RecentEventsLimit, count)
	}

	recent, err := svc.RecentEvents(user.ID)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(recent) != RecentEventsLimit {
		t.Fatalf("expected %d recent events, got %d", RecentEventsLimit, len(recent))
	}

	// En yeni önce: delta, gamma, beta; alpha silinmiş olmalı
	expected := []uint{eventIDs[3], eventIDs[2], eventIDs[1]}
	for i, want := range expected {
		if recent[i].ID != want {
			t.Errorf("recent[%d]: expected event %d, got %d", i, want, recent[i].ID)
		}
	}
}

func TestNoMatchHasNoSideEffects(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "noop@example.com")

	createMatchableEvent(t, db, "unreachable", "secret-answer")

	result, err := svc.FindMatch(user.ID, []string{"wrong"})
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result")
	}

	var viewed, liked int64
	db.Model(&models.UserViewedEvent{}).Where("user_id = ?", user.ID).Count(&viewed)
	db.Model(&models.UserLikedEvent{}).Where("user_id = ?", user.ID).Count(&liked)
	if viewed != 0 || liked != 0 {
		t.Errorf("no-match call must not write viewed/liked rows, got %d/%d", viewed, liked)
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	if fresh.EventSearchCount != 1 {
		t.Errorf("expected exactly one quota increment, got %d", fresh.EventSearchCount)
	}
}

func TestRandomSelectionCoversAllCandidates(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "random@example.com")
	makePremium(t, db, user)

	first := createMatchableEvent(t, db, "first", "shared")
	second := createMatchableEvent(t, db, "second", "shared")

	seen := make(map[uint]bool)
	for i := 0; i < 50; i++ {
		result, err := svc.FindMatch(user.ID, []string{"shared"})
		if err != nil {
			t.Fatalf("FindMatch: %v", err)
		}
		if len(result) != 1 {
			t.Fatalf("expected a match")
		}
		seen[result[0].ID] = true
	}

	if !seen[first.ID] || !seen[second.ID] {
		t.Errorf("deterministic rng should have selected both candidates, seen: %v", seen)
	}
}

func TestFindMatchIncludesLikeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	user := createTestUser(t, db, "liked@example.com")
	makePremium(t, db, user)

	event := createMatchableEvent(t, db, "likeable", "lonely")

	liked, err := svc.ToggleLike(user.ID, event.ID)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !liked {
		t.Fatalf("expected like to be set")
	}

	result, err := svc.FindMatch(user.ID, []string{"lonely"})
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if len(result) != 1 || !result[0].IsUserLiked {
		t.Errorf("expected matched event to carry is_user_liked=true, got %+v", result)
	}
}
