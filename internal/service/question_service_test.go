package service

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
)

func newQuestionService(t *testing.T, db *gorm.DB) *QuestionService {
	t.Helper()

	return NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func TestListByCategoryPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(t, db)
	user := createTestUser(t, db, "pages@example.com")
	category := createCategory(t, db, "paged", nil)

	for i := 0; i < 25; i++ {
		createQuestion(t, db, category.ID, fmt.Sprintf("q%02d", i))
	}

	first, err := svc.ListByCategory(category.ID, user.ID, 1, 0)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if first.PageSize != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, first.PageSize)
	}
	if len(first.Questions) != DefaultPageSize {
		t.Errorf("expected %d questions on page 1, got %d", DefaultPageSize, len(first.Questions))
	}
	if first.Total != 25 {
		t.Errorf("expected total 25, got %d", first.Total)
	}

	second, err := svc.ListByCategory(category.ID, user.ID, 2, DefaultPageSize)
	if err != nil {
		t.Fatalf("ListByCategory page 2: %v", err)
	}
	if len(second.Questions) != 5 {
		t.Errorf("expected 5 questions on page 2, got %d", len(second.Questions))
	}
}

func TestListByCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(t, db)
	user := createTestUser(t, db, "no-cat@example.com")

	if _, err := svc.ListByCategory(9999, user.ID, 1, 10); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByCategoryIncludesUserFlags(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(t, db)
	user := createTestUser(t, db, "flags@example.com")
	category := createCategory(t, db, "flagged", nil)

	likedQ := createQuestion(t, db, category.ID, "liked question")
	doneQ := createQuestion(t, db, category.ID, "completed question")
	createQuestion(t, db, category.ID, "plain question")

	if _, err := svc.ToggleLike(user.ID, likedQ.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if err := svc.MarkCompleted(user.ID, doneQ.ID); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	list, err := svc.ListByCategory(category.ID, user.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}

	byID := map[uint]models.QuestionResponse{}
	for _, q := range list.Questions {
		byID[q.ID] = q
	}
	if !byID[likedQ.ID].IsLiked {
		t.Errorf("expected is_liked=true for liked question")
	}
	if byID[likedQ.ID].IsCompleted {
		t.Errorf("liked question should not be completed")
	}
	if !byID[doneQ.ID].IsCompleted {
		t.Errorf("expected is_completed=true for completed question")
	}
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(t, db)
	user := createTestUser(t, db, "idem@example.com")
	category := createCategory(t, db, "idem", nil)
	question := createQuestion(t, db, category.ID, "once")

	if err := svc.MarkCompleted(user.ID, question.ID); err != nil {
		t.Fatalf("first MarkCompleted: %v", err)
	}
	if err := svc.MarkCompleted(user.ID, question.ID); err != nil {
		t.Fatalf("second MarkCompleted should be a no-op: %v", err)
	}

	var count int64
	if err := db.Model(&models.UserCompletedQuestion{}).Where("user_id = ? AND question_id = ?", user.ID, question.ID).Count(&count).Error; err != nil {
		t.Fatalf("counting completions: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 completion row, got %d", count)
	}
}

func TestCreateQuestionRequiresCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(t, db)

	_, err := svc.CreateQuestion(models.QuestionRequest{CategoryID: 9999, Text: "orphan"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing category, got %v", err)
	}
}
