package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
)

func TestRandomTagEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db), rand.New(rand.NewSource(1)))

	_, err := svc.RandomTag()
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound with no tags, got %v", err)
	}
}

func TestRandomTagCoversAllTags(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db), rand.New(rand.NewSource(1)))

	names := []string{"history", "science", "art"}
	for _, name := range names {
		if err := db.Create(&models.Tag{Name: name}).Error; err != nil {
			t.Fatalf("creating tag %q: %v", name, err)
		}
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tag, err := svc.RandomTag()
		if err != nil {
			t.Fatalf("RandomTag: %v", err)
		}
		seen[tag.Name] = true
	}

	for _, name := range names {
		if !seen[name] {
			t.Errorf("tag %q never selected over 100 draws", name)
		}
	}
}

func TestTagUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db), rand.New(rand.NewSource(1)))

	if _, err := svc.UpdateTag(9999, models.TagRequest{Name: "renamed"}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteTag(9999); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
