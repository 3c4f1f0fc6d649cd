package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
	"smartpg/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type NoticeService struct {
	noticeRepo repository.NoticeRepository
	userRepo   repository.UserRepository
	events     EventPublisher
}

func NewNoticeService(
	noticeRepo repository.NoticeRepository,
	userRepo repository.UserRepository,
	events EventPublisher,
) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo, userRepo: userRepo, events: events}
}

type CreateNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create publishes an announcement authored by the given admin. The author
// label shown to residents is the admin's display name.
func (s *NoticeService) Create(ctx context.Context, authorID string, req CreateNoticeRequest) (*model.Notice, error) {
	if req.Title == "" || req.Content == "" {
		return nil, common.Errorf("title and content are required: %w", common.ErrBadRequest)
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	notice := &model.Notice{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Slug:      slug.Make(req.Title),
		Content:   req.Content,
		Author:    author.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}

	if s.events != nil {
		event := model.Event{
			ID:        uuid.NewString(),
			Type:      model.EventNoticePublished,
			EntityID:  notice.ID,
			Summary:   notice.Title,
			CreatedAt: notice.CreatedAt,
		}
		if err := s.events.Publish(ctx, event); err != nil {
			log.Printf("WARN: failed to publish notice event for %s: %v", notice.ID, err)
		}
	}
	return notice, nil
}

func (s *NoticeService) List(ctx context.Context) ([]model.Notice, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

func (s *NoticeService) Delete(ctx context.Context, id string) error {
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}
