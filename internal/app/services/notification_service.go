package services

import (
	"context"
	"fmt"

	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/apperrors"
	"github.com/asmit/placenet/internal/pkg/helpers"
)

// NotificationService defines announcement logic
type NotificationService interface {
	Create(ctx context.Context, req *dto.NotificationRequest, createdBy int64) (*models.Notification, error)
	GetAll(ctx context.Context, page, size int) ([]*models.Notification, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Notification, error)
	Update(ctx context.Context, id int64, req *dto.NotificationRequest) (*models.Notification, error)
	Delete(ctx context.Context, id int64) error
}

type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repositories.NotificationRepository) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) Create(ctx context.Context, req *dto.NotificationRequest, createdBy int64) (*models.Notification, error) {
	notification := &models.Notification{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: createdBy,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

func (s *notificationServiceImpl) GetAll(ctx context.Context, page, size int) ([]*models.Notification, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.notificationRepo.GetAll(ctx, offset, limit)
}

func (s *notificationServiceImpl) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, apperrors.NewResourceNotFoundError("Notification not found")
	}
	return notification, nil
}

func (s *notificationServiceImpl) Update(ctx context.Context, id int64, req *dto.NotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{ID: id, Title: req.Title, Body: req.Body}
	affected, err := s.notificationRepo.Update(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.NewResourceNotFoundError("Notification not found")
	}
	return s.GetByID(ctx, id)
}

func (s *notificationServiceImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.notificationRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Notification not found")
	}
	return nil
}
