package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/repository"
	"buildease/internal/service/email"
)

type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType, text string) error
	List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyBidPlaced(ctx context.Context, project *domain.Project, bidder *domain.User, amount string) error
	NotifyProgressUpdated(ctx context.Context, project *domain.Project, progress *int) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) Notify(ctx context.Context, userID uuid.UUID, notifType, text string) error {
	notif := &domain.Notification{
		ID:     uuid.New(),
		UserID: userID,
		Type:   notifType,
		Text:   text,
	}
	return s.notifRepo.Create(ctx, notif)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, domain.NotificationListLimit)
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	notif, err := s.notifRepo.MarkAsRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if notif == nil {
		return nil, domain.ErrNotificationNotFound
	}
	return notif, nil
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// NotifyBidPlaced alerts the project customer about a new bid. The in-app
// notification is the source of truth; the email copy is fire-and-forget.
func (s *service) NotifyBidPlaced(ctx context.Context, project *domain.Project, bidder *domain.User, amount string) error {
	text := fmt.Sprintf("%s placed a bid of %s on your project %q.", bidder.DisplayName(), amount, project.Title)

	if err := s.Notify(ctx, project.CustomerID, domain.NotifBid, text); err != nil {
		return err
	}

	if s.emailSvc != nil {
		if customer, err := s.userRepo.GetByID(ctx, project.CustomerID); err == nil && customer != nil {
			go func(toEmail, customerName, bidderName, amount, title string) {
				ctx := context.Background()
				if err := s.emailSvc.SendBidAlertEmail(ctx, toEmail, customerName, bidderName, amount, title); err != nil {
					log.Printf("Failed to send bid alert email to %s: %v", toEmail, err)
				}
			}(customer.Email, customer.Name, bidder.DisplayName(), amount, project.Title)
		}
	}

	return nil
}

// NotifyProgressUpdated embeds the progress value from the request, not the
// stored one. A nil progress produces the "unknown" placeholder, matching the
// milestone feed's behavior for progress-less updates.
func (s *service) NotifyProgressUpdated(ctx context.Context, project *domain.Project, progress *int) error {
	text := fmt.Sprintf("Project %q progress updated to %s%%.", project.Title, progressLabel(progress))
	return s.Notify(ctx, project.CustomerID, domain.NotifMilestone, text)
}

func progressLabel(progress *int) string {
	if progress == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *progress)
}
