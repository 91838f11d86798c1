package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"buildease/internal/config"
)

// Service sends transactional email. All sends are best-effort; callers never
// fail an operation on a delivery error.
type Service interface {
	SendBidAlertEmail(ctx context.Context, toEmail, customerName, bidderName, amount, projectTitle string) error
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *service) send(toEmail, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("BuildEase <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendBidAlertEmail(ctx context.Context, toEmail, customerName, bidderName, amount, projectTitle string) error {
	html := fmt.Sprintf(
		`<p>Hi %s,</p>
<p><strong>%s</strong> placed a bid of <strong>%s</strong> on your project &quot;%s&quot;.</p>
<p>Log in at <a href="https://%s">%s</a> to review it.</p>`,
		customerName, bidderName, amount, projectTitle, s.cfg.Domain, s.cfg.Domain,
	)
	return s.send(toEmail, fmt.Sprintf("New bid on %q", projectTitle), html)
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	html := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Welcome to BuildEase. Your account is ready.</p>
<p><a href="https://%s/login">Sign in</a> to get started.</p>`,
		name, s.cfg.Domain,
	)
	return s.send(toEmail, "Welcome to BuildEase", html)
}
