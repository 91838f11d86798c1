package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendBidAlertEmail(ctx context.Context, toEmail, customerName, bidderName, amount, projectTitle string) error {
	args := m.Called(ctx, toEmail, customerName, bidderName, amount, projectTitle)
	return args.Error(0)
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	args := m.Called(ctx, toEmail, name)
	return args.Error(0)
}
