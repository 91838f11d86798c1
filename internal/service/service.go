package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"buildease/internal/config"
	"buildease/internal/domain"
	"buildease/internal/repository"
	"buildease/internal/service/auth"
	"buildease/internal/service/budget"
	"buildease/internal/service/contractor"
	"buildease/internal/service/email"
	"buildease/internal/service/marketplace"
	"buildease/internal/service/media"
	"buildease/internal/service/notification"
	"buildease/internal/service/project"
	"buildease/internal/service/worker"
)

type Services struct {
	Auth         auth.Service
	Project      project.Service
	Notification notification.Service
	Worker       worker.Service
	Marketplace  marketplace.Service
	Contractor   contractor.Service
	Budget       budget.Service
	Media        media.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, rates domain.RateTable, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService)
	projectService := project.NewService(repos.Project, redis, notificationService)
	workerService := worker.NewService(repos.Worker)
	marketplaceService := marketplace.NewService(repos.Marketplace, repos.Order)
	contractorService := contractor.NewService(repos.User)
	budgetService := budget.NewService(rates)
	mediaService := media.NewService(repos.Project, minioClient, cfg)

	return &Services{
		Auth:         authService,
		Project:      projectService,
		Notification: notificationService,
		Worker:       workerService,
		Marketplace:  marketplaceService,
		Contractor:   contractorService,
		Budget:       budgetService,
		Media:        mediaService,
		Email:        emailService,
	}
}
