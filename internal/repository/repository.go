package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Project      ProjectRepository
	Notification NotificationRepository
	Worker       WorkerRepository
	Marketplace  MarketplaceRepository
	Order        OrderRepository
	Session      SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Project:      NewProjectRepository(db),
		Notification: NewNotificationRepository(db),
		Worker:       NewWorkerRepository(db),
		Marketplace:  NewMarketplaceRepository(db),
		Order:        NewOrderRepository(db),
		Session:      NewSessionRepository(db),
	}
}
