package handler

import "buildease/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Project      *ProjectHandler
	Notification *NotificationHandler
	Worker       *WorkerHandler
	Marketplace  *MarketplaceHandler
	Contractor   *ContractorHandler
	Budget       *BudgetHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Project:      NewProjectHandler(services.Project, services.Media),
		Notification: NewNotificationHandler(services.Notification),
		Worker:       NewWorkerHandler(services.Worker),
		Marketplace:  NewMarketplaceHandler(services.Marketplace),
		Contractor:   NewContractorHandler(services.Contractor),
		Budget:       NewBudgetHandler(services.Budget),
	}
}
