package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
)

// WorkerSvcFacade exposes worker management operations.
type WorkerSvcFacade interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error)
	GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error)
	ListWorkers(ctx context.Context, activeOnly bool) ([]domain.Worker, error)
	SearchWorkers(ctx context.Context, query string) ([]domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID int64, req dto.UpdateWorkerRequest) (*domain.Worker, error)
	DeactivateWorker(ctx context.Context, workerID int64) error
	DeleteWorker(ctx context.Context, workerID int64) error
}
