package services

import (
	"context"
	"fmt"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/notify"
)

type WorkerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryFacade
	notifier   *notify.Notifier
}

func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, notifier *notify.Notifier) portssvc.WorkerSvcFacade {
	return &WorkerService{workerRepo: workerRepo, notifier: notifier}
}

var _ portssvc.WorkerSvcFacade = (*WorkerService)(nil)

func (s *WorkerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	now := time.Now()
	worker := domain.Worker{
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		Role:             req.Role,
		NationalID:       req.NationalID,
		JoinDate:         req.JoinDate,
		IsActive:         true,
		ProfileImagePath: req.ProfileImagePath,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	workerID, err := s.workerRepo.SaveWorker(ctx, worker)
	if err != nil {
		s.LogError(ctx, err, "Failed to create worker")
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	worker.WorkerID = workerID

	s.LogInfo(ctx, "Worker created", "worker_id", workerID)
	s.notifier.Notify(notify.TableWorkers)
	return &worker, nil
}

func (s *WorkerService) GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) ListWorkers(ctx context.Context, activeOnly bool) ([]domain.Worker, error) {
	if activeOnly {
		return s.workerRepo.FindActiveWorkers(ctx)
	}
	return s.workerRepo.FindWorkers(ctx)
}

func (s *WorkerService) SearchWorkers(ctx context.Context, query string) ([]domain.Worker, error) {
	return s.workerRepo.SearchWorkers(ctx, query)
}

func (s *WorkerService) UpdateWorker(ctx context.Context, workerID int64, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		worker.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		worker.Address = *req.Address
	}
	if req.Role != nil {
		worker.Role = *req.Role
	}
	if req.NationalID != nil {
		worker.NationalID = *req.NationalID
	}
	if req.JoinDate != nil {
		worker.JoinDate = *req.JoinDate
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}
	if req.ProfileImagePath != nil {
		worker.ProfileImagePath = req.ProfileImagePath
	}
	worker.LastUpdatedAt = time.Now()

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.LogError(ctx, err, "Failed to update worker", "worker_id", workerID)
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	s.notifier.Notify(notify.TableWorkers)
	return worker, nil
}

func (s *WorkerService) DeactivateWorker(ctx context.Context, workerID int64) error {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return err
	}
	if !worker.IsActive {
		return nil
	}
	worker.IsActive = false
	worker.LastUpdatedAt = time.Now()

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.LogError(ctx, err, "Failed to deactivate worker", "worker_id", workerID)
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}

	s.LogInfo(ctx, "Worker deactivated", "worker_id", workerID)
	s.notifier.Notify(notify.TableWorkers)
	return nil
}

func (s *WorkerService) DeleteWorker(ctx context.Context, workerID int64) error {
	if err := s.workerRepo.DeleteWorker(ctx, workerID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Worker deleted", "worker_id", workerID)
	s.notifier.Notify(notify.TableWorkers)
	return nil
}
