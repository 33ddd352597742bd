package dto

import "github.com/buildcrew/construction_mgmt_app/internal/core/domain"

// CreateWorkerRequest carries the add-worker form fields.
type CreateWorkerRequest struct {
	Name             string  `json:"name" binding:"required"`
	PhoneNumber      string  `json:"phoneNumber" binding:"required"`
	Address          string  `json:"address" binding:"required"`
	Role             string  `json:"role" binding:"required"`
	NationalID       string  `json:"nationalID" binding:"required"`
	JoinDate         string  `json:"joinDate" binding:"required,datetime=2006-01-02"`
	ProfileImagePath *string `json:"profileImagePath"`
}

// UpdateWorkerRequest uses pointers to distinguish omitted fields from
// zero-value fields.
type UpdateWorkerRequest struct {
	Name             *string `json:"name"`
	PhoneNumber      *string `json:"phoneNumber"`
	Address          *string `json:"address"`
	Role             *string `json:"role"`
	NationalID       *string `json:"nationalID"`
	JoinDate         *string `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	IsActive         *bool   `json:"isActive"`
	ProfileImagePath *string `json:"profileImagePath"`
}

// WorkerResponse is the API shape of a worker.
type WorkerResponse struct {
	WorkerID         int64   `json:"workerID"`
	Name             string  `json:"name"`
	PhoneNumber      string  `json:"phoneNumber"`
	Address          string  `json:"address"`
	Role             string  `json:"role"`
	NationalID       string  `json:"nationalID"`
	JoinDate         string  `json:"joinDate"`
	IsActive         bool    `json:"isActive"`
	ProfileImagePath *string `json:"profileImagePath,omitempty"`
}

func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:         w.WorkerID,
		Name:             w.Name,
		PhoneNumber:      w.PhoneNumber,
		Address:          w.Address,
		Role:             w.Role,
		NationalID:       w.NationalID,
		JoinDate:         w.JoinDate,
		IsActive:         w.IsActive,
		ProfileImagePath: w.ProfileImagePath,
	}
}

// ListWorkersResponse wraps the list of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

func ToListWorkersResponse(workers []domain.Worker) ListWorkersResponse {
	out := make([]WorkerResponse, len(workers))
	for i := range workers {
		out[i] = ToWorkerResponse(&workers[i])
	}
	return ListWorkersResponse{Workers: out}
}
