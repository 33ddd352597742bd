package domain

// Worker is a labourer or tradesperson on the company's books.
type Worker struct {
	WorkerID         int64   `json:"workerID"`
	Name             string  `json:"name"`
	PhoneNumber      string  `json:"phoneNumber"`
	Address          string  `json:"address"`
	Role             string  `json:"role"`
	NationalID       string  `json:"nationalID"`
	JoinDate         string  `json:"joinDate"`
	IsActive         bool    `json:"isActive"`
	ProfileImagePath *string `json:"profileImagePath,omitempty"`
	AuditFields
}
