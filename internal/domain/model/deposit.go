package model

import "time"

// DepositStatus describes the review state of a top-up request.
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

// DepositRequest is a user's request to credit their balance, backed by an
// uploaded transfer bill image. Approval and the actual credit are separate
// administrative operations.
type DepositRequest struct {
	ID          int64
	UserID      int64
	UserEmail   string
	Description string
	ImageURL    string
	Status      DepositStatus
	CreatedAt   time.Time
}
