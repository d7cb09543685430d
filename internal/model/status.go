package model

// TaskStatus represents the status of a build transfer
type TaskStatus string

const (
	// TaskStatusPending means the transfer is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the transfer is resolving its source
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusTransferring means bytes are being received
	TaskStatusTransferring TaskStatus = "Transferring"

	// TaskStatusVerifying means the received files are being checked
	TaskStatusVerifying TaskStatus = "Verifying"

	// TaskStatusStopping means a stop was requested and is in progress
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the transfer was stopped by the user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the transfer finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the transfer failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the transfer counts towards the drawer badge
func (ts TaskStatus) IsActive() bool {
	switch ts {
	case TaskStatusStarting, TaskStatusTransferring, TaskStatusVerifying, TaskStatusStopping:
		return true
	default:
		return false
	}
}

// IsFinished returns true if the transfer is completed, stopped, or failed
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}
