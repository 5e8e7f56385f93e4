package projects

import "context"

// Repository owns the project collection. Create assigns the next sequential
// project id; AddTask assigns the next task id within the target project.
// Lookups by unknown id fail with common.ErrProjectNotFound /
// common.ErrTaskNotFound.
type Repository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	GetByID(ctx context.Context, id int) (*Project, error)
	AddTask(ctx context.Context, projectID int, task *Task) (*Task, error)
	UpdateTaskStatus(ctx context.Context, projectID, taskID int, status string) (*Task, error)
}
