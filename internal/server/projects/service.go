package projects

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProject always succeeds for a valid caller identity. The project
// gets the next sequential id, the caller's email as CreatedBy, and an empty
// task list.
func (s *Service) CreateProject(ctx context.Context, callerEmail, projectName, description, completionTime string) (*Project, error) {
	project := &Project{
		ProjectName:    projectName,
		Description:    description,
		CompletionTime: completionTime,
		CreatedBy:      callerEmail,
		Tasks:          []Task{},
	}

	return s.repo.Create(ctx, project)
}

// AddTask appends a task with status "Not Started" to the project's task
// list. No ownership check: any authenticated caller may add tasks to any
// project.
func (s *Service) AddTask(ctx context.Context, projectID int, taskTitle, description, dueDate, assignedTo string) (*Task, error) {
	task := &Task{
		TaskTitle:   taskTitle,
		Description: description,
		DueDate:     dueDate,
		AssignedTo:  assignedTo,
		Status:      StatusNotStarted,
	}

	return s.repo.AddTask(ctx, projectID, task)
}

// UpdateTaskStatus overwrites the task's status unconditionally; status
// values are not validated against an allowed set.
func (s *Service) UpdateTaskStatus(ctx context.Context, projectID, taskID int, status string) (*Task, error) {
	return s.repo.UpdateTaskStatus(ctx, projectID, taskID, status)
}
