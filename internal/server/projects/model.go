// Package projects owns the project collection and its embedded task lists.
package projects

// StatusNotStarted is the initial status of every task.
const StatusNotStarted = "Not Started"

// Task lives inside its project's task list. Task ids are sequential within
// the owning project only; two projects both have a task 1.
type Task struct {
	ID          int    `json:"id"`
	TaskTitle   string `json:"taskTitle"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	AssignedTo  string `json:"assignedTo"`
	Status      string `json:"status"`
}

// Project is created by an authenticated caller; CreatedBy holds the
// creator's email and never changes. The JSON form doubles as the persisted
// layout of the projects collection and the wire format of responses.
type Project struct {
	ID             int    `json:"id"`
	ProjectName    string `json:"projectName"`
	Description    string `json:"description"`
	CompletionTime string `json:"completionTime"`
	CreatedBy      string `json:"createdBy"`
	Tasks          []Task `json:"tasks"`
}
