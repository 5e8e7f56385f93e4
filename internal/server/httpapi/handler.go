package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

type registerRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createProjectRequest struct {
	ProjectName    string `json:"projectName"`
	Description    string `json:"description"`
	CompletionTime string `json:"completionTime"`
}

type addTaskRequest struct {
	TaskTitle   string `json:"taskTitle"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	AssignedTo  string `json:"assignedTo"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (s *HTTPServer) ping(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	_, err := s.users.Register(r.Context(), req.Name, req.Designation, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondWithMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		respondServerError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "User registered successfully")
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			respondWithMessage(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, common.ErrorInvalidCredentials):
			respondWithMessage(w, http.StatusBadRequest, "Invalid password")
		default:
			s.logger.Error(r.Context(), err.Error())
			respondServerError(w, err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *HTTPServer) createProject(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromContext(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	project, err := s.projects.CreateProject(r.Context(), caller.Email, req.ProjectName, req.Description, req.CompletionTime)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		respondServerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Project created successfully",
		"project": project,
	})
}

func (s *HTTPServer) addTask(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id parses to 0, which never matches a project, so it
	// falls out as the same not-found the caller would get for a numeric
	// miss.
	projectID, _ := strconv.Atoi(r.PathValue("projectId"))

	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := s.projects.AddTask(r.Context(), projectID, req.TaskTitle, req.Description, req.DueDate, req.AssignedTo)
	if err != nil {
		if errors.Is(err, common.ErrProjectNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		respondServerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Task assigned successfully",
		"task":    task,
	})
}

func (s *HTTPServer) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.Atoi(r.PathValue("projectId"))
	taskID, _ := strconv.Atoi(r.PathValue("taskId"))

	var req updateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := s.projects.UpdateTaskStatus(r.Context(), projectID, taskID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrProjectNotFound):
			respondWithMessage(w, http.StatusNotFound, "Project not found")
		case errors.Is(err, common.ErrTaskNotFound):
			respondWithMessage(w, http.StatusNotFound, "Task not found")
		default:
			s.logger.Error(r.Context(), err.Error())
			respondServerError(w, err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Task status updated",
		"task":    task,
	})
}
