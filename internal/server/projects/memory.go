package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/storage"
)

// MemoryRepository holds the project collection in memory and writes the
// whole collection through to the backing store after every mutation.
// Project and per-project task ids come from repository-owned monotonic
// counters initialized from the loaded state, not from re-counting lengths.
type MemoryRepository struct {
	mu         sync.Mutex
	projects   []*Project
	nextID     int
	nextTaskID map[int]int
	store      storage.Store
}

// NewMemoryRepository loads the projects collection once from the store. A
// missing collection yields an empty repository rather than an error.
func NewMemoryRepository(ctx context.Context, store storage.Store) (*MemoryRepository, error) {
	r := &MemoryRepository{
		store:      store,
		projects:   []*Project{},
		nextID:     1,
		nextTaskID: map[int]int{},
	}

	data, err := store.Load(ctx, storage.CollectionProjects)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.projects); err != nil {
			return nil, fmt.Errorf("decoding projects: %w", err)
		}
	}

	for _, p := range r.projects {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		next := 1
		for _, t := range p.Tasks {
			if t.ID >= next {
				next = t.ID + 1
			}
		}
		r.nextTaskID[p.ID] = next
	}

	return r, nil
}

func (r *MemoryRepository) Create(ctx context.Context, project *Project) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = r.nextID
	r.nextID++
	if project.Tasks == nil {
		project.Tasks = []Task{}
	}
	r.nextTaskID[project.ID] = 1
	r.projects = append(r.projects, project)

	if err := r.persist(ctx); err != nil {
		return nil, err
	}

	return copyProject(project), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, common.ErrProjectNotFound
	}

	return copyProject(p), nil
}

func (r *MemoryRepository) AddTask(ctx context.Context, projectID int, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(projectID)
	if p == nil {
		return nil, common.ErrProjectNotFound
	}

	task.ID = r.nextTaskID[projectID]
	r.nextTaskID[projectID]++
	p.Tasks = append(p.Tasks, *task)

	if err := r.persist(ctx); err != nil {
		return nil, err
	}

	copied := *task
	return &copied, nil
}

func (r *MemoryRepository) UpdateTaskStatus(ctx context.Context, projectID, taskID int, status string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(projectID)
	if p == nil {
		return nil, common.ErrProjectNotFound
	}

	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks[i].Status = status

			if err := r.persist(ctx); err != nil {
				return nil, err
			}

			copied := p.Tasks[i]
			return &copied, nil
		}
	}

	return nil, common.ErrTaskNotFound
}

// find returns the live project record. Callers hold r.mu.
func (r *MemoryRepository) find(id int) *Project {
	for _, p := range r.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// persist overwrites the whole projects collection. Callers hold r.mu. On
// failure the in-memory mutation is not rolled back; the caller sees the
// storage error and must not treat the mutation as committed.
func (r *MemoryRepository) persist(ctx context.Context) error {
	data, err := json.Marshal(r.projects)
	if err != nil {
		return fmt.Errorf("%w: encoding projects: %v", common.ErrorStorage, err)
	}
	if err := r.store.Save(ctx, storage.CollectionProjects, data); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorage, err)
	}
	return nil
}

func copyProject(p *Project) *Project {
	copied := *p
	copied.Tasks = make([]Task, len(p.Tasks))
	copy(copied.Tasks, p.Tasks)
	return &copied
}
