package api

import (
	"context"
	"fmt"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type TaskService struct {
	c *backend.Client
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.c.GetJSON(ctx, "api/task/get", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	var created models.Task
	if err := s.c.PostJSON(ctx, "api/task/create", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *TaskService) Update(ctx context.Context, id int64, task models.Task) (*models.Task, error) {
	var updated models.Task
	if err := s.c.PutJSON(ctx, fmt.Sprintf("api/task/update/%d", id), task, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
