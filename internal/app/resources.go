package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/schema"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

// Client-facing place rule messages.
const (
	MsgTaskMissing     = "Task does not exist and cannot be linked to this place."
	MsgTaskIDImmutable = "You cannot change the taskId for a place."
)

// TaskResource configures the task collection. A fetched task carries the
// places linked to it under "places".
func TaskResource(store ports.Store) ResourceConfig {
	return ResourceConfig{
		Collection: ports.CollectionTasks,
		Schema:     schema.Task(),
		Expand: func(ctx context.Context, task domain.Record) (domain.Record, error) {
			places, err := store.ReadAll(ctx, ports.CollectionPlaces)
			if err != nil {
				return nil, fmt.Errorf("reading places for task %s: %w", task.ID(), err)
			}

			linked := make([]domain.Record, 0)
			for _, p := range places {
				if p.String(domain.FieldTaskID) == task.ID() {
					linked = append(linked, p)
				}
			}

			out := task.Clone()
			out[domain.FieldPlaces] = linked
			return out, nil
		},
	}
}

// PlaceResource configures the place collection. A place must reference an
// existing task when created and its taskId can never change afterwards.
func PlaceResource(store ports.Store) ResourceConfig {
	return ResourceConfig{
		Collection: ports.CollectionPlaces,
		Schema:     schema.Place(),
		BeforeCreate: func(ctx context.Context, place domain.Record) error {
			tasks, err := store.ReadAll(ctx, ports.CollectionTasks)
			if err != nil {
				return fmt.Errorf("reading tasks: %w", err)
			}
			if domain.IndexOf(tasks, place.String(domain.FieldTaskID)) < 0 {
				return domain.NewClientError(domain.ErrUnprocessable, MsgTaskMissing)
			}
			return nil
		},
		BeforeUpdate: func(_ context.Context, body map[string]any) error {
			if _, ok := body[domain.FieldTaskID]; ok {
				return domain.NewClientError(domain.ErrUnprocessable, MsgTaskIDImmutable)
			}
			return nil
		},
	}
}
