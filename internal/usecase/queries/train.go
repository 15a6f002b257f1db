package queries

import (
	"context"
	"time"
)

type TrainQueries interface {
	Get(ctx context.Context, number string) (*TrainView, error)
	List(ctx context.Context) ([]*TrainListItem, error)
	Search(ctx context.Context, from, to string, date time.Time) ([]*TrainListItem, error)
	SearchStations(ctx context.Context, query string, limit int) ([]*StationView, error)
}

type TrainViewRepo interface {
	FindByNumber(ctx context.Context, number string) (*TrainView, error)
	FindAll(ctx context.Context) ([]*TrainListItem, error)
	FindServing(ctx context.Context, from, to string) ([]*TrainListItem, error)
	FindStations(ctx context.Context, query string, limit int32) ([]*StationView, error)
}

type trainQueriesImpl struct {
	repo TrainViewRepo
}

func NewTrainQueries(repo TrainViewRepo) TrainQueries {
	return &trainQueriesImpl{repo: repo}
}

func (q *trainQueriesImpl) Get(ctx context.Context, number string) (*TrainView, error) {
	return q.repo.FindByNumber(ctx, number)
}

func (q *trainQueriesImpl) List(ctx context.Context) ([]*TrainListItem, error) {
	return q.repo.FindAll(ctx)
}

// Search lists trains that serve from before to on their route. When a
// date is given only trains running on that weekday are returned.
func (q *trainQueriesImpl) Search(ctx context.Context, from, to string, date time.Time) ([]*TrainListItem, error) {
	items, err := q.repo.FindServing(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return items, nil
	}

	weekday := date.UTC().Weekday().String()[:3]
	filtered := make([]*TrainListItem, 0, len(items))
	for _, item := range items {
		for _, d := range item.RunningDays {
			if d == weekday {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered, nil
}

func (q *trainQueriesImpl) SearchStations(ctx context.Context, query string, limit int) ([]*StationView, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return q.repo.FindStations(ctx, query, int32(limit))
}
