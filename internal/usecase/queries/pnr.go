package queries

import (
	"context"
	"fmt"

	"railbook/internal/domain/booking"
)

type PNRQueries interface {
	Status(ctx context.Context, pnr string) (*PNRStatusView, error)
}

type PNRViewRepo interface {
	FindStatusByPNR(ctx context.Context, pnr string) (*PNRStatusView, error)
}

type pnrQueriesImpl struct {
	repo PNRViewRepo
}

func NewPNRQueries(repo PNRViewRepo) PNRQueries {
	return &pnrQueriesImpl{repo: repo}
}

func (q *pnrQueriesImpl) Status(ctx context.Context, pnr string) (*PNRStatusView, error) {
	view, err := q.repo.FindStatusByPNR(ctx, pnr)
	if err != nil {
		return nil, err
	}
	view.StatusLabel = statusLabel(view.Status, view.QueuePos)
	return view, nil
}

// statusLabel renders the ticket-style status line: CNF, RAC n and
// WL n carry the current queue position, CAN is terminal.
func statusLabel(status string, pos int32) string {
	switch booking.Status(status) {
	case booking.StatusConfirmed:
		return "CNF"
	case booking.StatusRAC:
		return fmt.Sprintf("RAC %d", pos)
	case booking.StatusWaitlisted:
		return fmt.Sprintf("WL %d", pos)
	case booking.StatusCancelled:
		return "CAN"
	default:
		return status
	}
}
