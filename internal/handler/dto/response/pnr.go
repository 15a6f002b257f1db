package response

import (
	"time"

	"railbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PNRStatusResponse struct {
	PNR         string              `json:"pnr"`
	TrainNumber string              `json:"trainNumber"`
	TrainName   string              `json:"trainName"`
	ServiceDate time.Time           `json:"serviceDate"`
	Class       string              `json:"class"`
	Quota       string              `json:"quota"`
	FromStation string              `json:"fromStation"`
	ToStation   string              `json:"toStation"`
	Status      string              `json:"status"`
	StatusLabel string              `json:"statusLabel"`
	FarePaise   int64               `json:"farePaise"`
	Passengers  []PassengerResponse `json:"passengers"`
	BookedAt    time.Time           `json:"bookedAt"`
	CancelledAt *time.Time          `json:"cancelledAt,omitempty"`
}

type PassengerResponse struct {
	Name      string `json:"name"`
	Age       int16  `json:"age"`
	Gender    string `json:"gender"`
	BerthPref string `json:"berthPref,omitempty"`
}

func FromPNRStatusView(rm *queries.PNRStatusView) *PNRStatusResponse {
	var resp PNRStatusResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
