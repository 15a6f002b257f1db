package response

import (
	"time"

	"railbook/internal/usecase/commands"
	"railbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookResponse struct {
	PNR       string `json:"pnr"`
	Status    string `json:"status"`
	FarePaise int64  `json:"farePaise"`
}

type CancelResponse struct {
	PNR          string   `json:"pnr"`
	Status       string   `json:"status"`
	PromotedPNRs []string `json:"promotedPnrs,omitempty"`
}

type BookingListResponse struct {
	PNR            string    `json:"pnr"`
	TrainNumber    string    `json:"trainNumber"`
	TrainName      string    `json:"trainName"`
	ServiceDate    time.Time `json:"serviceDate"`
	Class          string    `json:"class"`
	Quota          string    `json:"quota"`
	FromStation    string    `json:"fromStation"`
	ToStation      string    `json:"toStation"`
	Status         string    `json:"status"`
	FarePaise      int64     `json:"farePaise"`
	PassengerCount int32     `json:"passengerCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBookResult(r *commands.BookResult) *BookResponse {
	return &BookResponse{
		PNR:       r.PNR,
		Status:    r.Status,
		FarePaise: r.FarePaise,
	}
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		PNR:          r.PNR,
		Status:       "CANCELLED",
		PromotedPNRs: r.PromotedPNRs,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	// field names line up one-to-one
	_ = copier.Copy(&resp, rm)
	return &resp
}
