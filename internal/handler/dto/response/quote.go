package response

import (
	"time"

	"railbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Token        uuid.UUID `json:"token"`
	TrainNumber  string    `json:"trainNumber"`
	ServiceDate  string    `json:"serviceDate"`
	Class        string    `json:"class"`
	Quota        string    `json:"quota"`
	FromStation  string    `json:"fromStation"`
	ToStation    string    `json:"toStation"`
	DistanceKm   int32     `json:"distanceKm"`
	Passengers   int32     `json:"passengers"`
	FarePaise    int64     `json:"farePaise"`
	FareVersion  string    `json:"fareVersion"`
	Availability string    `json:"availability"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		Token:        r.Token,
		TrainNumber:  r.TrainNumber,
		ServiceDate:  r.ServiceDate.Format("2006-01-02"),
		Class:        r.Class,
		Quota:        r.Quota,
		FromStation:  r.FromStation,
		ToStation:    r.ToStation,
		DistanceKm:   r.DistanceKm,
		Passengers:   r.Passengers,
		FarePaise:    r.FarePaise,
		FareVersion:  r.FareVersion,
		Availability: r.Availability,
		ExpiresAt:    r.ExpiresAt,
	}
}
