package request

import (
	"strings"
	"time"

	"railbook/internal/domain/train"
	"railbook/internal/usecase/commands"
)

type CreateQuoteRequest struct {
	TrainNumber string `json:"train_number" binding:"required"`
	ServiceDate string `json:"service_date" binding:"required"` // YYYY-MM-DD
	Class       string `json:"class" binding:"required"`
	Quota       string `json:"quota" binding:"required"`
	FromStation string `json:"from_station" binding:"required"`
	ToStation   string `json:"to_station" binding:"required"`
	Passengers  int32  `json:"passengers" binding:"required,min=1,max=6"`
}

func (r CreateQuoteRequest) ToInput() (commands.CreateQuoteInput, error) {
	date, err := time.Parse("2006-01-02", r.ServiceDate)
	if err != nil {
		return commands.CreateQuoteInput{}, err
	}

	return commands.CreateQuoteInput{
		TrainNumber: strings.TrimSpace(r.TrainNumber),
		ServiceDate: date,
		Class:       train.Class(strings.ToUpper(strings.TrimSpace(r.Class))),
		Quota:       train.Quota(strings.ToUpper(strings.TrimSpace(r.Quota))),
		FromStation: strings.ToUpper(strings.TrimSpace(r.FromStation)),
		ToStation:   strings.ToUpper(strings.TrimSpace(r.ToStation)),
		Passengers:  r.Passengers,
	}, nil
}
