package request

import (
	"strings"

	"railbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type PassengerRequest struct {
	Name      string `json:"name" binding:"required"`
	Age       int16  `json:"age" binding:"required,min=1,max=120"`
	Gender    string `json:"gender" binding:"required,oneof=male female other"`
	BerthPref string `json:"berth_pref,omitempty" binding:"omitempty,oneof=lower middle upper side-lower side-upper window aisle"`
}

type CreateBookingRequest struct {
	QuoteToken uuid.UUID          `json:"quote_token" binding:"required"`
	Passengers []PassengerRequest `json:"passengers" binding:"required,min=1,max=6,dive"`
}

func (r CreateBookingRequest) ToInputs() []commands.PassengerInput {
	inputs := make([]commands.PassengerInput, len(r.Passengers))
	for i, p := range r.Passengers {
		inputs[i] = commands.PassengerInput{
			Name:      strings.TrimSpace(p.Name),
			Age:       p.Age,
			Gender:    p.Gender,
			BerthPref: p.BerthPref,
		}
	}
	return inputs
}
