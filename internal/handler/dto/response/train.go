package response

import (
	"time"

	"railbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TrainResponse struct {
	Number      string         `json:"number"`
	Name        string         `json:"name"`
	RunningDays []string       `json:"runningDays"`
	Classes     []string       `json:"classes"`
	Stops       []StopResponse `json:"stops"`
}

type StopResponse struct {
	StationCode  string `json:"stationCode"`
	StationName  string `json:"stationName"`
	ArrivalMin   *int32 `json:"arrivalMin,omitempty"`
	DepartureMin *int32 `json:"departureMin,omitempty"`
	DistanceKm   int32  `json:"distanceKm"`
	Day          int16  `json:"day"`
}

type TrainListResponse struct {
	Number      string   `json:"number"`
	Name        string   `json:"name"`
	Origin      string   `json:"origin"`
	Terminus    string   `json:"terminus"`
	RunningDays []string `json:"runningDays"`
	Classes     []string `json:"classes"`
}

type StationResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}

type AvailabilityResponse struct {
	TrainNumber        string    `json:"trainNumber"`
	ServiceDate        time.Time `json:"serviceDate"`
	Class              string    `json:"class"`
	Quota              string    `json:"quota"`
	Status             string    `json:"status"`
	ConfirmedAvailable int32     `json:"confirmedAvailable"`
	RACAvailable       int32     `json:"racAvailable"`
	WaitlistAvailable  int32     `json:"waitlistAvailable"`
}

func FromTrainView(rm *queries.TrainView) *TrainResponse {
	var resp TrainResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTrainListItem(rm *queries.TrainListItem) *TrainListResponse {
	var resp TrainListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromStationView(rm *queries.StationView) *StationResponse {
	return &StationResponse{
		Code:  rm.Code,
		Name:  rm.Name,
		State: rm.State,
	}
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
