package queries

import "time"

// Read models (DTO for read side)
type PNRStatusView struct {
	PNR         string          `json:"pnr"`
	TrainNumber string          `json:"train_number"`
	TrainName   string          `json:"train_name"`
	ServiceDate time.Time       `json:"service_date"`
	Class       string          `json:"class"`
	Quota       string          `json:"quota"`
	FromStation string          `json:"from_station"`
	ToStation   string          `json:"to_station"`
	Status      string          `json:"status"`
	QueuePos    int32           `json:"-"`
	StatusLabel string          `json:"status_label"`
	FarePaise   int64           `json:"fare_paise"`
	Passengers  []PassengerView `json:"passengers"`
	BookedAt    time.Time       `json:"booked_at"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
}

type PassengerView struct {
	Name      string `json:"name"`
	Age       int16  `json:"age"`
	Gender    string `json:"gender"`
	BerthPref string `json:"berth_pref,omitempty"`
}

type BookingListItem struct {
	PNR            string    `json:"pnr"`
	TrainNumber    string    `json:"train_number"`
	TrainName      string    `json:"train_name"`
	ServiceDate    time.Time `json:"service_date"`
	Class          string    `json:"class"`
	Quota          string    `json:"quota"`
	FromStation    string    `json:"from_station"`
	ToStation      string    `json:"to_station"`
	Status         string    `json:"status"`
	FarePaise      int64     `json:"fare_paise"`
	PassengerCount int32     `json:"passenger_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type AvailabilityView struct {
	TrainNumber        string    `json:"train_number"`
	ServiceDate        time.Time `json:"service_date"`
	Class              string    `json:"class"`
	Quota              string    `json:"quota"`
	Status             string    `json:"status"`
	ConfirmedAvailable int32     `json:"confirmed_available"`
	RACAvailable       int32     `json:"rac_available"`
	WaitlistAvailable  int32     `json:"waitlist_available"`
}

type TrainView struct {
	Number      string     `json:"number"`
	Name        string     `json:"name"`
	RunningDays []string   `json:"running_days"`
	Classes     []string   `json:"classes"`
	Stops       []StopView `json:"stops"`
}

type StopView struct {
	StationCode  string `json:"station_code"`
	StationName  string `json:"station_name"`
	ArrivalMin   *int32 `json:"arrival_min,omitempty"`
	DepartureMin *int32 `json:"departure_min,omitempty"`
	DistanceKm   int32  `json:"distance_km"`
	Day          int16  `json:"day"`
}

type TrainListItem struct {
	Number      string   `json:"number"`
	Name        string   `json:"name"`
	Origin      string   `json:"origin"`
	Terminus    string   `json:"terminus"`
	RunningDays []string `json:"running_days"`
	Classes     []string `json:"classes"`
}

type StationView struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}
