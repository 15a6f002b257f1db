package train

import (
	"errors"
	"time"
)

var (
	ErrEmptyRoute      = errors.New("train route must have at least two stops")
	ErrUnknownStation  = errors.New("station is not on the train route")
	ErrInvalidSegment  = errors.New("origin must precede destination on the route")
	ErrClassNotOffered = errors.New("class is not offered on this train")
)

// Stop is one scheduled halt. Arrival/departure are minute offsets from
// the origin departure; the origin has no arrival and the terminus no
// departure (nil).
type Stop struct {
	StationCode  string
	StationName  string
	ArrivalMin   *int32
	DepartureMin *int32
	DistanceKm   int32
	Day          int16
}

// Train is an immutable schedule entity. Instances are created by the
// schedule import and never mutated at runtime.
type Train struct {
	number      string
	name        string
	stops       []Stop
	runningDays RunningDays
	classes     []Class

	stopIndex map[string]int
}

func NewTrain(number, name string, stops []Stop, days RunningDays, classes []Class) (*Train, error) {
	if len(stops) < 2 {
		return nil, ErrEmptyRoute
	}

	idx := make(map[string]int, len(stops))
	for i, s := range stops {
		idx[s.StationCode] = i
	}

	return &Train{
		number:      number,
		name:        name,
		stops:       stops,
		runningDays: days,
		classes:     classes,
		stopIndex:   idx,
	}, nil
}

func (t *Train) Number() string           { return t.number }
func (t *Train) Name() string             { return t.name }
func (t *Train) Stops() []Stop            { return t.stops }
func (t *Train) RunningDays() RunningDays { return t.runningDays }
func (t *Train) Classes() []Class         { return t.classes }

func (t *Train) Origin() Stop   { return t.stops[0] }
func (t *Train) Terminus() Stop { return t.stops[len(t.stops)-1] }

func (t *Train) RunsOn(date time.Time) bool {
	return t.runningDays.RunsOn(date.Weekday())
}

func (t *Train) Offers(c Class) bool {
	for _, offered := range t.classes {
		if offered == c {
			return true
		}
	}
	return false
}

// Segment is a validated (origin, destination) pair on a train's route.
type Segment struct {
	From       Stop
	To         Stop
	DistanceKm int32
}

// Segment resolves from/to station codes against the route. The origin
// must precede the destination in route order and the distance covered
// must be positive.
func (t *Train) Segment(from, to string) (Segment, error) {
	fromIdx, ok := t.stopIndex[from]
	if !ok {
		return Segment{}, ErrUnknownStation
	}
	toIdx, ok := t.stopIndex[to]
	if !ok {
		return Segment{}, ErrUnknownStation
	}
	if fromIdx >= toIdx {
		return Segment{}, ErrInvalidSegment
	}

	distance := t.stops[toIdx].DistanceKm - t.stops[fromIdx].DistanceKm
	if distance <= 0 {
		return Segment{}, ErrInvalidSegment
	}

	return Segment{
		From:       t.stops[fromIdx],
		To:         t.stops[toIdx],
		DistanceKm: distance,
	}, nil
}

// Station is a catalog entry used by station search.
type Station struct {
	Code  string
	Name  string
	State string
}
