package schedule

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"railbook/internal/domain/train"
	"railbook/internal/pkg/errs"
)

var dayCodes = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// ParseStations reads the station catalog CSV (code,name,state).
func ParseStations(r io.Reader) ([]train.Station, error) {
	rows, err := readAll(r, 3)
	if err != nil {
		return nil, err
	}

	stations := make([]train.Station, 0, len(rows))
	for _, row := range rows {
		stations = append(stations, train.Station{
			Code:  row[0],
			Name:  row[1],
			State: row[2],
		})
	}
	return stations, nil
}

type trainHeader struct {
	number  string
	name    string
	days    train.RunningDays
	classes []train.Class
}

// routeRow is one stop as it appears in the feed: clock times with a
// journey day, which the parser converts to minute offsets from the
// origin departure.
type routeRow struct {
	trainNumber string
	stop        train.Stop
	arrival     string
	departure   string
	day         int16
}

// ParseTrains assembles the full timetable from the trains and routes
// feeds. Every train must have a route.
func ParseTrains(trains, routes io.Reader) ([]*train.Train, error) {
	headers, err := parseTrainHeaders(trains)
	if err != nil {
		return nil, err
	}
	stopsByTrain, err := parseRoutes(routes)
	if err != nil {
		return nil, err
	}

	result := make([]*train.Train, 0, len(headers))
	for _, h := range headers {
		stops, ok := stopsByTrain[h.number]
		if !ok {
			return nil, errs.Newf("train %s has no route rows", h.number)
		}
		t, err := train.NewTrain(h.number, h.name, stops, h.days, h.classes)
		if err != nil {
			return nil, errs.Wrap(err, "invalid route for train "+h.number)
		}
		result = append(result, t)
	}
	return result, nil
}

func parseTrainHeaders(r io.Reader) ([]trainHeader, error) {
	rows, err := readAll(r, 4)
	if err != nil {
		return nil, err
	}

	headers := make([]trainHeader, 0, len(rows))
	for _, row := range rows {
		days, err := parseDays(row[2])
		if err != nil {
			return nil, err
		}

		var classes []train.Class
		for _, code := range strings.Split(row[3], ";") {
			c := train.Class(code)
			if !c.IsValid() {
				return nil, errs.Newf("unknown class code %q for train %s", code, row[0])
			}
			classes = append(classes, c)
		}

		headers = append(headers, trainHeader{
			number:  row[0],
			name:    row[1],
			days:    days,
			classes: classes,
		})
	}
	return headers, nil
}

func parseDays(s string) (train.RunningDays, error) {
	if s == "Daily" {
		return train.RunsDaily, nil
	}
	var days train.RunningDays
	for _, code := range strings.Split(s, ";") {
		d, ok := dayCodes[code]
		if !ok {
			return 0, errs.Newf("unknown day code %q", code)
		}
		days |= train.NewRunningDays(d)
	}
	return days, nil
}

func parseRoutes(r io.Reader) (map[string][]train.Stop, error) {
	rows, err := readAll(r, 8)
	if err != nil {
		return nil, err
	}

	raw := map[string][]routeRow{}
	for _, row := range rows {
		distance, err := strconv.ParseInt(row[6], 10, 32)
		if err != nil {
			return nil, errs.Wrap(err, "bad distance for train "+row[0])
		}
		day, err := strconv.ParseInt(row[7], 10, 16)
		if err != nil {
			return nil, errs.Wrap(err, "bad day for train "+row[0])
		}

		raw[row[0]] = append(raw[row[0]], routeRow{
			trainNumber: row[0],
			stop: train.Stop{
				StationCode: row[2],
				StationName: row[3],
				DistanceKm:  int32(distance),
				Day:         int16(day),
			},
			arrival:   row[4],
			departure: row[5],
			day:       int16(day),
		})
	}

	stopsByTrain := make(map[string][]train.Stop, len(raw))
	for number, rows := range raw {
		stops, err := resolveOffsets(rows)
		if err != nil {
			return nil, errs.Wrap(err, "bad route for train "+number)
		}
		stopsByTrain[number] = stops
	}
	return stopsByTrain, nil
}

// resolveOffsets turns clock times into minutes since the origin
// departure, carrying the journey day so times past midnight keep
// increasing.
func resolveOffsets(rows []routeRow) ([]train.Stop, error) {
	if len(rows) == 0 {
		return nil, train.ErrEmptyRoute
	}

	origin, err := clockMinutes(rows[0].departure)
	if err != nil {
		return nil, err
	}

	stops := make([]train.Stop, 0, len(rows))
	for i, row := range rows {
		stop := row.stop

		if i > 0 {
			arr, err := clockMinutes(row.arrival)
			if err != nil {
				return nil, err
			}
			offset := int32(row.day-1)*24*60 + arr - origin
			stop.ArrivalMin = &offset
		}
		if i < len(rows)-1 {
			dep, err := clockMinutes(row.departure)
			if err != nil {
				return nil, err
			}
			offset := int32(row.day-1)*24*60 + dep - origin
			stop.DepartureMin = &offset
		}

		stops = append(stops, stop)
	}
	return stops, nil
}

func clockMinutes(s string) (int32, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Wrap(err, "bad clock time "+s)
	}
	return int32(t.Hour()*60 + t.Minute()), nil
}

func readAll(r io.Reader, fields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read csv feed")
	}
	if len(rows) < 2 {
		return nil, errs.New("csv feed has no data rows")
	}
	return rows[1:], nil // skip header
}
