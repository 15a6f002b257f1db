//go:build unit

package schedule

import (
	"strings"
	"testing"
	"time"

	"railbook/internal/domain/train"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsFixture = `code,name,state
NDLS,New Delhi,Delhi
CNB,Kanpur Central,Uttar Pradesh
GKP,Gorakhpur Jn,Uttar Pradesh
`

const trainsFixture = `number,name,days,classes
12556,GORAKHDHAM EXPRESS,Daily,SL;3A;2A
12910,BANDRA GARIB RATH,Sun;Tue;Thu;Sat,3A
`

const routesFixture = `train_number,seq,station_code,station_name,arrival,departure,distance_km,day
12556,1,NDLS,New Delhi,-,22:30,0,1
12556,2,CNB,Kanpur Central,03:25,03:30,440,2
12556,3,GKP,Gorakhpur Jn,10:15,-,920,2
12910,1,BCT,Mumbai Bandra,-,17:25,0,1
12910,2,NZM,Hazrat Nizamuddin,09:50,-,1367,2
`

func TestParseStations(t *testing.T) {
	stations, err := ParseStations(strings.NewReader(stationsFixture))
	require.NoError(t, err)

	require.Len(t, stations, 3)
	assert.Equal(t, train.Station{Code: "NDLS", Name: "New Delhi", State: "Delhi"}, stations[0])
}

func TestParseTrains(t *testing.T) {
	trains, err := ParseTrains(strings.NewReader(trainsFixture), strings.NewReader(routesFixture))
	require.NoError(t, err)
	require.Len(t, trains, 2)

	byNumber := map[string]*train.Train{}
	for _, tr := range trains {
		byNumber[tr.Number()] = tr
	}

	t.Run("offsets keep increasing past midnight", func(t *testing.T) {
		tr := byNumber["12556"]
		require.NotNil(t, tr)

		at := func(v int32) *int32 { return &v }
		// departs 22:30 on day 1; 03:25 on day 2 is 4h55m later; the
		// terminus has an arrival but no departure
		want := []train.Stop{
			{StationCode: "NDLS", StationName: "New Delhi", DepartureMin: at(0), DistanceKm: 0, Day: 1},
			{StationCode: "CNB", StationName: "Kanpur Central", ArrivalMin: at(295), DepartureMin: at(300), DistanceKm: 440, Day: 2},
			{StationCode: "GKP", StationName: "Gorakhpur Jn", ArrivalMin: at(705), DistanceKm: 920, Day: 2},
		}
		if diff := cmp.Diff(want, tr.Stops()); diff != "" {
			t.Errorf("stops mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("daily and day-list running days", func(t *testing.T) {
		assert.Equal(t, train.RunsDaily, byNumber["12556"].RunningDays())

		garibRath := byNumber["12910"].RunningDays()
		assert.True(t, garibRath.RunsOn(time.Sunday))
		assert.True(t, garibRath.RunsOn(time.Thursday))
		assert.False(t, garibRath.RunsOn(time.Monday))
	})

	t.Run("class codes", func(t *testing.T) {
		assert.Equal(t,
			[]train.Class{train.ClassSleeper, train.ClassThirdAC, train.ClassSecondAC},
			byNumber["12556"].Classes())
	})
}

func TestParseTrains_Errors(t *testing.T) {
	t.Run("train without route rows", func(t *testing.T) {
		orphan := "number,name,days,classes\n99999,GHOST EXPRESS,Daily,SL\n"
		_, err := ParseTrains(strings.NewReader(orphan), strings.NewReader(routesFixture))
		assert.Error(t, err)
	})

	t.Run("unknown day code", func(t *testing.T) {
		bad := "number,name,days,classes\n12556,GORAKHDHAM EXPRESS,Mon;Xyz,SL\n"
		_, err := ParseTrains(strings.NewReader(bad), strings.NewReader(routesFixture))
		assert.Error(t, err)
	})

	t.Run("unknown class code", func(t *testing.T) {
		bad := "number,name,days,classes\n12556,GORAKHDHAM EXPRESS,Daily,SL;9X\n"
		_, err := ParseTrains(strings.NewReader(bad), strings.NewReader(routesFixture))
		assert.Error(t, err)
	})

	t.Run("malformed clock time", func(t *testing.T) {
		badRoutes := "train_number,seq,station_code,station_name,arrival,departure,distance_km,day\n" +
			"12556,1,NDLS,New Delhi,-,25:99,0,1\n" +
			"12556,2,GKP,Gorakhpur Jn,10:15,-,920,2\n"
		_, err := ParseTrains(strings.NewReader(trainsFixture), strings.NewReader(badRoutes))
		assert.Error(t, err)
	})
}

func TestEmbeddedTimetable(t *testing.T) {
	stations, err := ParseStations(strings.NewReader(string(stationsCSV)))
	require.NoError(t, err)
	assert.NotEmpty(t, stations)

	trains, err := ParseTrains(
		strings.NewReader(string(trainsCSV)),
		strings.NewReader(string(routesCSV)),
	)
	require.NoError(t, err)
	require.NotEmpty(t, trains)

	codes := map[string]bool{}
	for _, s := range stations {
		codes[s.Code] = true
	}
	for _, tr := range trains {
		require.GreaterOrEqual(t, len(tr.Stops()), 2, "train %s", tr.Number())
		for _, stop := range tr.Stops() {
			assert.True(t, codes[stop.StationCode],
				"train %s stop %s missing from station catalog", tr.Number(), stop.StationCode)
		}
	}
}
