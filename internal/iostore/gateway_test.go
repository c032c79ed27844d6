package iostore

import (
	"context"
	"testing"

	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/config"
	"github.com/railcat/railcat/pkg/errcode"
	"github.com/railcat/railcat/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ store.Gateway = (*sqliteGateway)(nil)

// openMemory returns a connected gateway over an in-memory store with
// the schema in place.
func openMemory(t *testing.T) *sqliteGateway {
	t.Helper()
	g := &sqliteGateway{}
	ctx := context.Background()
	cfg := &config.StoreConfig{Path: ":memory:", BusyTimeout: 1000}
	require.NoError(t, g.Connect(ctx, cfg))
	t.Cleanup(func() { g.Close() })
	require.NoError(t, g.PrepareSchema(ctx))
	return g
}

func express() catalogue.Train {
	return catalogue.Train{
		ID: 1001, Name: "Express_101", Speed: 160, Capacity: 400,
		WagonCount: 8, StartStation: "Warsaw Central",
		EndStation: "Krakow Main",
	}
}

func routeWK() catalogue.Route {
	return catalogue.Route{
		Departure: catalogue.Clock{Hour: 8, Minute: 30},
		Arrival:   catalogue.Clock{Hour: 11, Minute: 45},
		Duration:  195,
		Stops: []string{
			"Warsaw Central", "Lodz Widzew", "Czestochowa", "Krakow Main",
		},
	}
}

func TestNotConnected(t *testing.T) {
	g := &sqliteGateway{}
	ctx := context.Background()

	err := g.PrepareSchema(ctx)
	assert.Equal(t, errcode.StoreNotConnectedError, catalogue.Kind(err))

	_, err = g.LoadTrains(ctx)
	assert.Equal(t, errcode.StoreNotConnectedError, catalogue.Kind(err))

	err = g.SaveStation(ctx, catalogue.Station{Name: "A", PlatformCount: 1})
	assert.Equal(t, errcode.StoreNotConnectedError, catalogue.Kind(err))

	assert.NoError(t, g.Close(), "Close without Connect is a no-op")
}

func TestConnectClose(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()

	// second Connect keeps the handle
	db := g.db
	require.NoError(t, g.Connect(ctx, &config.StoreConfig{Path: ":memory:"}))
	assert.Same(t, db, g.db)

	// schema creation is idempotent
	assert.NoError(t, g.PrepareSchema(ctx))

	assert.NoError(t, g.Close())
	assert.NoError(t, g.Close())
	_, err := g.LoadStations(ctx)
	assert.Equal(t, errcode.StoreNotConnectedError, catalogue.Kind(err))
}

func TestTrains(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		tr := express()
		require.NoError(t, g.SaveTrain(ctx, tr))
		res, err := g.GetTrainByID(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, tr, res)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		tr := express()
		tr.Name = "Express_102"
		tr.StartStation = ""
		require.NoError(t, g.SaveTrain(ctx, tr))

		trains, err := g.LoadTrains(ctx)
		require.NoError(t, err)
		require.Len(t, trains, 1)
		assert.Equal(t, "Express_102", trains[0].Name)
		assert.Empty(t, trains[0].StartStation)
	})

	t.Run("clamps numeric columns", func(t *testing.T) {
		_, err := g.db.Exec(`INSERT INTO trains
      (id, name, speed, capacity, wagon_count) VALUES (7, 'Old', 0, -3, 0)`)
		require.NoError(t, err)
		res, err := g.GetTrainByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Speed)
		assert.Equal(t, 1, res.Capacity)
		assert.Equal(t, 1, res.WagonCount)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := g.GetTrainByID(ctx, 9999)
		assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))
		err = g.DeleteTrain(ctx, 9999)
		assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, g.DeleteTrain(ctx, 7))
		_, err := g.GetTrainByID(ctx, 7)
		assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))
	})
}

func TestSaveTrainWithStations(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()

	require.NoError(t, g.SaveStation(ctx,
		catalogue.Station{Name: "Warsaw Central", PlatformCount: 5}))

	stations := []catalogue.Station{
		{Name: "WARSAW CENTRAL", PlatformCount: 1},
		{Name: "Krakow Main", PlatformCount: 1},
	}
	require.NoError(t, g.SaveTrainWithStations(ctx, express(), stations))

	res, err := g.LoadStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalogue.Station{
		{Name: "Krakow Main", PlatformCount: 1},
		{Name: "Warsaw Central", PlatformCount: 5},
	}, res)

	_, err = g.GetTrainByID(ctx, 1001)
	assert.NoError(t, err)
}

func TestStations(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()

	require.NoError(t, g.SaveStation(ctx,
		catalogue.Station{Name: "Łódź Fabryczna", PlatformCount: 4}))

	tests := []struct {
		msg, name string
	}{
		{"same", "Łódź Fabryczna"},
		{"upper", "ŁÓDŹ FABRYCZNA"},
		{"spaces", "  łódź   fabryczna "},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			s, err := g.GetStationByName(ctx, v.name)
			require.NoError(t, err)
			assert.Equal(t, "Łódź Fabryczna", s.Name)

			err = g.SaveStation(ctx,
				catalogue.Station{Name: v.name, PlatformCount: 2})
			assert.Equal(t, errcode.DuplicateError, catalogue.Kind(err))
		})
	}

	c, err := g.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Stations)

	err = g.DeleteStation(ctx, "Nowhere")
	assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))

	require.NoError(t, g.DeleteStation(ctx, "łódź fabryczna"))
	_, err = g.GetStationByName(ctx, "Łódź Fabryczna")
	assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))
}

func TestRoutes(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()
	r := routeWK()

	require.NoError(t, g.SaveRoute(ctx, r))

	t.Run("load keeps stop order", func(t *testing.T) {
		routes, err := g.LoadRoutes(ctx)
		require.NoError(t, err)
		require.Len(t, routes, 1)
		assert.Equal(t, "Warsaw Central_to_Krakow Main", routes[0].Identifier)
		assert.Equal(t, r.Stops, routes[0].Stops)
		assert.Equal(t, 195, routes[0].Duration)
		assert.Equal(t, r.Departure, routes[0].Departure)
		assert.Equal(t, r.Arrival, routes[0].Arrival)
	})

	t.Run("get by endpoints", func(t *testing.T) {
		res, err := g.GetRoute(ctx, []string{"warsaw central", "KRAKOW MAIN"})
		require.NoError(t, err)
		assert.Equal(t, r.Stops, res.Stops)

		_, err = g.GetRoute(ctx, []string{"A", "B"})
		assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))
	})

	t.Run("shared endpoints collide", func(t *testing.T) {
		other := r
		other.Stops = []string{"Warsaw Central", "Radom", "Krakow Main"}
		err := g.SaveRoute(ctx, other)
		assert.Equal(t, errcode.DuplicateError, catalogue.Kind(err))

		c, err := g.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Routes)
		assert.Equal(t, 4, c.RouteStops)
	})

	t.Run("too few stops", func(t *testing.T) {
		short := r
		short.Stops = []string{"Warsaw Central"}
		err := g.SaveRoute(ctx, short)
		assert.Equal(t, errcode.ValidationError, catalogue.Kind(err))
	})
}

func TestSaveAssignedRoute(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()
	r := routeWK()

	err := g.SaveAssignedRoute(ctx, r, 1001)
	assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))

	c, err := g.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalogue.Counts{}, c, "failed write leaves no rows")

	require.NoError(t, g.SaveTrain(ctx, express()))
	require.NoError(t, g.SaveAssignedRoute(ctx, r, 1001))

	ids, err := g.GetTrainsForRoute(ctx, r.Stops)
	require.NoError(t, err)
	assert.Equal(t, []int{1001}, ids)

	routes, err := g.GetRoutesForTrain(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, [][]string{r.Stops}, routes)
}

func TestAssignments(t *testing.T) {
	g := openMemory(t)
	ctx := context.Background()
	r := routeWK()

	require.NoError(t, g.SaveRoute(ctx, r))
	require.NoError(t, g.SaveTrain(ctx, express()))
	tr := express()
	tr.ID = 1002
	require.NoError(t, g.SaveTrain(ctx, tr))

	err := g.AssignTrainToRoute(ctx, 9999, r.Stops)
	assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))
	err = g.AssignTrainToRoute(ctx, 1001, []string{"A", "B"})
	assert.Equal(t, errcode.NotFoundError, catalogue.Kind(err))

	require.NoError(t, g.AssignTrainToRoute(ctx, 1002, r.Stops))
	require.NoError(t, g.AssignTrainToRoute(ctx, 1001, r.Stops))
	require.NoError(t, g.AssignTrainToRoute(ctx, 1001, r.Stops))

	ids, err := g.GetTrainsForRoute(ctx, r.Stops)
	require.NoError(t, err)
	assert.Equal(t, []int{1001, 1002}, ids)

	ids, err = g.GetTrainsForRoute(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Empty(t, ids)

	as, err := g.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, as, 2)
	assert.Equal(t, "Warsaw Central_to_Krakow Main", as[0].RouteID)

	// deleting a train drops its links
	require.NoError(t, g.DeleteTrain(ctx, 1002))
	ids, err = g.GetTrainsForRoute(ctx, r.Stops)
	require.NoError(t, err)
	assert.Equal(t, []int{1001}, ids)

	routes, err := g.GetRoutesForTrain(ctx, 1002)
	require.NoError(t, err)
	assert.Empty(t, routes)
}
