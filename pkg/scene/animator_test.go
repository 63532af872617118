package scene

import (
	"testing"

	"github.com/golangdaddy/roadside/pkg/pedestrian"
	"github.com/golangdaddy/roadside/pkg/sky"
	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/golangdaddy/roadside/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnimator() (*Animator, *surface.Recorder) {
	rec := surface.NewRecorder(800, 600)
	return New(rec.Bounds(), DefaultOptions()), rec
}

func TestFrame_LayerOrder(t *testing.T) {
	a, rec := newTestAnimator()
	a.Frame(rec)

	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, surface.OpClear, rec.Ops[0].Kind)
	assert.Equal(t, append([]string{""}, Layers...), rec.Groups())

	// Only the clear happens outside a layer
	assert.Len(t, rec.InGroup(""), 1)
}

func TestFrame_DrawsEachThingOnce(t *testing.T) {
	a, rec := newTestAnimator()
	a.Frame(rec)

	tests := []struct {
		layer string
		ops   int
	}{
		{LayerSky, 1},
		{LayerSun, 1 + 24},   // disc and flares
		{LayerClouds, 3 + 3}, // three blobs per cloud
		{LayerMountains, 1},  // one polygon
		{LayerRoad, 1 + 14},  // asphalt and markings
		{LayerGround, 1},     // strip
		{LayerCars, 2 * 5},   // body, roof, window, two wheels
		{LayerPeople, 2 * 3}, // head, torso, legs
	}
	for _, tt := range tests {
		t.Run(tt.layer, func(t *testing.T) {
			assert.Len(t, rec.InGroup(tt.layer), tt.ops)
		})
	}
}

func TestFrame_DrawsBeforeAdvancing(t *testing.T) {
	a, rec := newTestAnimator()
	a.Frame(rec)

	// The first car is painted at its start position and moved afterwards
	cars := rec.InGroup(LayerCars)
	assert.Equal(t, []float64{0, 520, 50, 20}, cars[0].Args)
	assert.Equal(t, 2.0, a.Cars()[0].X)

	// The sun disc is painted on the bottom edge, then climbs
	assert.Equal(t, []float64{400, 600, 50}, rec.InGroup(LayerSun)[0].Args)
	assert.Equal(t, 599.5, a.Sun().Y)

	people := rec.InGroup(LayerPeople)
	assert.Equal(t, []float64{50, 580, 5}, people[0].Args)
	assert.Equal(t, 51.0, a.People()[0].X)

	assert.Equal(t, uint64(1), a.Stats().Frame)
}

func TestFrame_PositionsStayBounded(t *testing.T) {
	a, rec := newTestAnimator()
	w := a.Bounds().Width

	for i := 0; i < 3000; i++ {
		rec.Reset()
		a.Frame(rec)

		for _, c := range a.Clouds() {
			require.GreaterOrEqual(t, c.X, -sky.CloudMargin)
			require.LessOrEqual(t, c.X, w+sky.CloudMargin)
		}
		for _, c := range a.Cars() {
			require.GreaterOrEqual(t, c.X, -vehicle.CarMargin)
			require.LessOrEqual(t, c.X, w+vehicle.CarMargin)
			require.Contains(t, []float64{520, 550}, c.Y)
		}
		for _, p := range a.People() {
			require.GreaterOrEqual(t, p.X, -pedestrian.PersonMargin)
			require.LessOrEqual(t, p.X, w+pedestrian.PersonMargin)
		}
	}
}

func TestFrame_SunParksOnce(t *testing.T) {
	a, rec := newTestAnimator()

	var parkedAt uint64
	prevY := a.Sun().Y
	for i := 0; i < 1500; i++ {
		rec.Reset()
		a.Frame(rec)

		st := a.Stats()
		assert.LessOrEqual(t, st.SunY, prevY)
		if st.SunState == sky.Parked && parkedAt == 0 {
			parkedAt = st.Frame
		}
		if parkedAt != 0 {
			assert.Equal(t, sky.Parked, st.SunState)
		}
		prevY = st.SunY
	}

	assert.Equal(t, uint64(1000), parkedAt)
	assert.Equal(t, 100.0, a.Sun().Y)
}

func TestFrame_ExpandedFlaresOnceParked(t *testing.T) {
	a, rec := newTestAnimator()
	for i := 0; i < 1000; i++ {
		a.Frame(rec)
	}

	rec.Reset()
	a.Frame(rec)

	// The first flare starts on the rim and reaches radius+50
	flare := rec.InGroup(LayerSun)[1]
	assert.InDelta(t, 450, flare.Args[1], 1e-9)
	assert.InDelta(t, 500, flare.Args[3], 1e-9)
}

func TestStats(t *testing.T) {
	a, _ := newTestAnimator()
	st := a.Stats()

	assert.Equal(t, Stats{
		Frame:    0,
		SunY:     600,
		SunState: sky.Rising,
		Clouds:   2,
		Cars:     2,
		People:   2,
	}, st)
}

func TestCarScenario(t *testing.T) {
	a, rec := newTestAnimator()

	// A right-bound car past the edge re-enters on the left in the upper lane
	a.cars[0].X = 810
	a.cars[0].Y = 550
	a.Frame(rec)
	assert.Equal(t, -50.0, a.Cars()[0].X)
	assert.Equal(t, 520.0, a.Cars()[0].Y)

	// A left-bound car past the margin re-enters on the right in the lower lane
	a.cars[1].X = -49
	a.cars[1].Y = 520
	a.Frame(rec)
	assert.Equal(t, 800.0, a.Cars()[1].X)
	assert.Equal(t, 550.0, a.Cars()[1].Y)
}

func TestPersonScenario(t *testing.T) {
	a, rec := newTestAnimator()

	a.people[0].X = 805
	a.Frame(rec)
	assert.Equal(t, -20.0, a.People()[0].X)
}
