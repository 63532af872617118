// Package scene drives the roadside animation: it owns every entity and
// paints one frame per call to Frame.
package scene

import (
	"github.com/golangdaddy/roadside/pkg/background"
	"github.com/golangdaddy/roadside/pkg/palette"
	"github.com/golangdaddy/roadside/pkg/pedestrian"
	"github.com/golangdaddy/roadside/pkg/road"
	"github.com/golangdaddy/roadside/pkg/sky"
	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/golangdaddy/roadside/pkg/vehicle"
)

// Layer names passed to surface.BeginGroup, in draw order
const (
	LayerSky       = "sky"
	LayerSun       = "sun"
	LayerClouds    = "clouds"
	LayerMountains = "mountains"
	LayerRoad      = "road"
	LayerGround    = "ground"
	LayerCars      = "cars"
	LayerPeople    = "people"
)

// Layers lists every layer in the order Frame paints them
var Layers = []string{
	LayerSky, LayerSun, LayerClouds, LayerMountains,
	LayerRoad, LayerGround, LayerCars, LayerPeople,
}

// Options configures a new Animator
type Options struct {
	Palette palette.Palette
	Sun     sky.SunConfig
}

// DefaultOptions is the stock sunrise
func DefaultOptions() Options {
	return Options{
		Palette: palette.Default(),
		Sun:     sky.DefaultSunConfig,
	}
}

// Stats is a read-only snapshot of the animation
type Stats struct {
	Frame    uint64
	SunY     float64
	SunState sky.SunState
	Clouds   int
	Cars     int
	People   int
}

// Animator owns the scene. Only Frame mutates entity state.
type Animator struct {
	bounds     surface.Bounds
	background *background.Generator
	road       *road.Road
	sun        *sky.Sun
	clouds     []*sky.Cloud
	cars       []*vehicle.Car
	people     []*pedestrian.Person
	frame      uint64
}

// New builds the default scene for a surface of size b
func New(b surface.Bounds, opts Options) *Animator {
	p := opts.Palette
	rd := road.NewRoad(b, p)

	return &Animator{
		bounds:     b,
		background: background.NewGenerator(b, p),
		road:       rd,
		sun:        sky.NewSun(b, opts.Sun, p.Sun),
		clouds:     sky.DefaultClouds(b, p.Cloud),
		cars: vehicle.DefaultCars(b, rd, vehicle.Colors{
			Body:   p.CarBody,
			Window: p.CarWindow,
			Wheel:  p.Wheel,
		}),
		people: pedestrian.DefaultPeople(b, p.Person),
	}
}

// Frame paints the scene on s and advances every moving entity by one step
func (a *Animator) Frame(s surface.Surface) {
	s.Clear()

	surface.BeginGroup(s, LayerSky)
	a.background.DrawSky(s)

	surface.BeginGroup(s, LayerSun)
	a.sun.Draw(s)
	a.sun.Advance()

	surface.BeginGroup(s, LayerClouds)
	for _, c := range a.clouds {
		c.Draw(s)
		c.Advance(a.bounds.Width)
	}

	surface.BeginGroup(s, LayerMountains)
	a.background.DrawMountains(s)

	surface.BeginGroup(s, LayerRoad)
	a.road.Draw(s)

	surface.BeginGroup(s, LayerGround)
	a.background.DrawGround(s)

	surface.BeginGroup(s, LayerCars)
	for _, c := range a.cars {
		c.Draw(s)
		c.Advance(a.bounds.Width)
	}

	surface.BeginGroup(s, LayerPeople)
	for _, p := range a.people {
		p.Draw(s)
		p.Advance(a.bounds.Width)
	}

	a.frame++
}

// Bounds returns the size the scene was laid out for
func (a *Animator) Bounds() surface.Bounds {
	return a.bounds
}

// Stats reports the current frame count and sun position
func (a *Animator) Stats() Stats {
	return Stats{
		Frame:    a.frame,
		SunY:     a.sun.Y,
		SunState: a.sun.State(),
		Clouds:   len(a.clouds),
		Cars:     len(a.cars),
		People:   len(a.people),
	}
}

// Sun exposes the sun for inspection
func (a *Animator) Sun() sky.Sun {
	return *a.sun
}

// Clouds returns copies of the clouds
func (a *Animator) Clouds() []sky.Cloud {
	out := make([]sky.Cloud, len(a.clouds))
	for i, c := range a.clouds {
		out[i] = *c
	}
	return out
}

// Cars returns copies of the cars
func (a *Animator) Cars() []vehicle.Car {
	out := make([]vehicle.Car, len(a.cars))
	for i, c := range a.cars {
		out[i] = *c
	}
	return out
}

// People returns copies of the people
func (a *Animator) People() []pedestrian.Person {
	out := make([]pedestrian.Person, len(a.people))
	for i, p := range a.people {
		out[i] = *p
	}
	return out
}
