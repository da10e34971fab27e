package render_test

import (
	"bytes"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/render"
	"github.com/katalvlaran/citynav/search"
)

func TestGeoJSON_Roles(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())
	res, err := search.AStar(g, "Casa", "Parque")
	require.NoError(t, err)

	fc, err := render.GeoJSON(g, "Casa", "Parque", res.Path)
	require.NoError(t, err)
	// 9 locations + 11 streets + 1 route line
	require.Len(t, fc.Features, 21)

	roles := make(map[string]string)
	var streetsOnPath int
	for _, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.Point:
			roles[f.Properties.MustString("name")] = f.Properties.MustString("role")
		case orb.LineString:
			if f.Properties.MustString("role", "") == render.RoleRoute {
				assert.Len(t, geom, 4)
				assert.InDelta(t, res.Cost, f.Properties.MustFloat64("cost"), 1e-12)
				continue
			}
			if f.Properties.MustBool("on_path") {
				streetsOnPath++
			}
		}
	}
	assert.Equal(t, res.Hops(), streetsOnPath)
	assert.Equal(t, render.RoleOrigin, roles["Casa"])
	assert.Equal(t, render.RoleDestination, roles["Parque"])
	assert.Equal(t, render.RolePath, roles["Mercado"])
	assert.Equal(t, render.RolePath, roles["Banco"])
	assert.Equal(t, render.RoleLocation, roles["Hospital"])

	assert.Equal(t, geojson.BBox{1, 1, 8, 7}, fc.BBox)
}

func TestGeoJSON_NoRoute(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())

	fc, err := render.GeoJSON(g, "", "", nil)
	require.NoError(t, err)
	require.Len(t, fc.Features, 20)
	for _, f := range fc.Features {
		if _, ok := f.Geometry.(orb.Point); ok {
			assert.Equal(t, render.RoleLocation, f.Properties.MustString("role"))
		} else {
			assert.False(t, f.Properties.MustBool("on_path"))
		}
	}
}

func TestGeoJSON_Errors(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())

	_, err := render.GeoJSON(nil, "", "", nil)
	require.ErrorIs(t, err, render.ErrNilGraph)
	_, err = render.GeoJSON(g, "Casa", "Atlantis", []string{"Casa", "Atlantis"})
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = render.GeoJSON(g, "Casa", "Parque", []string{"Casa", "Parque"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestWriteGeoJSON_RoundTrip(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())
	path := []string{"Escola", "Farmacia", "Centro"}

	var buf bytes.Buffer
	require.NoError(t, render.WriteGeoJSON(&buf, g, "Escola", "Centro", path))
	assert.Contains(t, buf.String(), `"type": "FeatureCollection"`)

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 21)

	last := fc.Features[len(fc.Features)-1]
	assert.Equal(t, render.RoleRoute, last.Properties.MustString("role"))
	assert.Equal(t, 2, last.Properties.MustInt("hops"))
}
