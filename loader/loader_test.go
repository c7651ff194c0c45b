// SPDX-License-Identifier: MIT

package loader_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/loader"
	"github.com/katalvlaran/subway/path"
	"github.com/katalvlaran/subway/station"
)

func TestLoad_Network(t *testing.T) {
	n, err := loader.Load(filepath.Join("testdata", "network.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7, n.Stations.Len())
	require.Len(t, n.Lines, 4)

	shinbundang, ok := n.Line(1)
	require.True(t, ok)
	assert.Equal(t, "Shinbundang", shinbundang.Name())
	assert.Equal(t, "bg-red-600", shinbundang.Color())
	assert.Equal(t, []int64{1, 2, 3}, station.IDs(shinbundang.Stations()))

	_, ok = n.Line(2)
	assert.False(t, ok)

	from, err := n.Stations.Get(1)
	require.NoError(t, err)
	to, err := n.Stations.Get(5)
	require.NoError(t, err)

	res, err := path.NewFinder().FindPath(from, to, n.Sources()...)
	require.NoError(t, err)
	assert.Equal(t, int64(70), res.Distance)
	assert.Equal(t, []string{"Sinnonhyeon", "Gangnam", "Yangjae", "Dogok", "Seolleung"}, station.Names(res.Stations))

	moran, err := n.Stations.Get(6)
	require.NoError(t, err)
	_, err = path.NewFinder().FindPath(from, moran, n.Sources()...)
	require.ErrorIs(t, err, path.ErrDisconnected)
}

func TestLoad_MissingFile(t *testing.T) {
	p := filepath.Join("testdata", "absent.yaml")
	_, err := loader.Load(p)
	require.ErrorIs(t, err, loader.ErrRead)

	var le *loader.Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, loader.OpLoad, le.Op)
	assert.Equal(t, p, le.Path)
}

func TestLoad_InvalidFields(t *testing.T) {
	p := filepath.Join("testdata", "invalid_fields.yaml")
	_, err := loader.Load(p)
	require.ErrorIs(t, err, loader.ErrInvalidDocument)

	msg := err.Error()
	assert.Contains(t, msg, p)
	assert.Contains(t, msg, "stations[1].id is required")
	assert.Contains(t, msg, "stations[1].name is required")
	assert.Contains(t, msg, "lines[0].sections[0].down must differ from up")
	assert.Contains(t, msg, "lines[0].sections[0].distance must be greater than 0")
}

func TestLoad_BrokenChain(t *testing.T) {
	_, err := loader.Load(filepath.Join("testdata", "broken_chain.yaml"))
	require.ErrorIs(t, err, line.ErrChainExtension)
	assert.Contains(t, err.Error(), "lines[0]: sections[1]")
}

func TestParse_Errors(t *testing.T) {
	_, err := loader.Parse([]byte("stations: [\n"), "inline")
	require.ErrorIs(t, err, loader.ErrDecode)

	_, err = loader.Parse([]byte("lines: []\n"), "")
	require.ErrorIs(t, err, loader.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "stations is required")

	doc := `
stations:
  - {id: 1, name: A}
  - {id: 1, name: B}
`
	_, err = loader.Parse([]byte(doc), "")
	require.ErrorIs(t, err, station.ErrDuplicateID)

	doc = `
stations:
  - {id: 1, name: A}
  - {id: 2, name: B}
lines:
  - {id: 1, name: X, sections: [{up: 1, down: 2, distance: 1}]}
  - {id: 1, name: Y, sections: [{up: 2, down: 1, distance: 1}]}
`
	_, err = loader.Parse([]byte(doc), "")
	require.ErrorIs(t, err, loader.ErrDuplicateLine)

	doc = `
stations:
  - {id: 1, name: A}
lines:
  - {id: 1, name: X, sections: [{up: 1, down: 9, distance: 1}]}
`
	_, err = loader.Parse([]byte(doc), "")
	require.ErrorIs(t, err, station.ErrStationNotFound)
}

func TestMap_StationsOnly(t *testing.T) {
	n, err := loader.Map(loader.YAMLNetwork{
		Stations: []loader.YAMLStation{{ID: 1, Name: "A"}},
	})
	require.NoError(t, err)
	assert.Empty(t, n.Lines)
	assert.Empty(t, n.Sources())
}
