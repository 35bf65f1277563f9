package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/prayer"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd("test")

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["next"])
	assert.True(t, names["mosques"])
	assert.True(t, names["methods"])
}

func TestResolveFlagsDefaults(t *testing.T) {
	root := NewRootCmd("test")
	require.NoError(t, root.ParseFlags(nil))

	coord, method, loc, clockFace, err := resolveFlags(root)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultCoordinate, coord)
	assert.Equal(t, prayer.MWL, method)
	assert.NotNil(t, loc)
	assert.Equal(t, "3:04 PM", clockFace)
}

func TestResolveFlagsExplicit(t *testing.T) {
	root := NewRootCmd("test")
	require.NoError(t, root.ParseFlags([]string{
		"--lat", "21.4225", "--lon", "39.8262",
		"--method", "Makkah",
		"--timezone", "Asia/Riyadh",
		"--time-format", "24h",
	}))

	coord, method, loc, clockFace, err := resolveFlags(root)
	require.NoError(t, err)

	assert.Equal(t, 21.4225, coord.Latitude)
	assert.Equal(t, prayer.Makkah, method)
	assert.Equal(t, "Asia/Riyadh", loc.String())
	assert.Equal(t, "15:04", clockFace)
}

func TestResolveFlagsRejectsLoneLatitude(t *testing.T) {
	root := NewRootCmd("test")
	require.NoError(t, root.ParseFlags([]string{"--lat", "24.86"}))

	_, _, _, _, err := resolveFlags(root)
	assert.Error(t, err)
}

func TestResolveFlagsRejectsUnknownMethod(t *testing.T) {
	root := NewRootCmd("test")
	require.NoError(t, root.ParseFlags([]string{"--method", "Atlantis"}))

	_, _, _, _, err := resolveFlags(root)
	assert.Error(t, err)
}
