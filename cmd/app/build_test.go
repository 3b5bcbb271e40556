package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildFlags(t *testing.T, in, png, geojson string, imgcat bool) {
	t.Helper()
	saved := []interface{}{*input, *pngOut, *geojsonOut, *showImage, *width, *height}
	*input, *pngOut, *geojsonOut, *showImage = in, png, geojson, imgcat
	*width, *height = 200, 200
	t.Cleanup(func() {
		*input = saved[0].(string)
		*pngOut = saved[1].(string)
		*geojsonOut = saved[2].(string)
		*showImage = saved[3].(bool)
		*width = saved[4].(int)
		*height = saved[5].(int)
	})
}

func writePoints(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1\n9 1\n5 9\n5 4 7\n"), 0o644))
	return path
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "tin.png")
	geo := filepath.Join(dir, "tin.geojson")
	setBuildFlags(t, writePoints(t, dir), png, geo, false)

	require.NoError(t, build())

	for _, path := range []string{png, geo} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
	raw, err := os.ReadFile(geo)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"FeatureCollection"`)
}

func TestBuildReportsPreviewFailure(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "missing", "tin.png")
	setBuildFlags(t, writePoints(t, dir), png, "", true)

	err := build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imgcat "+png)
}
