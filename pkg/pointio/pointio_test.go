package pointio

import (
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

//go:embed testdata
var testdata embed.FS

func TestReadText(t *testing.T) {
	in := `# survey points
1 2
3,4,5

	6	7 8
`
	vs, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []geom.Vertex{geom.V(1, 2), geom.VZ(3, 4, 5), geom.VZ(6, 7, 8)}, vs)
}

func TestReadTextErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("1 2\n3\n"))
	assert.EqualError(t, err, "pointio: line 2: want 2 or 3 coordinates, got 1")

	_, err = ReadText(strings.NewReader("1 2\n\n1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointio: line 3")

	vs, err := ReadText(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, vs)
}

func TestReadSVG(t *testing.T) {
	f, err := testdata.Open("testdata/points.svg")
	require.NoError(t, err)
	defer f.Close()

	vs, err := ReadSVG(f)
	require.NoError(t, err)
	assert.Equal(t, []geom.Vertex{geom.V(10, 10), geom.V(90, 10), geom.V(50, 80), geom.V(50.5, 40)}, vs)

	b := Bounds(vs)
	assert.Equal(t, 10.0, b.X.Lo)
	assert.Equal(t, 90.0, b.X.Hi)
	assert.Equal(t, 10.0, b.Y.Lo)
	assert.Equal(t, 80.0, b.Y.Hi)
}

func TestReadSVGErrors(t *testing.T) {
	_, err := ReadSVG(strings.NewReader(`<svg><circle cx="abc" cy="1"/></svg>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circle 0")

	vs, err := ReadSVG(strings.NewReader(`<svg><rect x="1"/></svg>`))
	assert.NoError(t, err)
	assert.Empty(t, vs)
}
