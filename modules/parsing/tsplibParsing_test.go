package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInstance(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "instance.tsp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseTSPLIBFile(t *testing.T) {
	path := writeInstance(t, `NAME : att48
COMMENT : 48 capitals of the US (Padberg/Rinaldi)
TYPE : TSP
DIMENSION : 3
EDGE_WEIGHT_TYPE : ATT
NODE_COORD_SECTION
1 6734 1453
2 2233 10
3 5530 1424
EOF
`)

	name, cities, knownOptimal, err := ParseTSPLIBFile(path)
	require.NoError(t, err)

	require.Equal(t, "att48", name)
	require.Equal(t, 10628, knownOptimal)
	require.Len(t, cities, 3)
	require.Equal(t, 2, cities[1].Id)
	require.Equal(t, 2233.0, cities[1].X)
	require.Equal(t, 10.0, cities[1].Y)
}

func TestParseTSPLIBFileRejectsNonAttMetric(t *testing.T) {
	path := writeInstance(t, `NAME : berlin52
TYPE : TSP
DIMENSION : 1
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 565 575
EOF
`)

	_, _, _, err := ParseTSPLIBFile(path)
	require.ErrorContains(t, err, "EUC_2D")
}

func TestParseTSPLIBFileChecksDimension(t *testing.T) {
	path := writeInstance(t, `NAME : broken
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : ATT
NODE_COORD_SECTION
1 0 0
2 1 1
EOF
`)

	_, _, _, err := ParseTSPLIBFile(path)
	require.ErrorContains(t, err, "dimension")
}

func TestParseTSPLIBFileMissingFile(t *testing.T) {
	_, _, _, err := ParseTSPLIBFile(filepath.Join(t.TempDir(), "nope.tsp"))
	require.Error(t, err)
}
