package pajek

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/timetable-to-network/network"
)

func netOf(vertices []string, edges map[network.EdgeKey]*network.EdgeStats) *network.Network {
	n := &network.Network{
		Vertices: map[string]struct{}{},
		Edges:    edges,
	}
	for _, v := range vertices {
		n.Vertices[v] = struct{}{}
	}
	return n
}

func TestWriteVertexNumbering(t *testing.T) {
	n := netOf([]string{"ZZZ", "AAA", "MMM"}, map[network.EdgeKey]*network.EdgeStats{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, n, ModeDSN))

	assert.Equal(t, "*Vertices 3\n1 \"AAA\"\n2 \"MMM\"\n3 \"ZZZ\"\n*Arcs 0\n", buf.String())
}

func TestWriteDSN(t *testing.T) {
	n := netOf([]string{"AAA", "BBB", "CCC"}, map[network.EdgeKey]*network.EdgeStats{
		{Source: "BBB", Target: "AAA"}: {DSN: 2},
		{Source: "AAA", Target: "CCC"}: {DSN: 5, DTSum: 300, DTCount: 1},
		{Source: "AAA", Target: "BBB"}: {DSN: 1},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, n, ModeDSN))

	want := "*Vertices 3\n" +
		"1 \"AAA\"\n" +
		"2 \"BBB\"\n" +
		"3 \"CCC\"\n" +
		"*Arcs 3\n" +
		"1 2 1\n" +
		"1 3 5\n" +
		"2 1 2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDTN(t *testing.T) {
	t.Run("mean of one minute weighs 1.00", func(t *testing.T) {
		n := netOf([]string{"AAA", "BBB"}, map[network.EdgeKey]*network.EdgeStats{
			{Source: "AAA", Target: "BBB"}: {DSN: 2, DTSum: 120, DTCount: 2},
		})

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, n, ModeDTN))
		assert.Contains(t, buf.String(), "1 2 1.00\n")
	})

	t.Run("edge without samples weighs 0.00", func(t *testing.T) {
		n := netOf([]string{"AAA", "BBB"}, map[network.EdgeKey]*network.EdgeStats{
			{Source: "AAA", Target: "BBB"}: {DSN: 4},
		})

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, n, ModeDTN))
		assert.Contains(t, buf.String(), "1 2 0.00\n")
	})

	t.Run("weights are fixed to two decimals", func(t *testing.T) {
		// mean 3 minutes -> 1/3
		n := netOf([]string{"AAA", "BBB"}, map[network.EdgeKey]*network.EdgeStats{
			{Source: "AAA", Target: "BBB"}: {DSN: 1, DTSum: 180, DTCount: 1},
		})

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, n, ModeDTN))
		assert.Contains(t, buf.String(), "1 2 0.33\n")
	})
}

func TestWriteEmptyNetwork(t *testing.T) {
	n := netOf(nil, map[network.EdgeKey]*network.EdgeStats{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, n, ModeDTN))
	assert.Equal(t, "*Vertices 0\n*Arcs 0\n", buf.String())
}

func TestWriteDeterminism(t *testing.T) {
	n := netOf([]string{"AAA", "BBB", "CCC", "DDD"}, map[network.EdgeKey]*network.EdgeStats{
		{Source: "AAA", Target: "BBB"}: {DSN: 1, DTSum: 60, DTCount: 1},
		{Source: "BBB", Target: "CCC"}: {DSN: 2, DTSum: 240, DTCount: 2},
		{Source: "CCC", Target: "DDD"}: {DSN: 3},
		{Source: "AAA", Target: "DDD"}: {DSN: 1, DTSum: 600, DTCount: 1},
		{Source: "DDD", Target: "AAA"}: {DSN: 4},
	})

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, n, ModeDTN))
	require.NoError(t, Write(&second, n, ModeDTN))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteUnknownMode(t *testing.T) {
	n := netOf(nil, map[network.EdgeKey]*network.EdgeStats{})
	var buf bytes.Buffer
	err := Write(&buf, n, Mode("weights"))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"dsn", "dtn"} {
		_, err := ParseMode(valid)
		assert.NoError(t, err)
	}
	_, err := ParseMode("DSN")
	assert.Error(t, err)
}
