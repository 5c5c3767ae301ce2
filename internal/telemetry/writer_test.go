package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/population"
)

func report(tick uint64) population.TickReport {
	return population.TickReport{
		Tick:             tick,
		Time:             time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(tick) * 500 * time.Millisecond),
		Ceiling:          7,
		Registered:       5,
		Engageable:       4,
		CulledOutOfRange: 1,
		SpawnAttempted:   true,
		SpawnKind:        model.SpawnVehicle,
		Spawned:          3,
	}
}

func readRecords(t *testing.T, path string) []Record {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []Record
	require.NoError(t, gocsv.UnmarshalFile(f, &out))
	return out
}

func TestNewWriter_Disabled(t *testing.T) {
	w, err := NewWriter("")
	require.NoError(t, err)
	assert.Nil(t, w)

	assert.NoError(t, w.Write("x", report(1)))
	assert.Empty(t, w.Path())
	assert.NoError(t, w.Close())
}

func TestWriter_WritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.NoError(t, w.Write("enc-1", report(1)))
	require.NoError(t, w.Write("enc-1", population.TickReport{Tick: 2}))
	require.NoError(t, w.Close())

	recs := readRecords(t, filepath.Join(dir, FileName))
	require.Len(t, recs, 2)

	assert.Equal(t, "enc-1", recs[0].Encounter)
	assert.Equal(t, uint64(1), recs[0].Tick)
	assert.Equal(t, 7, recs[0].Ceiling)
	assert.Equal(t, "VEHICLE", recs[0].SpawnKind)
	assert.Equal(t, 3, recs[0].Spawned)
	assert.Equal(t, "2024-05-01T12:00:00.5Z", recs[0].Time)

	assert.False(t, recs[1].SpawnAttempted)
	assert.Empty(t, recs[1].SpawnKind, "kind is blank without an attempt")
}

func TestWriter_AppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	for i := range 3 {
		w, err := NewWriter(dir)
		require.NoError(t, err)
		require.NoError(t, w.Write("enc", report(uint64(i))))
		require.NoError(t, w.Close())
	}

	recs := readRecords(t, filepath.Join(dir, FileName))
	require.Len(t, recs, 3)
	for i, r := range recs {
		assert.Equal(t, uint64(i), r.Tick)
	}
}
