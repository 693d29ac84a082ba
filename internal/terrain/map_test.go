package terrain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapAt(t *testing.T) {
	m := generate(t, smallConfig("view"))
	_, ok := m.At(-1, 0)
	require.False(t, ok)
	_, ok = m.At(0, m.Size())
	require.False(t, ok)

	c, ok := m.At(0, 0)
	require.True(t, ok)
	require.Equal(t, "Salt Water", c.Name)
	require.Equal(t, "~", c.Symbol)
	require.Equal(t, SaltWater.Colour(), c.Colour)
	require.Equal(t, SaltWater.Colour(), c.ElevationColour)
	require.Equal(t, "view", m.Seed())
}

func TestMapEachRowMajor(t *testing.T) {
	m := generate(t, smallConfig("order"))
	i := 0
	m.Each(func(x, y int, _ CellView) {
		require.Equal(t, i%m.Size(), x)
		require.Equal(t, i/m.Size(), y)
		i++
	})
	require.Equal(t, m.Size()*m.Size(), i)
}

func TestSnapshotRestore(t *testing.T) {
	m := generate(t, smallConfig("restore"))
	snap := m.Snapshot()

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	back, err := Restore(decoded)
	require.NoError(t, err)
	require.Equal(t, snap, back.Snapshot())
	require.Equal(t, m.Kinds(), back.Kinds())
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	good := generate(t, smallConfig("reject")).Snapshot()

	cases := map[string]func(*Snapshot){
		"size":      func(s *Snapshot) { s.Size = 0 },
		"length":    func(s *Snapshot) { s.Moisture = s.Moisture[:3] },
		"kind":      func(s *Snapshot) { s.Kinds[5] = Kind(99) },
		"elevation": func(s *Snapshot) { s.Elevation[2] = 0 },
		"moisture":  func(s *Snapshot) { s.Moisture[2] = 7 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := good
			s.Kinds = append([]Kind(nil), good.Kinds...)
			s.Elevation = append([]uint8(nil), good.Elevation...)
			s.Moisture = append([]uint8(nil), good.Moisture...)
			mutate(&s)
			_, err := Restore(s)
			require.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}
