package trace

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scroll-room/engine"
)

func frame(seq uint64, t float64, x float64, morphed bool) engine.Frame {
	return engine.Frame{
		Seq:     seq,
		Time:    t,
		Camera:  engine.CameraFrame{View: "door", Progress: t},
		Actors:  []engine.ActorFrame{{Name: "ogre", Position: [3]float64{x, 0, -10}, Morphed: morphed}},
		Ripples: []engine.RippleFrame{{Surface: "wall.back"}},
	}
}

func TestWriterReaderInMemory(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, w.Write(frame(uint64(i+1), float64(i), float64(i), false)))
	}
	assert.Equal(t, 3, w.Count())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.Write(frame(9, 9, 9, false)), ErrClosed)

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	frames, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, uint64(2), frames[1].Seq)
	assert.Equal(t, "ogre", frames[2].Actors[0].Name)
	assert.InDelta(t, 2.0, frames[2].Actors[0].Position[0], 1e-12)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestCreateOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run"+Ext)

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(frame(1, 0, 0, false)))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	f, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "door", f.Camera.View)
}

func TestReaderRejectsGarbage(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	// write a raw line that is not a frame
	_, err = w.w.WriteString("not json\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	assert.ErrorContains(t, err, "trace line 1")
}

func TestSummarize(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(frame(1, 0.5, 0, false)))
	require.NoError(t, w.Write(frame(2, 1.0, 3, false)))
	require.NoError(t, w.Write(frame(3, 1.5, 1, true)))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	s, err := Summarize(r)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Frames)
	assert.InDelta(t, 1.0, s.Duration, 1e-12)
	assert.Equal(t, 3, s.Views["door"])
	assert.Equal(t, 0, s.Ripples)

	require.Len(t, s.Actors, 1)
	a := s.Actors[0]
	assert.InDelta(t, 5.0, a.Distance, 1e-12)
	assert.Equal(t, 0.0, a.MinX)
	assert.Equal(t, 3.0, a.MaxX)
	assert.Equal(t, 1.5, a.MorphedAt)
}
