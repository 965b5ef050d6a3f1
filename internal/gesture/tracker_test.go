package gesture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gesnake/internal/core"
)

// scriptedSource replays a fixed list of frames, then ends with err.
type scriptedSource struct {
	frames    []*HandLandmarks
	err       error
	cancel    context.CancelFunc
	closed    bool
	annotated []core.Gesture
}

func (s *scriptedSource) Next(ctx context.Context) (*HandLandmarks, error) {
	if len(s.frames) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		s.cancel()
		return nil, nil
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, nil
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

func (s *scriptedSource) Annotate(_ *HandLandmarks, g core.Gesture) {
	s.annotated = append(s.annotated, g)
}

func hand(tipX, tipY float64) *HandLandmarks {
	var h HandLandmarks
	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.5}
	h.Points[IndexTip] = Point3D{X: tipX, Y: tipY}
	return &h
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestTrackerPublishesLatestGesture(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &scriptedSource{
		frames: []*HandLandmarks{
			hand(0.5, 0.2), // up
			nil,            // dropped frame
			hand(0.5, 0.5), // dead zone
			hand(0.8, 0.5), // left
		},
		cancel: cancel,
	}
	shared := NewShared()
	tr := NewTracker(shared, DefaultThreshold, quietLogger())

	err := tr.Run(ctx, func() (Source, error) { return src, nil })
	require.NoError(t, err)

	assert.Equal(t, core.GestureLeft, shared.Latest())
	assert.Equal(t, 2, shared.Changes())
	assert.True(t, src.closed)
	assert.Equal(t, []core.Gesture{
		core.GestureUp, core.GestureNone, core.GestureNone, core.GestureLeft, core.GestureNone,
	}, src.annotated)
}

func TestTrackerCameraOpenFailure(t *testing.T) {
	shared := NewShared()
	tr := NewTracker(shared, DefaultThreshold, quietLogger())

	cause := fmt.Errorf("no device 0: %w", ErrCameraOpen)
	err := tr.Run(context.Background(), func() (Source, error) { return nil, cause })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCameraOpen)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, core.GestureNone, shared.Latest())
}

func TestTrackerModelLoadFailureIsNotCameraFailure(t *testing.T) {
	shared := NewShared()
	tr := NewTracker(shared, DefaultThreshold, quietLogger())

	cause := errors.New("load model: hand_landmark.onnx not found")
	err := tr.Run(context.Background(), func() (Source, error) { return nil, cause })

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrCameraOpen)
}

func TestTrackerQuit(t *testing.T) {
	src := &scriptedSource{frames: []*HandLandmarks{hand(0.5, 0.8)}, err: ErrQuit}
	shared := NewShared()
	tr := NewTracker(shared, DefaultThreshold, quietLogger())

	err := tr.Run(context.Background(), func() (Source, error) { return src, nil })

	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, core.GestureDown, shared.Latest())
	assert.True(t, src.closed)
}

func TestTrackerDetectorError(t *testing.T) {
	boom := errors.New("session run failed")
	src := &scriptedSource{err: boom}
	tr := NewTracker(NewShared(), DefaultThreshold, quietLogger())

	err := tr.Run(context.Background(), func() (Source, error) { return src, nil })

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCameraOpen)
	assert.True(t, src.closed)
}

func TestTrackerStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &scriptedSource{frames: []*HandLandmarks{hand(0.5, 0.2)}}
	shared := NewShared()
	tr := NewTracker(shared, DefaultThreshold, quietLogger())

	require.NoError(t, tr.Run(ctx, func() (Source, error) { return src, nil }))
	assert.Equal(t, core.GestureNone, shared.Latest(), "no frame should be read after cancel")
}

func TestSharedIgnoresNone(t *testing.T) {
	s := NewShared()

	assert.False(t, s.Set(core.GestureNone))
	assert.True(t, s.Set(core.GestureUp))
	assert.False(t, s.Set(core.GestureUp))
	assert.False(t, s.Set(core.GestureNone))
	assert.Equal(t, core.GestureUp, s.Latest())
	assert.Equal(t, 1, s.Changes())

	s.Reset()
	assert.Equal(t, core.GestureNone, s.Latest())
	assert.Equal(t, 0, s.Changes())
}

func TestSharedConcurrentAccess(t *testing.T) {
	s := NewShared()
	gestures := []core.Gesture{core.GestureUp, core.GestureDown, core.GestureLeft, core.GestureRight}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Set(gestures[i%len(gestures)])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.Latest()
		}
	}()
	wg.Wait()

	assert.Equal(t, core.GestureRight, s.Latest())
}
