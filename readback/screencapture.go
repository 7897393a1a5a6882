package readback

import (
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/queue"
)

// SaveFunc encodes captured pixel data into an image format; format-
// specific encoders (PNG, JPEG, BMP, ...) are external to this package
// (spec.md §6), so callers supply one.
type SaveFunc func(data []byte, width, height int, format gputypes.TextureFormat) error

// ScreenCapture wraps a texture readback sized to the backbuffer on first
// capture, exposing synchronous and async save paths (spec.md §4.11).
type ScreenCapture struct {
	newReadback func() *TextureReadback
	readback    *TextureReadback

	width, height uint32
	format        gputypes.TextureFormat

	pendingCallback SaveFunc
}

// NewScreenCapture creates a ScreenCapture that builds its backing
// TextureReadback lazily via newReadback on first RequestCapture.
func NewScreenCapture(newReadback func() *TextureReadback) *ScreenCapture {
	return &ScreenCapture{newReadback: newReadback}
}

// RequestCapture enqueues a copy of backBuffer into the capture's
// readback, (re)creating it if this is the first capture.
func (s *ScreenCapture) RequestCapture(ctx queue.BaseContext, backBuffer queue.ImageCopyTexture, width, height, bytesPerPixel uint32, format gputypes.TextureFormat) error {
	if s.readback == nil {
		s.readback = s.newReadback()
	}
	s.width, s.height, s.format = width, height, format
	return s.readback.EnqueueCopy(ctx, backBuffer, width, height, bytesPerPixel)
}

// GetPixelData copies out the captured raw pixel data once ready.
func (s *ScreenCapture) GetPixelData() ([]byte, error) {
	if s.readback == nil {
		return nil, ErrNeverEnqueued
	}
	data := make([]byte, s.readback.DataSize())
	if err := s.readback.GetData(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Save waits (up to timeout) for the capture to complete, then hands its
// pixel data and format to save.
func (s *ScreenCapture) Save(timeout time.Duration, save SaveFunc) error {
	if s.readback == nil {
		return ErrNeverEnqueued
	}
	if ok, err := s.readback.Wait(timeout); err != nil || !ok {
		if err != nil {
			return err
		}
		return ErrNotReady
	}
	data, err := s.GetPixelData()
	if err != nil {
		return err
	}
	return save(data, int(s.width), int(s.height), s.format)
}

// RequestCaptureAsync enqueues the capture and registers callback to be
// invoked the next time PollAsync observes it ready, instead of blocking.
func (s *ScreenCapture) RequestCaptureAsync(ctx queue.BaseContext, backBuffer queue.ImageCopyTexture, width, height, bytesPerPixel uint32, format gputypes.TextureFormat, callback SaveFunc) error {
	if err := s.RequestCapture(ctx, backBuffer, width, height, bytesPerPixel, format); err != nil {
		return err
	}
	s.pendingCallback = callback
	return nil
}

// PollAsync checks whether a pending async capture has completed; if so
// it invokes and clears the callback and reports true.
func (s *ScreenCapture) PollAsync() (bool, error) {
	if s.pendingCallback == nil || s.readback == nil || !s.readback.IsReady() {
		return false, nil
	}
	cb := s.pendingCallback
	s.pendingCallback = nil
	data, err := s.GetPixelData()
	if err != nil {
		return true, err
	}
	return true, cb(data, int(s.width), int(s.height), s.format)
}
