package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture saves GL back-buffer reads as PNG files named by time and simulation tick.
type ScreenshotCapture struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshotCapture writes into dir, created on first capture. An empty dir means the working directory.
func NewScreenshotCapture(dir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path a capture at tick would use.
func (sc *ScreenshotCapture) Filename(tick int) string {
	name := fmt.Sprintf("%s_%s_t%06d.png", sc.prefix, sc.now().Format("2006-01-02_15-04-05"), tick)
	return filepath.Join(sc.dir, name)
}

// Capture encodes bottom-up RGBA pixels (as glReadPixels returns them) and returns the file path.
func (sc *ScreenshotCapture) Capture(pixels []byte, width, height, tick int) (string, error) {
	img, err := imageFromGL(pixels, width, height)
	if err != nil {
		return "", err
	}
	if sc.dir != "" {
		if err := os.MkdirAll(sc.dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}

	path := sc.Filename(tick)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, f.Close()
}

// imageFromGL copies rows top-down into an image.
func imageFromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	row := width * 4
	if width <= 0 || height <= 0 || len(pixels) != row*height {
		return nil, fmt.Errorf("pixel data size mismatch: %dx%d needs %d bytes, got %d",
			width, height, row*height, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*row:][:row]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img, nil
}
