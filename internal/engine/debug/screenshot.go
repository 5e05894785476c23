// Package debug provides capture utilities for inspecting rendered frames.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture writes rendered frames to timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
}

// NewScreenshotCapture creates a capture handler. Files land in outputDir
// with names like prefix_2026-08-31_12-04-05.png.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// CaptureFromPixels writes raw RGBA pixel data as a PNG. Set flip when the
// rows arrive bottom-up, as GL framebuffer reads do.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int, flip bool) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := y
		if flip {
			srcY = height - 1 - y
		}
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[srcY*rowSize:srcY*rowSize+rowSize])
	}

	return sc.CaptureImage(img)
}

// CaptureImage writes an image as a PNG and returns the file path.
func (sc *ScreenshotCapture) CaptureImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.filename()

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

func (sc *ScreenshotCapture) filename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
