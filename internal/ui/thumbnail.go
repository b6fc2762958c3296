package ui

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"k8s.io/klog/v2"

	"github.com/nfnt/resize"
)

const (
	// ThumbnailWidth is the width of the thumbnails in the browser.
	ThumbnailWidth = 160
	// ThumbnailHeight is the height of the thumbnails in the browser.
	ThumbnailHeight = 160
)

// ThumbnailManager handles generation and caching of image thumbnails.
// The cache is keyed by source path and survives re-scans; whether a
// thumbnail is shown or a placeholder is the session's load tracker's call.
type ThumbnailManager struct {
	cache      map[string]fyne.Resource
	cacheMutex sync.RWMutex
}

// NewThumbnailManager creates a new thumbnail manager.
func NewThumbnailManager() *ThumbnailManager {
	return &ThumbnailManager{cache: make(map[string]fyne.Resource)}
}

// imageToBytes is a helper to convert image.Image to []byte for Fyne resources.
func imageToBytes(img image.Image) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

// Get returns a resource for the image at path. A cached thumbnail is
// returned directly and onReady is called inline; otherwise a placeholder is
// returned and onReady is called on the Fyne thread once the thumbnail has
// been decoded in the background.
func (tm *ThumbnailManager) Get(path string, onReady func(fyne.Resource)) fyne.Resource {
	tm.cacheMutex.RLock()
	res, ok := tm.cache[path]
	tm.cacheMutex.RUnlock()
	if ok {
		if onReady != nil {
			onReady(res)
		}
		return res
	}

	go func() {
		f, err := os.Open(path)
		if err != nil {
			klog.Warningf("thumbnail: %v", err)
			return
		}
		defer f.Close()
		decoded, _, err := image.Decode(f)
		if err != nil {
			klog.Warningf("thumbnail: decoding %s: %v", path, err)
			return
		}

		thumbImg := resize.Thumbnail(ThumbnailWidth, ThumbnailHeight, decoded, resize.Lanczos3)
		thumbBytes := imageToBytes(thumbImg)
		if thumbBytes == nil {
			return
		}
		imgResource := fyne.NewStaticResource(path, thumbBytes)

		tm.cacheMutex.Lock()
		tm.cache[path] = imgResource
		tm.cacheMutex.Unlock()

		fyne.Do(func() {
			if onReady != nil {
				onReady(imgResource)
			}
		})
	}()

	return theme.FileImageIcon()
}
