package enginepages

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/eringen/enginepages/views"
)

const (
	jpegQuality = 80

	// Limits on source images, checked before the full decode.
	maxSourceBytes  = 32 << 20
	maxSourcePixels = 40_000_000
)

// ErrImageTooLarge is returned for source images over the byte or pixel
// limits.
var ErrImageTooLarge = errors.New("image too large")

// handleImage serves a static image from StaticDir resized to one of
// views.ImageWidths. Images narrower than the requested width are
// re-encoded at their own size.
func (a *App) handleImage(c echo.Context) error {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil || !slices.Contains(views.ImageWidths, width) {
		return echo.ErrNotFound
	}
	rel, ok := cleanImagePath(c.Param("*"))
	if !ok {
		return echo.ErrNotFound
	}

	key := "img:" + strconv.Itoa(width) + ":" + rel
	data, err := a.Cache.Get(key, func() ([]byte, error) {
		f, err := os.Open(filepath.Join(a.Config.StaticDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return resizeImage(f, width)
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return echo.ErrNotFound
	case errors.Is(err, image.ErrFormat):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "not an image")
	case errors.Is(err, ErrImageTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "source image too large")
	case err != nil:
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

// cleanImagePath rejects wildcard paths that are empty or escape the
// static directory.
func cleanImagePath(p string) (string, bool) {
	p = strings.TrimPrefix(p, "/")
	if p == "" || strings.Contains(p, "\\") {
		return "", false
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", false
	}
	return clean, true
}

// resizeImage decodes src, scales it down to width if it is wider, and
// encodes it as JPEG. Sources over maxSourceBytes or maxSourcePixels are
// rejected with ErrImageTooLarge before any pixel data is decoded.
func resizeImage(src io.Reader, width int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(src, maxSourceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) > maxSourceBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrImageTooLarge, maxSourceBytes)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxSourcePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := max(1, h*width/w)
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
