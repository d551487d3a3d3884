// internals/helpers/oss/oss_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

var maxUploadSize = int64(5 * 1024 * 1024)

// MaxUploadSize is the caller-side cap for profile images (5 MiB).
func MaxUploadSize() int64 { return maxUploadSize }

type WebPOptions struct {
	MaxW    int     // resize bound, keep aspect
	MaxH    int
	Quality float32
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1024),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1024),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage sniffs the MIME from the first 512 bytes and decodes
// jpeg/png/webp input.
func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("unsupported image type: %s", ct)
	}
}

// IsImageContentType reports whether the sniffed content type is an accepted
// profile-image format.
func IsImageContentType(head []byte) bool {
	ct := http.DetectContentType(head)
	return strings.HasPrefix(ct, "image/")
}

// ConvertToWebP reads, decodes, bounds, and re-encodes an uploaded image as
// WebP. All profile images are stored this way.
func ConvertToWebP(file io.Reader) ([]byte, error) {
	all, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(all)) > maxUploadSize {
		return nil, fmt.Errorf("file exceeds %d bytes", maxUploadSize)
	}

	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}

	opts := defaultWebPOptionsFromEnv()
	b := img.Bounds()
	if b.Dx() > opts.MaxW || b.Dy() > opts.MaxH {
		img = imaging.Fit(img, opts.MaxW, opts.MaxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opts.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func init() {
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxUploadSize = n
		}
	}
}
