// file: internals/helpers/upload_image.go
package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadBaseDir = "uploads"
	maxImageEdge  = 1024 // px, sisi terpanjang setelah resize
	webpQuality   = 80
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename membuat nama file unik per folder.
func GenerateUniqueFilename(folder, original string) string {
	base := strings.TrimSuffix(sanitizeFilename(original), filepath.Ext(original))
	return fmt.Sprintf("%s/%s_%d_%s.webp", folder, base, time.Now().Unix(), uuid.NewString()[:8])
}

// ConvertToWebP decode gambar upload (jpeg/png/webp) lalu re-encode ke WebP.
// Gambar besar di-resize dulu supaya ukuran simpanan wajar.
func ConvertToWebP(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxImageEdge || b.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveUploadImage konversi + simpan ke direktori upload lokal,
// return path relatif untuk disimpan di DB.
func SaveUploadImage(folder string, fh *multipart.FileHeader) (string, error) {
	data, err := ConvertToWebP(fh)
	if err != nil {
		return "", err
	}

	rel := GenerateUniqueFilename(folder, fh.Filename)
	full := filepath.Join(uploadBaseDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}
	return "/" + uploadBaseDir + "/" + rel, nil
}
