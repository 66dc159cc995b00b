package xlsx

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// InsertImage downloads the image and anchors it at the cell, scaled to fit.
func (r *implRepository) InsertImage(ctx context.Context, sheet, imageURL string, col, row int) error {
	data, ext, err := r.download(ctx, imageURL)
	if err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	pic := &excelize.Picture{
		Extension: ext,
		File:      data,
		Format:    &excelize.GraphicOptions{AutoFit: true, AltText: path.Base(imageURL)},
	}
	if err := r.file.AddPictureFromBytes(sheet, cell, pic); err != nil {
		return fmt.Errorf("failed to add image at %s!%s: %w", sheet, cell, err)
	}
	return nil
}

func (r *implRepository) download(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build image request: %w", err)
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download %s: %w", imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("failed to download %s: status %d", imageURL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", imageURL, err)
	}
	return data, extension(imageURL, resp.Header.Get("Content-Type")), nil
}

// extension picks the picture type from the URL path, then the content type.
func extension(imageURL, contentType string) string {
	if u, err := url.Parse(imageURL); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); ext != "" {
			return ext
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "image/jpeg":
			return ".jpg"
		case "image/gif":
			return ".gif"
		}
	}
	return ".png"
}
