package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type ImageService struct {
	Images ImageAPI
}

// List returns the images whose name contains search, ignoring case.
func (s *ImageService) List(ctx context.Context, search string) ([]model.Image, error) {
	images, err := s.Images.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return images, nil
	}
	out := images[:0:0]
	for _, img := range images {
		if strings.Contains(strings.ToLower(img.Name), search) {
			out = append(out, img)
		}
	}
	return out, nil
}

func (s *ImageService) Upload(ctx context.Context, filename string, r io.Reader) (*model.Image, error) {
	return s.Images.Upload(ctx, filename, r)
}

func (s *ImageService) Delete(ctx context.Context, filename string) error {
	return s.Images.Delete(ctx, filename)
}

// FormatSize renders a byte count as B, KB or MB; "-" for unknown sizes.
func FormatSize(n int64) string {
	switch {
	case n <= 0:
		return "-"
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
