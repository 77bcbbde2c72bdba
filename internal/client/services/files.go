package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Downloader is the blob-fetching subset of the gateway.
type Downloader interface {
	Download(ctx context.Context, path string) (data []byte, filename string, err error)
}

// FileService fetches attachment blobs and writes them to local files —
// the console's rendition of a browser download.
type FileService interface {
	// Download saves the attachment with the given id into dir and
	// returns the written path.
	Download(ctx context.Context, id, dir string) (string, error)
}

type fileService struct {
	api Downloader
}

func NewFileService(api Downloader) FileService {
	return &fileService{api: api}
}

func (s *fileService) Download(ctx context.Context, id, dir string) (string, error) {
	data, name, err := s.api.Download(ctx, "/x/files/"+id)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = id
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
