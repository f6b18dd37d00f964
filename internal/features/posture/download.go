// Package posture — download.go скачивает фото из Telegram.
package posture

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mymmrac/telego"

	"beautive.app/telegram-bot/internal/common"
)

// MaxImageBytes — предельный размер фото.
const MaxImageBytes = 10 << 20

// FileSource — часть *telego.Bot для получения файлов.
type FileSource interface {
	GetFile(ctx context.Context, params *telego.GetFileParams) (*telego.File, error)
	FileDownloadURL(filepath string) string
}

// Downloader скачивает файлы Telegram по file_id.
type Downloader struct {
	files  FileSource
	client *http.Client
}

// NewDownloader создаёт загрузчик. client == nil — http.DefaultClient.
func NewDownloader(files FileSource, client *http.Client) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{files: files, client: client}
}

// Download возвращает содержимое файла. Файлы больше MaxImageBytes отклоняются.
func (d *Downloader) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := d.files.GetFile(ctx, &telego.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("ошибка получения файла: %w", err)
	}
	if int64(file.FileSize) > MaxImageBytes {
		return nil, common.ErrImageTooLarge
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.files.FileDownloadURL(file.FilePath), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса файла: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка скачивания файла: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ошибка скачивания файла: статус %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, common.ErrImageTooLarge
	}
	return data, nil
}

// LargestPhoto выбирает самый большой размер фото.
func LargestPhoto(sizes []telego.PhotoSize) (telego.PhotoSize, bool) {
	if len(sizes) == 0 {
		return telego.PhotoSize{}, false
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Width*s.Height > best.Width*best.Height {
			best = s
		}
	}
	return best, true
}
