package bot

import (
	"context"
)

// Bot is the slice of the Telegram Bot API needed to turn a file ID
// into downloadable bytes.
type Bot interface {
	GetFile(ctx context.Context, fileID string) (*File, error)
	FileDownloadURL(filePath string) string
}

type File struct {
	FileID   string
	FilePath string
	FileSize int64
}
