package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	"go.uber.org/zap"
)

const fileEndpoint = "https://api.telegram.org/file/bot"

type TelegramBot struct {
	client *telego.Bot
	token  string
	logger *zap.Logger
}

func NewTelegramBot(token string, logger *zap.Logger) (Bot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	b, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telego bot: %w", err)
	}

	return &TelegramBot{
		client: b,
		token:  token,
		logger: logger,
	}, nil
}

func (tb *TelegramBot) GetFile(ctx context.Context, fileID string) (*File, error) {
	f, err := tb.client.GetFile(ctx, &telego.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for ID %s: %w", fileID, err)
	}

	tb.logger.Debug("resolved telegram file",
		zap.String("file_id", f.FileID),
		zap.String("file_path", f.FilePath),
		zap.Int64("file_size", f.FileSize))

	return &File{
		FileID:   f.FileID,
		FilePath: f.FilePath,
		FileSize: f.FileSize,
	}, nil
}

func (tb *TelegramBot) FileDownloadURL(filePath string) string {
	return fmt.Sprintf("%s%s/%s", fileEndpoint, tb.token, filePath)
}
