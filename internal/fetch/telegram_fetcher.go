package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"lazyimage/internal/bot"
)

// TelegramScheme marks locators of the form tg:<file_id> or tg://<file_id>.
const TelegramScheme = "tg"

type TelegramFetcher struct {
	bot  bot.Bot
	http *HTTPFetcher
}

func NewTelegramFetcher(b bot.Bot, hf *HTTPFetcher) *TelegramFetcher {
	return &TelegramFetcher{bot: b, http: hf}
}

func (f *TelegramFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	fileID, err := parseFileID(rawURL)
	if err != nil {
		return nil, err
	}

	tf, err := f.bot.GetFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("GetFile error: %w", err)
	}
	if tf == nil || tf.FilePath == "" {
		return nil, fmt.Errorf("%w: no file path from telegram for id %s", ErrInvalidFileID, fileID)
	}

	return f.http.Fetch(ctx, f.bot.FileDownloadURL(tf.FilePath))
}

func parseFileID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if !strings.EqualFold(u.Scheme, TelegramScheme) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	id := u.Opaque
	if id == "" {
		id = strings.Trim(u.Host+u.Path, "/")
	}
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileID, rawURL)
	}
	return id, nil
}
