package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyimage/internal/bot"
)

type fakeBot struct {
	baseURL string
	files   map[string]*bot.File
	asked   []string
}

func (b *fakeBot) GetFile(_ context.Context, fileID string) (*bot.File, error) {
	b.asked = append(b.asked, fileID)
	f, ok := b.files[fileID]
	if !ok {
		return nil, errors.New("Bad Request: invalid file_id")
	}
	return f, nil
}

func (b *fakeBot) FileDownloadURL(filePath string) string {
	return b.baseURL + "/" + filePath
}

func TestTelegramFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/file_7.jpg", r.URL.Path)
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	b := &fakeBot{
		baseURL: server.URL,
		files: map[string]*bot.File{
			"AgAD7": {FileID: "AgAD7", FilePath: "photos/file_7.jpg"},
		},
	}
	f := NewTelegramFetcher(b, NewHTTPFetcher(nil, 0, nil))

	for _, locator := range []string{"tg:AgAD7", "tg://AgAD7"} {
		data, err := f.Fetch(context.Background(), locator)
		require.NoError(t, err, locator)
		assert.Equal(t, []byte("jpeg-bytes"), data)
	}
	assert.Equal(t, []string{"AgAD7", "AgAD7"}, b.asked)
}

func TestTelegramFetcher_UnknownFile(t *testing.T) {
	f := NewTelegramFetcher(&fakeBot{files: map[string]*bot.File{}}, NewHTTPFetcher(nil, 0, nil))

	_, err := f.Fetch(context.Background(), "tg:missing")
	assert.Error(t, err)
}

func TestTelegramFetcher_EmptyFilePath(t *testing.T) {
	b := &fakeBot{files: map[string]*bot.File{"AgAD1": {FileID: "AgAD1"}}}
	f := NewTelegramFetcher(b, NewHTTPFetcher(nil, 0, nil))

	_, err := f.Fetch(context.Background(), "tg:AgAD1")
	assert.ErrorIs(t, err, ErrInvalidFileID)
	assert.ErrorContains(t, err, "no file path")
}

func TestParseFileID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "tg:AgAD-_9", want: "AgAD-_9"},
		{in: "tg://AgAD9", want: "AgAD9"},
		{in: "tg:", wantErr: ErrInvalidFileID},
		{in: "tg://a/b", wantErr: ErrInvalidFileID},
		{in: "https://example.com", wantErr: ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFileID(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
