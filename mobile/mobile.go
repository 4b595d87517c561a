// Package mobile exposes image loading to native hosts through gomobile.
// Enums cross the bridge as ints.
package mobile

import (
	"bytes"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"lazyimage/internal/bot"
	"lazyimage/internal/dispatch"
	"lazyimage/internal/fetch"
	"lazyimage/internal/files"
	"lazyimage/internal/image"
	"lazyimage/internal/logger"
	"lazyimage/internal/services"
	"lazyimage/internal/view"
)

const (
	ErrorDownload  = int(services.DownloadFailed)
	ErrorLocalSave = int(services.LocalSaveFailed)
)

const (
	ContentModeScaleToFill     = int(image.ScaleToFill)
	ContentModeScaleAspectFit  = int(image.ScaleAspectFit)
	ContentModeScaleAspectFill = int(image.ScaleAspectFill)
	ContentModeCenter          = int(image.Center)
)

// ErrorListener is implemented on the native side.
type ErrorListener interface {
	OnError(kind int)
}

type ImageView struct {
	view *view.ImageView
}

func NewImageView(width, height int) *ImageView {
	return &ImageView{view: view.NewImageView(width, height)}
}

func (v *ImageView) HasImage() bool {
	return v.view.Image() != nil
}

// PNG renders the view; nil if encoding fails.
func (v *ImageView) PNG() []byte {
	var buf bytes.Buffer
	if err := v.view.WritePNG(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

type Loader struct {
	service *services.ImageService
	queue   *dispatch.MainQueue
	logger  *zap.Logger

	// Load holds mu shared while it starts a load; Close flips closed
	// under the exclusive lock, so no load starts once Close waits.
	mu     sync.RWMutex
	closed bool
}

// detached stands in for a missing view: the load still fetches and
// saves but nothing is displayed.
type detached struct{}

func (detached) Surface() (services.Surface, bool) { return nil, false }

// NewLoader builds a loader for http(s) URLs and, when botToken is set,
// tg:<file_id> locators. maxFileSize <= 0 uses the default limit.
func NewLoader(botToken string, maxFileSize int64) *Loader {
	log, err := logger.New("info", "json")
	if err != nil {
		log = zap.NewNop()
	}

	hf := fetch.NewHTTPFetcher(nil, maxFileSize, log)
	var tf *fetch.TelegramFetcher
	if botToken != "" {
		tg, err := bot.NewTelegramBot(botToken, log)
		if err != nil {
			log.Error("telegram disabled", zap.Error(err))
		} else {
			tf = fetch.NewTelegramFetcher(tg, hf)
		}
	}

	queue := dispatch.NewMainQueue()
	return &Loader{
		service: services.NewImageService(
			fetch.NewDefaultRouter(hf, tf),
			files.NewLocalStore(afero.NewOsFs()),
			queue,
			dispatch.NewPool(),
			log,
		),
		queue:  queue,
		logger: log,
	}
}

// Load shows the image cached at savePath on v, then refreshes it from
// url. The loader holds v only weakly; a nil v still refreshes the cache.
// Unknown modes fall back to ContentModeScaleToFill. listener may be nil.
// On a closed loader Load reports ErrorDownload and does nothing else.
func (l *Loader) Load(url string, mode int, savePath string, v *ImageView, listener ErrorListener) {
	var onError services.ErrorHandler
	if listener != nil {
		onError = func(kind services.ErrorKind) {
			listener.OnError(int(kind))
		}
	}

	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		l.logger.Warn("load on closed loader", zap.String("url", url))
		onError.Report(services.DownloadFailed)
		return
	}
	defer l.mu.RUnlock()

	contentMode := image.ContentMode(mode)
	if !contentMode.Valid() {
		l.logger.Warn("unknown content mode, using scale_to_fill", zap.Int("mode", mode))
		contentMode = image.ScaleToFill
	}

	var target services.SurfaceRef = detached{}
	if v != nil && v.view != nil {
		target = services.Weak(v.view)
	}

	l.service.Load(target, url, contentMode, savePath, onError)
}

// Wait blocks until all started loads have finished. It must not race
// with a Load on another thread; Close is safe to call at any time.
func (l *Loader) Wait() {
	l.service.Wait()
}

// Close waits for pending loads and stops the loader's main queue.
// Calling it again is a no-op.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.service.Wait()
	l.queue.Close()
	l.logger.Info("loader stopped")
	_ = l.logger.Sync()
}
