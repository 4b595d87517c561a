package services

import (
	"context"
	img "image"
	"sync"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"lazyimage/internal/dispatch"
	"lazyimage/internal/fetch"
	"lazyimage/internal/files"
	"lazyimage/internal/image"
)

type ImageService struct {
	fetcher    fetch.Fetcher
	store      *files.LocalStore
	main       dispatch.Executor
	background dispatch.Executor
	logger     *zap.Logger

	inflight sync.WaitGroup
}

func NewImageService(
	fetcher fetch.Fetcher,
	store *files.LocalStore,
	main dispatch.Executor,
	background dispatch.Executor,
	logger *zap.Logger,
) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ImageService{
		fetcher:    fetcher,
		store:      store,
		main:       main,
		background: background,
		logger:     logger,
	}
}

// Load shows the image cached at savePath right away, if there is one,
// then fetches rawURL in the background. A fetched image is shown on the
// main queue and re-encoded to savePath afterwards. Failures reach
// onError as DownloadFailed or LocalSaveFailed; Load itself never fails.
//
// Load must be called from the goroutine that owns target, since the
// cached image is applied before Load returns.
func (s *ImageService) Load(target SurfaceRef, rawURL string, mode image.ContentMode, savePath string, onError ErrorHandler) {
	log := s.logger.With(zap.String("url", rawURL), zap.String("path", savePath))

	if cached, err := s.store.Load(savePath); err == nil {
		if surface, ok := target.Surface(); ok {
			apply(surface, cached, mode)
			log.Debug("showing cached image")
		}
	} else {
		log.Debug("no usable cached image", zap.Error(err))
	}

	s.inflight.Add(1)
	if !s.background.Dispatch(func() {
		s.fetch(log, target, rawURL, mode, savePath, onError)
	}) {
		s.dropped(log, "fetch")
	}
}

// Wait blocks until every load started so far has finished, including
// its save.
func (s *ImageService) Wait() {
	s.inflight.Wait()
}

func (s *ImageService) fetch(log *zap.Logger, target SurfaceRef, rawURL string, mode image.ContentMode, savePath string, onError ErrorHandler) {
	var decoded img.Image
	data, err := s.fetcher.Fetch(context.Background(), rawURL)
	if err == nil {
		decoded, _, err = image.Decode(data)
	}

	queued := s.main.Dispatch(func() {
		if err != nil {
			defer s.inflight.Done()
			log.Warn("download failed", zap.Error(err))
			onError.Report(DownloadFailed)
			return
		}

		if surface, ok := target.Surface(); ok {
			apply(surface, decoded, mode)
		} else {
			log.Debug("surface released before download finished")
		}

		if !s.background.Dispatch(func() {
			defer s.inflight.Done()
			s.save(log, decoded, savePath, onError)
		}) {
			s.dropped(log, "save")
		}
	})
	if !queued {
		s.dropped(log, "display update")
	}
}

// dropped ends a load whose next stage an executor refused, so Wait
// does not block on it.
func (s *ImageService) dropped(log *zap.Logger, stage string) {
	log.Warn("executor closed, load abandoned", zap.String("stage", stage))
	s.inflight.Done()
}

func (s *ImageService) save(log *zap.Logger, decoded img.Image, savePath string, onError ErrorHandler) {
	n, err := s.store.Save(savePath, decoded)
	if err != nil {
		log.Warn("local save failed", zap.Error(err))
		onError.Report(LocalSaveFailed)
		return
	}
	log.Debug("saved image", zap.String("size", humanize.Bytes(uint64(n))))
}
