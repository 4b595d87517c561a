package services

import "fmt"

// ErrorKind tells the caller which stage of a load failed.
type ErrorKind int

const (
	// DownloadFailed: the fetch failed, returned nothing, or returned
	// bytes that are not an image. Nothing is saved.
	DownloadFailed ErrorKind = iota
	// LocalSaveFailed: the fetched image was shown but could not be
	// encoded or written to the save path.
	LocalSaveFailed
)

func (k ErrorKind) String() string {
	switch k {
	case DownloadFailed:
		return "download_failed"
	case LocalSaveFailed:
		return "local_save_failed"
	default:
		return fmt.Sprintf("error_kind(%d)", int(k))
	}
}

// ErrorHandler receives load failures. It may be nil.
type ErrorHandler func(ErrorKind)

func (h ErrorHandler) Report(kind ErrorKind) {
	if h != nil {
		h(kind)
	}
}
