package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Asset store (remote object storage) errors. These cover failures that can
// leave the repository and the store out of sync: the core performs no
// cross-store rollback, so the caller must see which step failed.
var (
	ErrAssetStore  = errors.New("asset store operation failed")
	ErrAssetUpload = errors.New("asset upload failed")
	ErrAssetDelete = errors.New("asset delete failed")
)

func NewAssetStoreError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrAssetStore,
		Details:    fmt.Sprintf("Asset store %s failed", operation),
		Cause:      cause,
	}
}

func NewAssetUploadError(folder string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrAssetUpload,
		Details:    fmt.Sprintf("Failed to upload asset to folder %s", folder),
		Cause:      cause,
	}
}

func NewAssetDeleteError(fileURL string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrAssetDelete,
		Details:    fmt.Sprintf("Failed to delete asset %s", fileURL),
		Cause:      cause,
	}
}

func IsAssetStoreError(err error) bool {
	return errors.Is(err, ErrAssetStore) ||
		errors.Is(err, ErrAssetUpload) ||
		errors.Is(err, ErrAssetDelete)
}
