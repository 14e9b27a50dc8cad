package export

import (
	"context"
	"sync"
)

var _ uploader = &uploaderMock{}

type uploaderMock struct {
	UploadFunc func(ctx context.Context, key, contentType string, body []byte) error

	calls struct {
		Upload []struct {
			Key         string
			ContentType string
			Body        []byte
		}
	}
	lockUpload sync.RWMutex
}

func (mock *uploaderMock) Upload(ctx context.Context, key, contentType string, body []byte) error {
	if mock.UploadFunc == nil {
		panic("uploaderMock.UploadFunc: method is nil but uploader.Upload was just called")
	}
	callInfo := struct {
		Key         string
		ContentType string
		Body        []byte
	}{Key: key, ContentType: contentType, Body: body}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, key, contentType, body)
}

func (mock *uploaderMock) UploadCalls() []struct {
	Key         string
	ContentType string
	Body        []byte
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
