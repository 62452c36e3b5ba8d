package test

import (
	"context"
	"io"
)

// ImageStoreStub records image store interactions for tests.
type ImageStoreStub struct {
	UploadFn func(context.Context, string, io.Reader) (string, error)
	DeleteFn func(context.Context, string) error

	Uploads []string
	Deletes []string
}

// Upload returns a deterministic URL unless overridden.
func (s *ImageStoreStub) Upload(ctx context.Context, objectName string, content io.Reader) (string, error) {
	s.Uploads = append(s.Uploads, objectName)
	if s.UploadFn != nil {
		return s.UploadFn(ctx, objectName, content)
	}
	return "http://images/" + objectName, nil
}

// Delete records the removed object name.
func (s *ImageStoreStub) Delete(ctx context.Context, objectName string) error {
	s.Deletes = append(s.Deletes, objectName)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, objectName)
	}
	return nil
}
