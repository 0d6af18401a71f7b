package dataset_test

import (
	"context"
	"errors"
	"testing"

	"countries-api/core/dataset"
	"countries-api/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	ctx := context.Background()
	data := []byte(countriesJSON)

	t.Run("CreatesBucketAndUploads", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "countries").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "countries", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		m.On("PutObject", mock.Anything, "countries", "data/countries.json", mock.Anything, int64(len(data)),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
			Return(minio.UploadInfo{}, nil)

		n, err := dataset.Publish(ctx, m, "countries", "eu-west-1", "data/countries.json", data)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		m.AssertExpectations(t)
	})

	t.Run("InvalidDataNotUploaded", func(t *testing.T) {
		m := new(mocks.Client)

		_, err := dataset.Publish(ctx, m, "countries", "", "data/countries.json", []byte(`{"not":"an array"}`))
		assert.ErrorIs(t, err, dataset.ErrMalformedDataset)
		m.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
		m.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UploadFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "countries").Return(true, nil)
		m.On("PutObject", mock.Anything, "countries", "x.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		_, err := dataset.Publish(ctx, m, "countries", "", "x.json", data)
		assert.ErrorContains(t, err, "denied")
	})
}
