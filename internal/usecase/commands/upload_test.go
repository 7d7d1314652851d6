//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/usecase/commands"
	commandsmock "tiffintime-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func imageFile(name, contentType string, size int64) commands.UploadFile {
	return commands.UploadFile{
		Filename:    name,
		ContentType: contentType,
		Size:        size,
		Body:        strings.NewReader("png-bytes"),
	}
}

func TestUploadCommands_StoresUnderVendorPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockObjectStore(ctrl)
	cfg := config.NewTestConfig()
	cmds := commands.NewUploadCommands(store, cfg)
	vendorID := uuid.New()

	var putKey string
	store.EXPECT().Put(gomock.Any(), cfg.Storage.MenuBucket, gomock.Any(), "image/png", gomock.Any(), int64(9)).
		DoAndReturn(func(_ context.Context, _, key, _ string, body io.Reader, _ int64) error {
			putKey = key
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))
			return nil
		})
	store.EXPECT().SignedURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ref menu.ImageRef) (string, error) {
			return "https://storage.example/" + ref.Bucket + "/" + ref.Path + "?sig=1", nil
		})

	result, err := cmds.UploadMenuImage(context.Background(), vendorID, imageFile("Biryani.PNG", "image/png", 9))

	require.NoError(t, err)
	assert.Equal(t, cfg.Storage.MenuBucket, result.Bucket)
	assert.Equal(t, putKey, result.Path)
	assert.True(t, strings.HasPrefix(result.Path, vendorID.String()+"/"))
	assert.True(t, strings.HasSuffix(result.Path, ".png"))
	require.NotNil(t, result.URL)
	assert.Contains(t, *result.URL, result.Path)
}

func TestUploadCommands_VendorImageBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockObjectStore(ctrl)
	cfg := config.NewTestConfig()
	cmds := commands.NewUploadCommands(store, cfg)

	store.EXPECT().Put(gomock.Any(), cfg.Storage.VendorBucket, gomock.Any(), "image/jpeg", gomock.Any(), int64(9)).Return(nil)
	store.EXPECT().SignedURL(gomock.Any(), gomock.Any()).Return("", errors.New("signing key missing"))

	result, err := cmds.UploadVendorImage(context.Background(), uuid.New(), imageFile("front.jpg", "image/jpeg", 9))

	require.NoError(t, err)
	assert.Equal(t, cfg.Storage.VendorBucket, result.Bucket)
	assert.Nil(t, result.URL)
}

func TestUploadCommands_Rejections(t *testing.T) {
	cfg := config.NewTestConfig()

	tests := []struct {
		name    string
		file    commands.UploadFile
		wantErr error
	}{
		{name: "not an image", file: imageFile("menu.pdf", "application/pdf", 100), wantErr: commands.ErrUnsupportedImage},
		{name: "empty file", file: imageFile("a.png", "image/png", 0), wantErr: commands.ErrEmptyFile},
		{name: "over the limit", file: imageFile("a.png", "image/png", cfg.Storage.MaxUploadBytes+1), wantErr: commands.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := commandsmock.NewMockObjectStore(ctrl)
			cmds := commands.NewUploadCommands(store, cfg)

			_, err := cmds.UploadMenuImage(context.Background(), uuid.New(), tt.file)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockObjectStore(ctrl)
		cmds := commands.NewUploadCommands(store, cfg)
		boom := errors.New("bucket not found")
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		_, err := cmds.UploadMenuImage(context.Background(), uuid.New(), imageFile("a.png", "image/png", 9))
		assert.ErrorIs(t, err, boom)
	})
}
