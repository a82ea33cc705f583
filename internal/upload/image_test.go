package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/config"
)

const pngDataURL = "data:image/png;base64,aGVsbG8gd29ybGQ="

func TestDecodeBase64Image(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
		wantExt string
		wantErr bool
	}{
		{
			name:    "有效的 PNG 图片",
			dataURL: pngDataURL,
			wantExt: ".png",
		},
		{
			name:    "有效的 JPEG 图片",
			dataURL: "data:image/jpeg;base64,aGVsbG8=",
			wantExt: ".jpg",
		},
		{
			name:    "缺少 data 前缀",
			dataURL: "image/png;base64,aGVsbG8=",
			wantErr: true,
		},
		{
			name:    "缺少逗号分隔",
			dataURL: "data:image/png;base64",
			wantErr: true,
		},
		{
			name:    "不支持的图片类型",
			dataURL: "data:image/tiff;base64,aGVsbG8=",
			wantErr: true,
		},
		{
			name:    "无效的 base64 内容",
			dataURL: "data:image/png;base64,not-valid!!!",
			wantErr: true,
		},
		{
			name:    "空内容",
			dataURL: "data:image/png;base64,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ext, err := DecodeBase64Image(tt.dataURL)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
			assert.NotEmpty(t, data)
		})
	}
}

func TestSaveBase64Image(t *testing.T) {
	config.Conf = &config.AppConfig{
		Media: config.MediaConfig{Root: t.TempDir(), URLPrefix: "/media"},
	}

	relPath, err := SaveBase64Image(pngDataURL, "recipes_images")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "recipes_images/"))
	assert.True(t, strings.HasSuffix(relPath, ".png"))

	content, err := os.ReadFile(filepath.Join(config.Conf.Media.Root, filepath.FromSlash(relPath)))
	assert.NoError(t, err)
	assert.Equal(t, "hello world", string(content))

	assert.NoError(t, Remove(relPath))
	_, err = os.Stat(filepath.Join(config.Conf.Media.Root, filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))
}

func TestURL(t *testing.T) {
	config.Conf = &config.AppConfig{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		Media:  config.MediaConfig{URLPrefix: "/media"},
	}

	assert.Equal(t, "http://localhost:8080/media/users/a.png", URL("users/a.png"))
	assert.Equal(t, "", URL(""))
}
