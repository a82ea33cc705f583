package user_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
)

const avatarDataURL = "data:image/png;base64,aGVsbG8gd29ybGQ="

func mediaPath(relURL string) string {
	// URL 形如 http://localhost:8080/media/users/xxx.png
	rel := strings.TrimPrefix(relURL, config.Conf.Server.BaseURL+config.Conf.Media.URLPrefix+"/")
	return filepath.Join(config.Conf.Media.Root, filepath.FromSlash(rel))
}

func TestAvatar_Integration(t *testing.T) {
	service, db := setupUserService(t)

	u := testutils.CreateTestUser(db)

	var firstURL string

	t.Run("设置头像后文件存在", func(t *testing.T) {
		url, bizErr := service.SetAvatar(u.ID, avatarDataURL)
		assert.Nil(t, bizErr)
		assert.Contains(t, url, "/media/users/")

		_, err := os.Stat(mediaPath(url))
		assert.NoError(t, err)
		firstURL = url
	})

	t.Run("替换头像时删除旧文件", func(t *testing.T) {
		url, bizErr := service.SetAvatar(u.ID, avatarDataURL)
		assert.Nil(t, bizErr)
		assert.NotEqual(t, firstURL, url)

		_, err := os.Stat(mediaPath(firstURL))
		assert.True(t, os.IsNotExist(err))
		firstURL = url
	})

	t.Run("删除头像清空字段并删除文件", func(t *testing.T) {
		bizErr := service.DeleteAvatar(u.ID)
		assert.Nil(t, bizErr)

		profile, bizErr := service.GetProfile(u.ID, 0)
		assert.Nil(t, bizErr)
		assert.Nil(t, profile.Avatar)

		_, err := os.Stat(mediaPath(firstURL))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("重复删除头像不报错", func(t *testing.T) {
		bizErr := service.DeleteAvatar(u.ID)
		assert.Nil(t, bizErr)
	})
}
