// Package upload 处理 Base64 编码图片的存储（头像、菜谱图片）
package upload

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/SidorenkoTatiana/foodgram-st/config"
)

// 支持的图片类型及扩展名
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DecodeBase64Image 解析 data URL，返回图片内容和扩展名
// 接受格式: data:image/png;base64,XXXX
func DecodeBase64Image(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", fmt.Errorf("图片必须是 data URL 格式")
	}

	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("无效的 data URL")
	}

	meta := strings.TrimPrefix(parts[0], "data:")
	meta = strings.TrimSuffix(meta, ";base64")

	ext, ok := imageExtensions[meta]
	if !ok {
		return nil, "", fmt.Errorf("不支持的图片类型: %s", meta)
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("图片解码失败: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("图片内容为空")
	}

	return data, ext, nil
}

// SaveBase64Image 解码并保存图片到 media 目录的子目录下
// 返回相对 media 根目录的路径，如 "recipes_images/xxx.png"
func SaveBase64Image(dataURL string, subdir string) (string, error) {
	data, ext, err := DecodeBase64Image(dataURL)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(config.Conf.Media.Root, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("创建存储目录失败: %w", err)
	}

	// 使用 uuid 作为文件名，避免冲突
	fileName := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0644); err != nil {
		return "", fmt.Errorf("保存图片失败: %w", err)
	}

	return path.Join(subdir, fileName), nil
}

// Remove 删除已保存的图片，路径为相对 media 根目录的路径
func Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	return os.Remove(filepath.Join(config.Conf.Media.Root, filepath.FromSlash(relPath)))
}

// URL 将存储路径转换为对外访问的 URL
func URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	prefix := strings.TrimRight(config.Conf.Media.URLPrefix, "/")
	base := strings.TrimRight(config.Conf.Server.BaseURL, "/")
	return base + prefix + "/" + strings.TrimLeft(filepath.ToSlash(relPath), "/")
}
