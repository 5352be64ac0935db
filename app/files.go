package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore 对 --directory 目录的读写封装
//
// 值类型、创建后不再修改，每个连接各拿一份拷贝。
// 读写都是整文件、同步的；写入不是原子的，进程在写到一半时
// 退出会留下不完整的文件。
type FileStore struct {
	dir string
}

// NewFileStore dir 为空表示没有配置目录，所有文件操作都返回 ErrFileNotFound
func NewFileStore(dir string) FileStore {
	return FileStore{dir: dir}
}

// Configured 是否配置了目录
func (s FileStore) Configured() bool {
	return s.dir != ""
}

// resolve 把 /files/<name> 里的 name 拼到目录下，拒绝跳出目录的 name
func (s FileStore) resolve(name string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("%w: no directory configured", ErrFileNotFound)
	}
	p := filepath.Join(s.dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(s.dir, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is outside the served directory", ErrFileNotFound, name)
	}
	return p, nil
}

// Read 读出整个文件
func (s FileStore) Read(name string) ([]byte, error) {
	p, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, p)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrFileIO, p, err)
	}
	return data, nil
}

// Write 创建或截断文件后写入 data
func (s FileStore) Write(name string, data []byte) error {
	p, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrFileIO, p, err)
	}
	return nil
}
