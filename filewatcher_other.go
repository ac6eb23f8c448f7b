// Completion: 100% - Stub for platforms without inotify
//go:build !linux
// +build !linux

package main

import "errors"

type FileWatcher struct{}

func newFileWatcher(onChange func(string)) (*FileWatcher, error) {
	return nil, errors.New("watch mode is only supported on Linux")
}

func (fw *FileWatcher) AddFile(path string) error { return nil }

func (fw *FileWatcher) Watch() {}

func (fw *FileWatcher) Close() error { return nil }
