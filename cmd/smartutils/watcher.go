// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vkashegde/smart-utils/pkg/logging"
)

// reloadDebounce batches the burst of write events editors emit when
// saving a file.
const reloadDebounce = 200 * time.Millisecond

// watchConfigFile live-reloads the log level when the config file
// changes. The watcher goroutine runs for the process lifetime; reload
// failures are logged and the previous configuration stays in effect.
func watchConfigFile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	path = expandHome(path)
	// Watch the directory: editors replace files on save, and a watch
	// on the old inode would go stale after the first write.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		var pending *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(reloadDebounce, func() { reloadLogLevel(path) })

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warning("config watcher: %v", err)
			}
		}
	}()
	return nil
}

// reloadLogLevel re-reads the config and applies its log level to the
// default logger.
func reloadLogLevel(path string) {
	cfg, err := LoadConfig(path)
	if err != nil {
		logging.Warning("config reload failed: %v", err)
		return
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		logging.Warning("config reload: %v", err)
		return
	}
	if logging.Default().MinLevel() != level {
		logging.Default().SetMinLevel(level)
		logging.Info("log level now %s", level)
	}
}
