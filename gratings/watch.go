package main

import (
	"fmt"
	"hash/crc64"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchConfig calls regen each time the contents of fname change. Editors
// often replace files instead of writing them, so the directory is watched.
func watchConfig(fname string, regen func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	fname = filepath.Clean(fname)
	if err := watcher.Add(filepath.Dir(fname)); err != nil {
		return fmt.Errorf("problem adding folder watcher: %w", err)
	}
	lastCrc := fileChecksum(fname)
	fmt.Printf("Monitoring %q\n", fname)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fname {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			checksum := fileChecksum(fname)
			if checksum == lastCrc {
				continue
			}
			lastCrc = checksum
			if err := regen(); err != nil {
				fmt.Printf("Err: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println("ERROR", err)
		}
	}
}

var crcTable = crc64.MakeTable(crc64.ECMA)

// fileChecksum returns 0 if fname can't be read.
func fileChecksum(fname string) uint64 {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return 0
	}
	return crc64.Checksum(bytes, crcTable)
}
