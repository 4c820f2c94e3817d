package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/vi-cloth/parameter"
)

var (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = int64(parameter.MaxLogSize)
)

// setupLogging routes the standard logger to the debug log file
// Without debug all output is discarded: the terminal is in raw mode
// A log over maxLogSize is renamed with a timestamp before reopening
// Returns the open file for the caller to close, nil when disabled or on error
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		base := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
		rotated := filepath.Join(logDir, base+"-"+time.Now().Format("20060102-150405")+".log")
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f
}
