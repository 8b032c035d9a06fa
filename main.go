package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pivolan/report_generator/config"
)

func main() {
	cfg := config.GetConfig()
	fmt.Println("started")

	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/upload", handleUpload)
	http.HandleFunc("/stats", handleStats)
	http.HandleFunc("/hist", handleHistogram)
	http.HandleFunc("/charts", handleCharts)
	http.HandleFunc("/report", handleReport)

	go cleanupLoop(cfg)

	log.Printf("listen on: http://localhost%s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// cleanupLoop expires stale sessions and their uploaded files. Uploads are
// never kept past the TTL; report bytes are never stored at all.
func cleanupLoop(cfg *config.Config) {
	for {
		time.Sleep(time.Minute)
		cutoff := time.Now().Add(-cfg.SessionTTL)

		sessionsMu.Lock()
		for id, s := range sessions {
			if s.created.Before(cutoff) {
				delete(sessions, id)
			}
		}
		sessionsMu.Unlock()

		if err := removeOldFiles(cfg.UploadDir, cutoff); err != nil && !os.IsNotExist(err) {
			log.Printf("Error cleaning uploads: %v", err)
		}
	}
}

func removeOldFiles(dirPath string, maxAge time.Time) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return err
	}

	for _, file := range files {
		filePath := filepath.Join(dirPath, file.Name())

		if file.IsDir() {
			if err := removeOldFiles(filePath, maxAge); err != nil {
				return err
			}
			continue
		}

		fileStat, err := os.Stat(filePath)
		if err != nil {
			return err
		}
		if fileStat.ModTime().Before(maxAge) {
			if err := os.Remove(filePath); err != nil {
				return err
			}
			log.Printf("Removed file: %s", filePath)
		}
	}

	return nil
}
