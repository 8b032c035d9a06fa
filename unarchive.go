package main

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// unpackUpload unpacks a compressed upload next to the original and returns
// the path of the extracted file. Plain files pass through untouched. The
// archive itself is removed after extraction.
func unpackUpload(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZip(filePath)
	case ".gz":
		return unpackStream(filePath, ".gz", func(r io.Reader) (io.Reader, error) {
			gr, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			return gr, nil
		})
	case ".lz4":
		return unpackStream(filePath, ".lz4", func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		})
	}
	return filePath, nil
}

func unpackStream(filePath, suffix string, wrap func(io.Reader) (io.Reader, error)) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	decompressed, err := wrap(file)
	if err != nil {
		return "", err
	}

	destPath := strings.TrimSuffix(filePath, suffix)
	if err := writeFileFrom(decompressed, destPath); err != nil {
		return "", err
	}

	file.Close()
	if err := os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}

// unpackZip extracts the largest file of the archive, which is the data file
// by any reasonable packing of a single dataset.
func unpackZip(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", errors.New("no files in archive")
	}

	destPath := filepath.Join(filepath.Dir(filePath), filepath.Base(largestFile.Name))
	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	if err := writeFileFrom(rc, destPath); err != nil {
		return "", err
	}

	r.Close()
	if err := os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}

func writeFileFrom(r io.Reader, destPath string) error {
	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	_, err = io.Copy(outFile, r)
	return err
}
