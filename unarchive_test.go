package main

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
)

const archiveTestData = "Name,Age\nAlice,30\nBob,25\n"

func TestUnpackUploadPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	assert.NoError(t, os.WriteFile(path, []byte(archiveTestData), 0644))

	got, err := unpackUpload(path)

	assert.NoError(t, err)
	assert.Equal(t, path, got, "plain files pass through untouched")
}

func TestUnpackUploadGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv.gz")

	f, err := os.Create(path)
	assert.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(archiveTestData))
	assert.NoError(t, err)
	assert.NoError(t, gw.Close())
	assert.NoError(t, f.Close())

	got, err := unpackUpload(path)

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), got)

	content, err := os.ReadFile(got)
	assert.NoError(t, err)
	assert.Equal(t, archiveTestData, string(content))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the archive is removed after extraction")
}

func TestUnpackUploadLz4(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv.lz4")

	f, err := os.Create(path)
	assert.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(archiveTestData))
	assert.NoError(t, err)
	assert.NoError(t, lw.Close())
	assert.NoError(t, f.Close())

	got, err := unpackUpload(path)

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), got)

	content, err := os.ReadFile(got)
	assert.NoError(t, err)
	assert.Equal(t, archiveTestData, string(content))
}

func TestUnpackUploadZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upload.zip")

	f, err := os.Create(path)
	assert.NoError(t, err)
	zw := zip.NewWriter(f)

	// the data file is the largest entry, a readme rides along
	readme, err := zw.Create("readme.txt")
	assert.NoError(t, err)
	_, err = readme.Write([]byte("notes"))
	assert.NoError(t, err)

	data, err := zw.Create("data.csv")
	assert.NoError(t, err)
	_, err = data.Write([]byte(archiveTestData))
	assert.NoError(t, err)

	assert.NoError(t, zw.Close())
	assert.NoError(t, f.Close())

	got, err := unpackUpload(path)

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), got)

	content, err := os.ReadFile(got)
	assert.NoError(t, err)
	assert.Equal(t, archiveTestData, string(content))
}

func TestUnpackUploadEmptyZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.zip")

	f, err := os.Create(path)
	assert.NoError(t, err)
	zw := zip.NewWriter(f)
	assert.NoError(t, zw.Close())
	assert.NoError(t, f.Close())

	_, err = unpackUpload(path)
	assert.Error(t, err)
}

func TestUnpackUploadCorruptGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv.gz")
	assert.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0644))

	_, err := unpackUpload(path)
	assert.Error(t, err)
}
