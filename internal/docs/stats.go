package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stats computes directory-level statistics over document files.
type Stats struct {
	maxFileSize int64
	validator   *Validator
}

// NewStats creates a stats analyzer with the specified constraints.
func NewStats(maxFileSize int64) *Stats {
	return &Stats{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// GetDirectoryStats returns statistics about the PDF files in a directory.
func (s *Stats) GetDirectoryStats(directory string) (*DirectoryStatsResult, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, directory)
	}

	var totalFiles int
	var totalSize int64
	var largestFile int64
	var largestFileName string
	var smallestFile int64 = int64(^uint64(0) >> 1) // Max int64
	var smallestFileName string

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		path := filepath.Join(directory, entry.Name())
		if s.validator.ValidateFileInfo(path, info) != nil {
			continue
		}

		totalFiles++
		totalSize += info.Size()

		if info.Size() > largestFile {
			largestFile = info.Size()
			largestFileName = info.Name()
		}
		if info.Size() < smallestFile {
			smallestFile = info.Size()
			smallestFileName = info.Name()
		}
	}

	var averageSize int64
	if totalFiles > 0 {
		averageSize = totalSize / int64(totalFiles)
	}
	if totalFiles == 0 {
		smallestFile = 0
	}

	return &DirectoryStatsResult{
		Directory:        directory,
		TotalFiles:       totalFiles,
		TotalSize:        totalSize,
		LargestFileSize:  largestFile,
		LargestFileName:  largestFileName,
		SmallestFileSize: smallestFile,
		SmallestFileName: smallestFileName,
		AverageFileSize:  averageSize,
	}, nil
}

// ListDocuments returns the PDF files directly inside directory, in
// enumeration order.
func (s *Stats) ListDocuments(directory string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:         filepath.Join(directory, entry.Name()),
			Name:         entry.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
	}

	return files, nil
}
