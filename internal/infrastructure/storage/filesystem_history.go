package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/srclist/internal/domain"
)

func (r *FilesystemRepository) historyPath() (string, error) {
	dir := filepath.Join(r.root, SrclistDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", SrclistDir, err)
	}
	return filepath.Join(dir, HistoryFile), nil
}

func (r *FilesystemRepository) RecordApply(rec domain.ApplyRecord) error {
	path, err := r.historyPath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal apply record: %w", err)
	}
	data = append(data, '\n')

	// #nosec G304 -- Path is derived from the project root
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write apply record: %w", err)
	}

	return nil
}

func (r *FilesystemRepository) LoadHistory() ([]domain.ApplyRecord, error) {
	path := filepath.Join(r.root, SrclistDir, HistoryFile)

	// #nosec G304 -- Path is derived from the project root
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ApplyRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var records []domain.ApplyRecord
	lines := bytes.Split(data, []byte("\n"))
	for _, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec domain.ApplyRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue // Skip malformed lines
		}
		records = append(records, rec)
	}

	return records, nil
}
