package storage

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persists one collection as a JSON array. Load decodes the last saved
// state into dst (a pointer to a slice) and leaves it untouched when nothing
// has been saved yet. Save replaces the stored state with src.
type Store interface {
	Load(dst any) error
	Save(src any) error
}

// FileStore keeps the collection in a single JSON file. There is no write
// protection: a crash mid-write may leave a corrupted file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load(dst any) error {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", fs.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", fs.path, err)
	}
	return nil
}

func (fs *FileStore) Save(src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", fs.path, err)
	}
	if err := os.WriteFile(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fs.path, err)
	}
	return nil
}

// MemStore holds the last saved array in memory. It round-trips through the
// same codec as FileStore, so a reload behaves exactly like reading a file.
type MemStore struct {
	data []byte
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (ms *MemStore) Load(dst any) error {
	if len(ms.data) == 0 {
		return nil
	}
	return json.Unmarshal(ms.data, dst)
}

func (ms *MemStore) Save(src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	ms.data = data
	return nil
}
