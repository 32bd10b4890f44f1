package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps the buyer profile as a JSON file on disk, the CLI's
// stand-in for the browser's saved address.
type FileStore struct {
	Path string
}

func (s *FileStore) Load() (*Profile, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FileStore) Save(p Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0o600)
}
