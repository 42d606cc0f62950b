package installrecord

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	regKeyPath = `Software\TechDeck\TechDeck`

	regValueInstallPath = "InstallPath"
	regValueVersion     = "Version"
	regValueDataPath    = "DataPath"
	regValueInstallID   = "InstallID"
)

// NewDefaultStore returns the registry backed store. The record lives under
// HKCU so no elevation is required to read or write it.
func NewDefaultStore(dataRoot string) Store {
	return &registryStore{keyPath: regKeyPath}
}

type registryStore struct {
	keyPath string
}

func (s *registryStore) Read() (*Record, error) {
	regKey, err := registry.OpenKey(registry.CURRENT_USER, s.keyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open registry key %s: %w", s.keyPath, err)
	}
	defer regKey.Close()

	record := &Record{}
	values := map[string]*string{
		regValueInstallPath: &record.InstallPath,
		regValueVersion:     &record.Version,
		regValueDataPath:    &record.DataPath,
		regValueInstallID:   &record.InstallID,
	}
	for name, target := range values {
		value, _, err := regKey.GetStringValue(name)
		if err != nil {
			if errors.Is(err, registry.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read registry value %s: %w", name, err)
		}
		*target = value
	}

	return record, nil
}

func (s *registryStore) Write(record *Record) error {
	regKey, _, err := registry.CreateKey(registry.CURRENT_USER, s.keyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create registry key %s: %w", s.keyPath, err)
	}
	defer regKey.Close()

	values := map[string]string{
		regValueInstallPath: record.InstallPath,
		regValueVersion:     record.Version,
		regValueDataPath:    record.DataPath,
		regValueInstallID:   record.InstallID,
	}
	for name, value := range values {
		if err := regKey.SetStringValue(name, value); err != nil {
			return fmt.Errorf("set registry value %s: %w", name, err)
		}
	}

	return nil
}

func (s *registryStore) Delete() error {
	if err := registry.DeleteKey(registry.CURRENT_USER, s.keyPath); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("delete registry key %s: %w", s.keyPath, err)
	}
	return nil
}
