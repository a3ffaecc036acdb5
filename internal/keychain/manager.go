// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain stores the saved database DSN in the OS credential
// store. The DSN is the only secret dbctl manages; it is written by the
// connect command and read back during connection-string resolution.
//
// Native backends are used on every platform dbctl runs on: macOS
// Keychain, Windows Credential Manager, and Secret Service or pass on
// Linux, where database servers usually live. There is no file fallback.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance.
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides thread-safe access to the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "dbctl"

// KeyDSN is the keychain slot holding the saved connection string.
const KeyDSN = "db_dsn"

// NewManager creates a new keychain manager with the OS keyring opened.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance, creating it on
// first call. A failed initialization is retried on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}

	switch runtime.GOOS {
	case "windows":
		cfg.WinCredPrefix = ServiceName
	case "linux":
		cfg.LibSecretCollectionName = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "linux" {
			return nil, errors.New("no secret store available. Install a Secret Service provider (gnome-keyring) or 'pass'")
		}
		return nil, err
	}

	return ring, nil
}

// SaveDSN stores the database connection string in the keychain.
func (m *Manager) SaveDSN(dsn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{Key: KeyDSN, Data: []byte(dsn)})
}

// LoadDSN retrieves the saved connection string from the keychain.
func (m *Manager) LoadDSN() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyDSN)
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", errors.New("empty DSN in keychain")
	}
	return string(it.Data), nil
}

// ClearDSN removes the saved connection string from the keychain.
func (m *Manager) ClearDSN() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.ring.Remove(KeyDSN)
	return nil
}
