package keyring

import (
	"errors"
	"fmt"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no token is stored in the keyring
	ErrNotFound = errors.New("token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetToken retrieves the API bearer token from the OS keyring.
// Returns ErrNotFound if no token is stored.
func GetToken() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.KeyringTokenUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetToken stores the API bearer token in the OS keyring.
func SetToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	err := keyring.Set(constants.AppName, constants.KeyringTokenUser, token)
	if err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the API bearer token from the OS keyring.
func DeleteToken() error {
	err := keyring.Delete(constants.AppName, constants.KeyringTokenUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty
	return err == nil || err == keyring.ErrNotFound
}
