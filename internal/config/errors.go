package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyBackendURL error if config backend.URL is empty.
	ErrEmptyBackendURL = errors.New("toml config backend.url can not be empty")

	// ErrUnknownSessionStoreDriver error if config sessionstore.driver is not a known driver.
	ErrUnknownSessionStoreDriver = errors.New("toml config sessionstore.driver must be memory, mysql or postgres")
)
