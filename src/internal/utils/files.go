package utils

import (
	"io"

	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
)

// CloseOrWarn closes the given closer and logs a warning on failure.
func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}
