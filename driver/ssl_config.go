package driver

import (
	"fmt"

	"discussion-fetcher/config"
	logger "discussion-fetcher/utils/logger"
)

// ValidateSSLConfig rejects unknown sslmodes and verifying modes without a root certificate.
// A client certificate needs its key and the other way round.
func ValidateSSLConfig(cfg config.DatabaseConfig) error {
	switch cfg.SSLMode {
	case "disable":
		logger.Logger.Warn("SSL is disabled - this is not recommended for production")
	case "allow", "prefer":
		logger.Logger.Info("SSL mode allows fallback to non-encrypted connections", "sslmode", cfg.SSLMode)
	case "require":
		logger.Logger.Info("SSL required but certificate validation disabled")
	case "verify-ca", "verify-full":
		if cfg.SSLRootCert == "" {
			return fmt.Errorf("SSL root certificate required for mode %s", cfg.SSLMode)
		}
	default:
		return fmt.Errorf("invalid SSL mode: %q", cfg.SSLMode)
	}

	if (cfg.SSLCert == "") != (cfg.SSLKey == "") {
		return fmt.Errorf("SSL client certificate and key must be set together")
	}
	return nil
}
