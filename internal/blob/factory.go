package blob

import (
	"fmt"
	"strings"

	appcfg "github.com/ayursetu/ayur-hub/internal/config"
)

type Logger interface {
	Printf(format string, v ...any)
}

// NewBlobStore resolves BLOB_MODE into a store. A nil store with mode=local
// means report bytes are kept inline with their metadata instead of being
// uploaded. In auto mode any S3 problem degrades to local; in forced s3 mode
// it is an error.
func NewBlobStore(cfg appcfg.BlobConfig, logger Logger) (Store, string, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = appcfg.BlobModeLocal
	}

	switch mode {
	case appcfg.BlobModeLocal:
		logf(logger, "INFO blob: mode=local (forced)")
		return nil, appcfg.BlobModeLocal, nil
	case appcfg.BlobModeAuto:
		return resolveAuto(cfg, logger)
	case appcfg.BlobModeS3:
		return resolveS3(cfg, logger)
	default:
		return nil, "", fmt.Errorf("unsupported blob mode: %s", mode)
	}
}

func resolveAuto(cfg appcfg.BlobConfig, logger Logger) (Store, string, error) {
	if !cfg.S3.IsConfigured() {
		level, code, msg := cfg.S3.Diagnostics()
		logf(logger, "%s blob.s3: code=%s %s", level, code, msg)
		logf(logger, "INFO blob.s3: %s", cfg.S3.DiagnosticsSummary())
		logf(logger, "INFO blob: mode=local (auto, S3 not configured)")
		return nil, appcfg.BlobModeLocal, nil
	}

	store, err := connectS3(cfg, logger)
	if err != nil {
		logf(logger, "WARN blob.s3: init_failed=%q, fallback=local", err.Error())
		return nil, appcfg.BlobModeLocal, nil
	}

	logf(logger, "INFO blob: mode=s3 (auto, configured)")
	return store, appcfg.BlobModeS3, nil
}

func resolveS3(cfg appcfg.BlobConfig, logger Logger) (Store, string, error) {
	if missing := cfg.S3.MissingRequired(); len(missing) > 0 {
		logf(logger, "FATAL blob.s3: code=s3_config_incomplete missing=%v", missing)
		logf(logger, "FATAL blob.s3: %s", cfg.S3.DiagnosticsSummary())
		return nil, "", fmt.Errorf("BLOB_MODE=s3 requested but missing required config: %s", strings.Join(missing, ", "))
	}

	store, err := connectS3(cfg, logger)
	if err != nil {
		logf(logger, "FATAL blob.s3: init_failed=%v", err)
		return nil, "", fmt.Errorf("BLOB_MODE=s3 init failed: %w", err)
	}

	logf(logger, "INFO blob: mode=s3 (forced)")
	return store, appcfg.BlobModeS3, nil
}

func connectS3(cfg appcfg.BlobConfig, logger Logger) (*S3Store, error) {
	logf(logger, "INFO blob.s3: code=s3_ready %s", cfg.S3.DiagnosticsSummary())
	return NewS3Store(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
}

func logf(logger Logger, format string, v ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, v...)
}
