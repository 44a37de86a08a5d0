package config

import "testing"

func fullS3Config() S3Config {
	return S3Config{
		Endpoint:        "https://s3.ap-south-1.amazonaws.com",
		Region:          "ap-south-1",
		Bucket:          "bucket",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		PublicBaseURL:   "https://s3.ap-south-1.amazonaws.com/bucket",
	}
}

func TestS3ConfigMissingRequired(t *testing.T) {
	t.Run("complete config reports nothing missing", func(t *testing.T) {
		if missing := fullS3Config().MissingRequired(); len(missing) != 0 {
			t.Fatalf("expected no missing fields, got %v", missing)
		}
		if !fullS3Config().IsConfigured() {
			t.Fatal("expected IsConfigured=true")
		}
	})

	t.Run("empty config reports everything missing", func(t *testing.T) {
		cfg := S3Config{}
		if cfg.IsConfigured() {
			t.Fatal("expected IsConfigured=false for empty config")
		}
		if missing := cfg.MissingRequired(); len(missing) != 6 {
			t.Fatalf("expected 6 missing fields, got %v", missing)
		}
	})

	t.Run("partial config names the gaps in order", func(t *testing.T) {
		cfg := S3Config{
			Endpoint: "https://s3.ap-south-1.amazonaws.com",
			Bucket:   "bucket",
		}

		want := []string{"S3_REGION", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "S3_PUBLIC_BASE_URL"}
		missing := cfg.MissingRequired()
		if len(missing) != len(want) {
			t.Fatalf("expected %d missing fields, got %v", len(want), missing)
		}
		for i := range want {
			if missing[i] != want[i] {
				t.Fatalf("missing[%d] = %s, want %s", i, missing[i], want[i])
			}
		}
	})
}

func TestS3ConfigDiagnostics(t *testing.T) {
	tests := []struct {
		name      string
		cfg       S3Config
		wantLevel string
		wantCode  string
	}{
		{
			name:      "not configured",
			cfg:       S3Config{},
			wantLevel: "INFO",
			wantCode:  "s3_not_configured",
		},
		{
			name:      "endpoint only",
			cfg:       S3Config{Endpoint: "https://s3.ap-south-1.amazonaws.com"},
			wantLevel: "WARN",
			wantCode:  "s3_partial_config",
		},
		{
			name: "missing region and public base URL",
			cfg: S3Config{
				Endpoint:        "https://s3.ap-south-1.amazonaws.com",
				Bucket:          "bucket",
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
			},
			wantLevel: "WARN",
			wantCode:  "s3_partial_config",
		},
		{
			name:      "ready",
			cfg:       fullS3Config(),
			wantLevel: "INFO",
			wantCode:  "s3_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, code, _ := tt.cfg.Diagnostics()
			if level != tt.wantLevel || code != tt.wantCode {
				t.Fatalf("got %s/%s, want %s/%s", level, code, tt.wantLevel, tt.wantCode)
			}
		})
	}
}
