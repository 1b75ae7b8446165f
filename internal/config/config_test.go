package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GO_ENV", "MAX_FILE_SIZE", "HUFFPACK_FORMAT_VERSION", "HUFFPACK_PROGRESS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	expect := Config{
		Port:          "8080",
		Environment:   "development",
		MaxFileSize:   50 * 1024 * 1024,
		FormatVersion: 2,
		Progress:      false,
	}
	if *cfg != expect {
		t.Errorf("wrong config:\n\texpect: %+v\n\tactual: %+v", expect, *cfg)
	}
	if cfg.IsProduction() {
		t.Errorf("development config reported as production")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GO_ENV", "production")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("HUFFPACK_FORMAT_VERSION", "1")
	t.Setenv("HUFFPACK_PROGRESS", "true")
	cfg := Load()
	expect := Config{
		Port:          "9000",
		Environment:   "production",
		MaxFileSize:   1024,
		FormatVersion: 1,
		Progress:      true,
	}
	if *cfg != expect {
		t.Errorf("wrong config:\n\texpect: %+v\n\tactual: %+v", expect, *cfg)
	}
	if !cfg.IsProduction() {
		t.Errorf("production config not reported as production")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("HUFFPACK_FORMAT_VERSION", "7")
	t.Setenv("HUFFPACK_PROGRESS", "maybe")
	cfg := Load()
	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("MaxFileSize = %d; want default", cfg.MaxFileSize)
	}
	if cfg.FormatVersion != 2 {
		t.Errorf("FormatVersion = %d; want 2", cfg.FormatVersion)
	}
	if cfg.Progress {
		t.Errorf("Progress = true; want false")
	}
}

func TestLoad_FormatVersionOutOfRange(t *testing.T) {
	for _, value := range []string{"257", "258", "-255", "0"} {
		t.Setenv("HUFFPACK_FORMAT_VERSION", value)
		if cfg := Load(); cfg.FormatVersion != 2 {
			t.Errorf("HUFFPACK_FORMAT_VERSION=%s: FormatVersion = %d; want 2", value, cfg.FormatVersion)
		}
	}
}
