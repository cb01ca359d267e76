package config

import (
	"reflect"
	"testing"
	"time"
)

func TestGetHelpers(t *testing.T) {
	t.Setenv("TP_STR", "value")
	t.Setenv("TP_DUR", "90s")
	t.Setenv("TP_BAD_DUR", "soon")
	t.Setenv("TP_LIST", " a, ,b ,c")

	if got := Get("TP_STR", "x"); got != "value" {
		t.Fatalf("Get = %q", got)
	}
	if got := Get("TP_MISSING", "x"); got != "x" {
		t.Fatalf("Get fallback = %q", got)
	}
	if got := GetDuration("TP_DUR", time.Second); got != 90*time.Second {
		t.Fatalf("GetDuration = %v", got)
	}
	if got := GetDuration("TP_BAD_DUR", time.Second); got != time.Second {
		t.Fatalf("GetDuration fallback = %v", got)
	}
	if got := GetList("TP_LIST", nil); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GetList = %v", got)
	}
}

func TestLoadValidatesDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for postgres without DATABASE_URL")
	}

	t.Setenv("DB_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "plans.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "plans.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
}
