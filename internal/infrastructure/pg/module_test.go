package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    string
	}{
		{name: "без таймаута", timeout: 0, want: "host=db port=5432 user=u password=p dbname=arweavecost sslmode=disable"},
		{name: "таймаут в секундах", timeout: 5 * time.Second, want: "host=db port=5432 user=u password=p dbname=arweavecost sslmode=disable connect_timeout=5"},
		{name: "меньше секунды", timeout: 300 * time.Millisecond, want: "host=db port=5432 user=u password=p dbname=arweavecost sslmode=disable connect_timeout=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "arweavecost", SSLMode: "disable", ConnectTimeout: tt.timeout}
			assert.Equal(t, tt.want, cfg.DSN())
		})
	}
}
