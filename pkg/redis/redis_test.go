package redis

import (
	"errors"
	"testing"
)

var _ IRedis = (*redisImpl)(nil)

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RedisConfig
		wantErr error
	}{
		{name: "missing host", cfg: RedisConfig{Port: 6379}, wantErr: ErrHostRequired},
		{name: "zero port", cfg: RedisConfig{Host: "localhost"}, wantErr: ErrInvalidPort},
		{name: "port out of range", cfg: RedisConfig{Host: "localhost", Port: 70000}, wantErr: ErrInvalidPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
