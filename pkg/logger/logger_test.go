package logger

import (
	"testing"

	"github.com/propdesk/credit-auction/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		lvl       string
		expectErr bool
	}{
		{name: "info level", lvl: "info", expectErr: false},
		{name: "debug level", lvl: "debug", expectErr: false},
		{name: "error level", lvl: "error", expectErr: false},
		{name: "unsupported level", lvl: "warnish", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
