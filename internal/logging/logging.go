package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process-wide sugared logger. mode is "prod" for JSON
// output, anything else gets the human-readable development encoder.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// NewNop returns a logger that discards everything. Tests use it.
func NewNop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
