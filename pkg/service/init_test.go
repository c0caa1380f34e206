package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/e2ap/pkg/factory"
	"github.com/free5gc/e2ap/pkg/ric"
)

func TestNewApp(t *testing.T) {
	cfg := &factory.Config{
		Info: &factory.Info{Version: factory.E2apExpectedConfigVersion},
		Configuration: &factory.Configuration{
			Limits: ric.Limits{MaxActions: 4},
		},
		Logger: &factory.Logger{Enable: true, Level: "debug"},
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.Same(t, cfg, app.Config())
	require.Equal(t, 4, app.Procedures().Limits().MaxActions)
	require.Equal(t, ric.DefaultMaxOctetStringSize, app.Procedures().Limits().MaxOctetStringSize)

	app.SetLogLevel("not-a-level")
	require.Equal(t, "debug", cfg.GetLogLevel())
}

func TestNewAppRejectsLimits(t *testing.T) {
	cfg := &factory.Config{
		Configuration: &factory.Configuration{
			Limits: ric.Limits{MaxActions: 17},
		},
	}

	_, err := NewApp(cfg)
	require.Error(t, err)
}
