package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSettingsApplyToAperLogger(t *testing.T) {
	level, reportCaller, out := Log.GetLevel(), Log.ReportCaller, Log.Out
	t.Cleanup(func() {
		SetLogLevel(level)
		SetReportCaller(reportCaller)
		SetOutput(out)
	})

	SetLogLevel(logrus.TraceLevel)
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())
	require.Equal(t, logrus.TraceLevel, AperLogger().GetLevel())

	SetReportCaller(true)
	require.True(t, AperLogger().ReportCaller)

	var buf bytes.Buffer
	SetOutput(&buf)
	AperLogger().Info("aper codec")
	CodecLog.Info("e2ap codec")
	require.Contains(t, buf.String(), "aper codec")
	require.Contains(t, buf.String(), "e2ap codec")
}
