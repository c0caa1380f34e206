package logger

import (
	"io"

	"github.com/sirupsen/logrus"

	aperLogger "github.com/free5gc/aper/logger"
	logger_util "github.com/free5gc/util/logger"
)

var (
	Log        *logrus.Logger
	NfLog      *logrus.Entry
	MainLog    *logrus.Entry
	InitLog    *logrus.Entry
	CfgLog     *logrus.Entry
	E2apLog    *logrus.Entry
	CodecLog   *logrus.Entry
	SBILog     *logrus.Entry
	MetricsLog *logrus.Entry
)

func init() {
	fieldsOrder := []string{
		logger_util.FieldNF,
		logger_util.FieldCategory,
	}

	Log = logger_util.New(fieldsOrder)
	NfLog = Log.WithField(logger_util.FieldNF, "E2AP")
	MainLog = NfLog.WithField(logger_util.FieldCategory, "Main")
	InitLog = NfLog.WithField(logger_util.FieldCategory, "Init")
	CfgLog = NfLog.WithField(logger_util.FieldCategory, "CFG")
	E2apLog = NfLog.WithField(logger_util.FieldCategory, "E2AP")
	CodecLog = NfLog.WithField(logger_util.FieldCategory, "Codec")
	SBILog = NfLog.WithField(logger_util.FieldCategory, "SBI")
	MetricsLog = NfLog.WithField(logger_util.FieldCategory, "Metrics")
}

// AperLogger is the logger of the PER codec library. Level, caller
// reporting and output set here apply to it as well.
func AperLogger() *logrus.Logger {
	return aperLogger.AperLog.Logger
}

func SetLogLevel(level logrus.Level) {
	Log.SetLevel(level)
	AperLogger().SetLevel(level)
}

func SetReportCaller(enable bool) {
	Log.SetReportCaller(enable)
	AperLogger().SetReportCaller(enable)
}

func SetOutput(out io.Writer) {
	Log.SetOutput(out)
	AperLogger().SetOutput(out)
}
