/*
 * E2AP Configuration Factory
 */

package factory

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/ric"
)

const (
	E2apExpectedConfigVersion = "1.0.0"
	E2apDefaultConfigPath     = "./config/e2apcfg.yaml"
	E2apDefaultBindingIPv4    = "127.0.0.1"
	E2apDefaultPort           = 8000
)

type Config struct {
	Info          *Info          `yaml:"info" valid:"required"`
	Configuration *Configuration `yaml:"configuration" valid:"required"`
	Logger        *Logger        `yaml:"logger" valid:"optional"`
	sync.RWMutex
}

func (c *Config) Validate() (bool, error) {
	if info := c.Info; info != nil {
		if result, err := info.validate(); err != nil {
			return result, err
		}
	}

	if configuration := c.Configuration; configuration != nil {
		if result, err := configuration.validate(); err != nil {
			return result, err
		}
	}

	if logger := c.Logger; logger != nil {
		if result, err := logger.validate(); err != nil {
			return result, err
		}
	}

	result, err := govalidator.ValidateStruct(c)
	return result, appendInvalid(err)
}

type Logger struct {
	Enable       bool   `yaml:"enable" valid:"type(bool)"`
	Level        string `yaml:"level" valid:"required,in(trace|debug|info|warn|error|fatal|panic)"`
	ReportCaller bool   `yaml:"reportCaller" valid:"type(bool)"`
}

func (l *Logger) validate() (bool, error) {
	result, err := govalidator.ValidateStruct(l)
	return result, appendInvalid(err)
}

type Info struct {
	Version     string `yaml:"version,omitempty" valid:"type(string),required"`
	Description string `yaml:"description,omitempty" valid:"type(string),optional"`
}

func (i *Info) validate() (bool, error) {
	result, err := govalidator.ValidateStruct(i)
	return result, appendInvalid(err)
}

type Configuration struct {
	Limits       ric.Limits            `yaml:"limits" valid:"optional"`
	Sbi          *Sbi                  `yaml:"sbi" valid:"optional"`
	Subscription *SubscriptionTemplate `yaml:"subscription" valid:"optional"`
	Control      *ControlTemplate      `yaml:"control" valid:"optional"`
}

func (c *Configuration) validate() (bool, error) {
	if sbi := c.Sbi; sbi != nil {
		if result, err := sbi.validate(); err != nil {
			return result, err
		}
	}

	if subscription := c.Subscription; subscription != nil {
		if result, err := subscription.validate(c.Limits.Normalize()); err != nil {
			return result, err
		}
	}

	if control := c.Control; control != nil {
		if result, err := control.validate(); err != nil {
			return result, err
		}
	}

	result, err := govalidator.ValidateStruct(c)
	return result, appendInvalid(err)
}

type Sbi struct {
	BindingIPv4 string `yaml:"bindingIPv4,omitempty" valid:"host,optional"`
	Port        int    `yaml:"port,omitempty" valid:"port,optional"`
}

func (s *Sbi) validate() (bool, error) {
	result, err := govalidator.ValidateStruct(s)
	return result, appendInvalid(err)
}

// SubscriptionTemplate is the RIC Subscription Request the CLI and the
// debug API start from. Octet strings are written in hex.
type SubscriptionTemplate struct {
	RequestID     ric.RequestID    `yaml:"requestID" valid:"optional"`
	RANFunctionID int64            `yaml:"ranFunctionID" valid:"range(0|4095),optional"`
	EventTrigger  string           `yaml:"eventTrigger" valid:"hexadecimal,optional"`
	Actions       []ActionTemplate `yaml:"actions" valid:"optional"`
}

type ActionTemplate struct {
	ActionID         int64                 `yaml:"actionID" valid:"range(0|255),optional"`
	ActionType       ric.ActionType        `yaml:"actionType" valid:"range(0|2),optional"`
	Definition       string                `yaml:"definition,omitempty" valid:"hexadecimal,optional"`
	SubsequentAction *ric.SubsequentAction `yaml:"subsequentAction,omitempty" valid:"optional"`
}

func (s *SubscriptionTemplate) validate(limits ric.Limits) (bool, error) {
	if err := limits.CheckActions(len(s.Actions)); err != nil {
		return false, err
	}
	for i := range s.Actions {
		if result, err := govalidator.ValidateStruct(&s.Actions[i]); err != nil {
			return result, appendInvalid(err)
		}
	}
	result, err := govalidator.ValidateStruct(s)
	return result, appendInvalid(err)
}

// ToRequest converts the template into a request record.
func (s *SubscriptionTemplate) ToRequest() (*ric.SubscriptionRequest, error) {
	eventTrigger, err := decodeHex("eventTrigger", s.EventTrigger)
	if err != nil {
		return nil, err
	}
	req := &ric.SubscriptionRequest{
		RequestID:              s.RequestID,
		RANFunctionID:          s.RANFunctionID,
		EventTriggerDefinition: eventTrigger,
		Actions:                make([]ric.Action, 0, len(s.Actions)),
	}
	for _, a := range s.Actions {
		action := ric.Action{
			ActionID:         a.ActionID,
			ActionType:       a.ActionType,
			SubsequentAction: a.SubsequentAction,
		}
		if a.Definition != "" {
			if action.Definition, err = decodeHex("definition", a.Definition); err != nil {
				return nil, err
			}
		}
		req.Actions = append(req.Actions, action)
	}
	return req, nil
}

// ControlTemplate is the RIC Control Request the CLI and the debug API
// start from. A missing ackRequest omits the IE, as does an empty
// callProcessID.
type ControlTemplate struct {
	RequestID     ric.RequestID `yaml:"requestID" valid:"optional"`
	RANFunctionID int64         `yaml:"ranFunctionID" valid:"range(0|4095),optional"`
	CallProcessID string        `yaml:"callProcessID,omitempty" valid:"hexadecimal,optional"`
	Header        string        `yaml:"header" valid:"hexadecimal,optional"`
	Message       string        `yaml:"message" valid:"hexadecimal,optional"`
	AckRequest    *int64        `yaml:"ackRequest,omitempty" valid:"optional"`
}

func (c *ControlTemplate) validate() (bool, error) {
	if ack := c.AckRequest; ack != nil && (*ack < 0 || *ack > 2) {
		return false, errors.Errorf("Invalid ackRequest: %d should be in range 0..2", *ack)
	}
	result, err := govalidator.ValidateStruct(c)
	return result, appendInvalid(err)
}

func (c *ControlTemplate) ToRequest() (*ric.ControlRequest, error) {
	req := &ric.ControlRequest{
		RequestID:     c.RequestID,
		RANFunctionID: c.RANFunctionID,
		AckRequest:    ric.ControlAckRequestOmit,
	}
	var err error
	if c.CallProcessID != "" {
		if req.CallProcessID, err = decodeHex("callProcessID", c.CallProcessID); err != nil {
			return nil, err
		}
	}
	if req.Header, err = decodeHex("header", c.Header); err != nil {
		return nil, err
	}
	if req.Message, err = decodeHex("message", c.Message); err != nil {
		return nil, err
	}
	if c.AckRequest != nil {
		req.AckRequest = *c.AckRequest
	}
	return req, nil
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return b, nil
}

func appendInvalid(err error) error {
	var errs govalidator.Errors

	if err == nil {
		return nil
	}

	es := err.(govalidator.Errors).Errors()
	for _, e := range es {
		errs = append(errs, fmt.Errorf("Invalid %w", e))
	}

	return error(errs)
}

func (c *Config) GetVersion() string {
	c.RLock()
	defer c.RUnlock()

	if c.Info != nil && c.Info.Version != "" {
		return c.Info.Version
	}
	return ""
}

func (c *Config) SetLogEnable(enable bool) {
	c.Lock()
	defer c.Unlock()

	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		c.Logger = &Logger{
			Enable: enable,
			Level:  "info",
		}
	} else {
		c.Logger.Enable = enable
	}
}

func (c *Config) SetLogLevel(level string) {
	c.Lock()
	defer c.Unlock()

	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		c.Logger = &Logger{
			Level: level,
		}
	} else {
		c.Logger.Level = level
	}
}

func (c *Config) SetLogReportCaller(reportCaller bool) {
	c.Lock()
	defer c.Unlock()

	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		c.Logger = &Logger{
			Level:        "info",
			ReportCaller: reportCaller,
		}
	} else {
		c.Logger.ReportCaller = reportCaller
	}
}

func (c *Config) GetLogEnable() bool {
	c.RLock()
	defer c.RUnlock()
	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		return false
	}
	return c.Logger.Enable
}

func (c *Config) GetLogLevel() string {
	c.RLock()
	defer c.RUnlock()
	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		return "info"
	}
	return c.Logger.Level
}

func (c *Config) GetLogReportCaller() bool {
	c.RLock()
	defer c.RUnlock()
	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		return false
	}
	return c.Logger.ReportCaller
}

func (c *Config) GetLimits() ric.Limits {
	c.RLock()
	defer c.RUnlock()
	if c.Configuration == nil {
		return ric.DefaultLimits()
	}
	return c.Configuration.Limits.Normalize()
}

func (c *Config) GetSbiBindingAddr() string {
	c.RLock()
	defer c.RUnlock()
	bindingIPv4, port := E2apDefaultBindingIPv4, E2apDefaultPort
	if c.Configuration != nil && c.Configuration.Sbi != nil {
		if c.Configuration.Sbi.BindingIPv4 != "" {
			bindingIPv4 = c.Configuration.Sbi.BindingIPv4
		}
		if c.Configuration.Sbi.Port != 0 {
			port = c.Configuration.Sbi.Port
		}
	}
	return fmt.Sprintf("%s:%d", bindingIPv4, port)
}

// GetSubscriptionTemplate returns a private copy of the configured template,
// or nil when none is configured.
func (c *Config) GetSubscriptionTemplate() *SubscriptionTemplate {
	c.RLock()
	defer c.RUnlock()
	if c.Configuration == nil || c.Configuration.Subscription == nil {
		return nil
	}
	return deepcopy.Copy(c.Configuration.Subscription).(*SubscriptionTemplate)
}

func (c *Config) GetControlTemplate() *ControlTemplate {
	c.RLock()
	defer c.RUnlock()
	if c.Configuration == nil || c.Configuration.Control == nil {
		return nil
	}
	return deepcopy.Copy(c.Configuration.Control).(*ControlTemplate)
}
