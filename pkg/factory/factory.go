/*
 * E2AP Configuration Factory
 */

package factory

import (
	"os"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/free5gc/e2ap/internal/logger"
)

var E2apConfig *Config

func InitConfigFactory(f string, cfg *Config) error {
	if f == "" {
		// Use default config path
		f = E2apDefaultConfigPath
	}

	if content, err := os.ReadFile(f); err != nil {
		return errors.Errorf("[Factory] %+v", err)
	} else {
		logger.CfgLog.Infof("Read config from [%s]", f)
		if yamlErr := yaml.Unmarshal(content, cfg); yamlErr != nil {
			return errors.Errorf("[Factory] %+v", yamlErr)
		}
	}

	return nil
}

func ReadConfig(cfgPath string) (*Config, error) {
	cfg := &Config{}
	if err := InitConfigFactory(cfgPath, cfg); err != nil {
		return nil, errors.Errorf("ReadConfig [%s] Error: %+v", cfgPath, err)
	}
	if _, err := cfg.Validate(); err != nil {
		var validErrs govalidator.Errors
		if errors.As(err, &validErrs) {
			for _, validErr := range validErrs.Errors() {
				logger.CfgLog.Errorf("%+v", validErr)
			}
		} else {
			logger.CfgLog.Errorf("%+v", err)
		}

		logger.CfgLog.Errorf("[-- PLEASE REFER TO SAMPLE CONFIG FILE COMMENTS --]")
		return nil, errors.Errorf("Config validate Error")
	}

	return cfg, nil
}

func CheckConfigVersion(cfg *Config) error {
	currentVersion := cfg.GetVersion()

	if currentVersion != E2apExpectedConfigVersion {
		return errors.Errorf("config version is [%s], but expected is [%s].",
			currentVersion, E2apExpectedConfigVersion)
	}

	logger.CfgLog.Infof("config version [%s]", currentVersion)

	return nil
}
