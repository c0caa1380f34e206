package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/factory"
	"github.com/free5gc/e2ap/pkg/ric"
	"github.com/free5gc/e2ap/pkg/service"
	"github.com/free5gc/util/version"
)

func main() {
	defer func() {
		if p := recover(); p != nil {
			// Print stack for panic to log. Fatalf() will let program exit.
			logger.MainLog.Fatalf("panic: %v\n%s", p, string(debug.Stack()))
		}
	}()

	app := newCLI()
	if err := app.Run(os.Args); err != nil {
		logger.MainLog.Errorf("E2AP Run Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	app := cli.NewApp()
	app.Name = "e2ap"
	app.Usage = "E2AP RIC procedure encoder / decoder"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Load configuration from `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode the configured subscription, subscription-delete or control request as hex",
			ArgsUsage: "subscription|subscription-delete|control",
			Action:    encodeAction,
		},
		{
			Name:      "decode",
			Usage:     "Decode a hex encoded E2AP-PDU and print it as JSON",
			ArgsUsage: "HEX",
			Action:    decodeAction,
		},
		{
			Name:   "serve",
			Usage:  "Run the debug HTTP API",
			Action: serveAction,
		},
	}
	return app
}

func newApp(c *cli.Context) (*service.E2apApp, error) {
	logger.MainLog.Infoln(c.App.Name)
	logger.MainLog.Infoln("E2AP version: ", version.GetVersion())

	cfgPath := c.GlobalString("config")
	if cfgPath != "" {
		var err error
		if cfgPath, err = filepath.Abs(cfgPath); err != nil {
			logger.CfgLog.Errorf("%+v", err)
			return nil, errors.Errorf("Failed to initialize !!")
		}
	}

	cfg, err := factory.ReadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	factory.E2apConfig = cfg

	if err := factory.CheckConfigVersion(cfg); err != nil {
		return nil, err
	}

	return service.NewApp(cfg)
}

func encodeAction(c *cli.Context) error {
	e2ap, err := newApp(c)
	if err != nil {
		return err
	}
	p := e2ap.Procedures()
	cfg := e2ap.Config()

	var b []byte
	switch c.Args().First() {
	case "subscription":
		template := cfg.GetSubscriptionTemplate()
		if template == nil {
			return errors.New("no subscription template configured")
		}
		req, err := template.ToRequest()
		if err != nil {
			return err
		}
		b, err = p.EncodeSubscriptionRequest(req.RequestID, req.RANFunctionID, req.EventTriggerDefinition, req.Actions)
		if err != nil {
			return err
		}
	case "subscription-delete":
		template := cfg.GetSubscriptionTemplate()
		if template == nil {
			return errors.New("no subscription template configured")
		}
		b, err = p.EncodeSubscriptionDeleteRequest(template.RequestID, template.RANFunctionID)
		if err != nil {
			return err
		}
	case "control":
		template := cfg.GetControlTemplate()
		if template == nil {
			return errors.New("no control template configured")
		}
		req, err := template.ToRequest()
		if err != nil {
			return err
		}
		b, err = p.EncodeControlRequest(req.RequestID, req.RANFunctionID,
			req.CallProcessID, req.Header, req.Message, req.AckRequest)
		if err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown message [%s]", c.Args().First())
	}

	fmt.Fprintln(c.App.Writer, hex.EncodeToString(b))
	return nil
}

func decodeAction(c *cli.Context) error {
	e2ap, err := newApp(c)
	if err != nil {
		return err
	}

	b, err := hex.DecodeString(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return errors.Wrap(err, "decode hex argument")
	}

	msg, err := e2ap.Procedures().Decode(b)
	if err != nil {
		return err
	}
	if ind, ok := msg.Record.(*ric.Indication); ok {
		defer ind.Release()
	}

	out, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(out))
	return nil
}

func serveAction(c *cli.Context) error {
	e2ap, err := newApp(c)
	if err != nil {
		return err
	}
	e2ap.Start()
	return nil
}
