// Copyright (c) 2019 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/ligato/cn-infra/config"
	"github.com/ligato/cn-infra/logging"
	"github.com/spf13/cobra"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

var (
	contextFile string
	configFile  string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "ixvm-shell",
	Short:         "Run IxVM virtual chassis driver commands against a controller",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contextFile, "context", "c", "", "YAML file with the command context")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "driver configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	rootCmd.MarkPersistentFlagRequired("context")

	rootCmd.AddCommand(cmdAutoload)
	rootCmd.AddCommand(cmdConnect)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newDriver loads the driver configuration and initializes the driver for the
// resource of the context.
func newDriver(cmdCtx *commandContext, out io.Writer) (*vchassis.Driver, error) {
	cfg := vchassis.DefaultConfig()
	if configFile != "" {
		if err := config.ParseConfigFromYamlFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load driver config %s: %v", configFile, err)
		}
	}

	log := logging.ForPlugin("ixvm-vchassis")
	if verbose {
		log.SetLevel(logging.DebugLevel)
	}

	sandbox := NewLocalSandbox(cmdCtx, out)
	driver := vchassis.NewPlugin(vchassis.UseConfig(cfg), vchassis.UseDeps(func(deps *vchassis.Deps) {
		deps.Log = log
		deps.SandboxAPI = sandbox.Provider()
	}))
	if err := driver.Init(); err != nil {
		return nil, err
	}
	if _, err := driver.Initialize(api.InitCommandContext{Resource: cmdCtx.Resource}); err != nil {
		driver.Close()
		return nil, err
	}
	return driver, nil
}

// printYaml writes v to out as a YAML document.
func printYaml(out io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "---\n%s", data)
	return err
}
