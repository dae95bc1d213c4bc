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

	"github.com/spf13/cobra"
)

var cmdAutoload = &cobra.Command{
	Use:   "autoload",
	Short: "Discover the chassis structure and print the resources and attributes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := loadCommandContext(contextFile)
		if err != nil {
			return err
		}
		driver, err := newDriver(cmdCtx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer driver.Close()

		result, err := driver.GetInventory(cmdCtx.autoloadContext())
		if err != nil {
			return err
		}
		return printYaml(cmd.OutOrStdout(), result)
	},
}

var cmdConnect = &cobra.Command{
	Use:   "connect",
	Short: "Re-wire the connectors of the context onto the chassis ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := loadCommandContext(contextFile)
		if err != nil {
			return err
		}
		driver, err := newDriver(cmdCtx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer driver.Close()

		result, err := driver.ConnectChildResources(cmdCtx.resourceContext())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	},
}
