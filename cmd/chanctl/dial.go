// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"chanproto.dev/chanio"
	chanjson "chanproto.dev/chanio/serdes/json"
)

var dialCmd = &cobra.Command{
	Use:   "dial",
	Short: "connect to a chanctl serve instance and echo stdin lines over it",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()
		cfg := currentConfig()

		conn, err := net.Dial("tcp", cfg.Listen)
		if err != nil {
			return fmt.Errorf("chanctl: dial: %w", err)
		}
		defer conn.Close()

		ch := chanio.NewChannel[line, line](conn, chanjson.New[line](), chanjson.New[line](),
			chanio.WithRetryDelay(cfg.RetryDelay),
			chanio.WithMaxPayload(cfg.MaxPayload),
			chanio.WithLogger(logger),
		)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := ch.Send(line{Text: scanner.Text()}); err != nil {
				return fmt.Errorf("chanctl: send: %w", err)
			}
			reply, err := ch.Recv()
			if err != nil {
				return fmt.Errorf("chanctl: recv: %w", err)
			}
			fmt.Println(reply.Text)
		}
		return scanner.Err()
	},
}
