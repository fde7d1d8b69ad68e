// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chanproto.dev/chanio"
	chanjson "chanproto.dev/chanio/serdes/json"
)

// line is the demo message type exchanged by chanctl: one text line per frame.
type line struct {
	Text string `json:"text"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "accept one connection and echo framed lines back to the sender",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()
		cfg := currentConfig()

		ln, err := net.Listen("tcp", cfg.Listen)
		if err != nil {
			return fmt.Errorf("chanctl: listen: %w", err)
		}
		defer ln.Close()
		logger.Info("chanctl: listening", zap.String("addr", cfg.Listen))

		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("chanctl: accept: %w", err)
		}
		defer conn.Close()

		ch := chanio.NewChannel[line, line](conn, chanjson.New[line](), chanjson.New[line](),
			chanio.WithRetryDelay(cfg.RetryDelay),
			chanio.WithMaxPayload(cfg.MaxPayload),
			chanio.WithLogger(logger),
		)

		for {
			msg, err := ch.Recv()
			if err != nil {
				logger.Warn("chanctl: recv failed", zap.Error(err))
				return err
			}
			logger.Info("chanctl: received", zap.String("text", msg.Text))
			if err := ch.Send(msg); err != nil {
				logger.Warn("chanctl: send failed", zap.Error(err))
				return err
			}
		}
	},
}
