package commands

import (
	"os/signal"
	"syscall"

	"github.com/sh5080/vectify-go/pkg/serverless"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API 서버를 실행합니다",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			config.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serverless.Run(ctx, config)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "수신 포트 (기본값: PORT 환경 변수)")
	rootCmd.AddCommand(serveCmd)
}
