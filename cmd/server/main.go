package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/sh5080/vectify-go/pkg/serverless"
	"github.com/sh5080/vectify-go/pkg/utils"
)

func main() {
	config := configs.GetConfig()
	utils.ConfigureLogger(config.Server.LogLevel, config.Server.LogFormat, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serverless.Run(ctx, config); err != nil {
		utils.Fatal("server", "서버 실행 실패: %v", err)
	}
}
