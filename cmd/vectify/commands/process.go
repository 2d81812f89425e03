package commands

import (
	"encoding/json"
	"os/signal"
	"syscall"

	service "github.com/sh5080/vectify-go/pkg/services"
	constants "github.com/sh5080/vectify-go/pkg/types"
	responseDto "github.com/sh5080/vectify-go/pkg/types/dtos/responses"
	structure "github.com/sh5080/vectify-go/pkg/types/structures"
	"github.com/spf13/cobra"
)

var processMode string

var processCmd = &cobra.Command{
	Use:   "process <imageUrl>",
	Short: "이미지 하나를 처리하고 결과 JSON을 출력합니다",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processMode, "mode", "m", constants.MODE_DRAWING, "처리 모드 (text | drawing | mixed)")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// CLI는 이력을 남기지 않으므로 저장소는 항상 인메모리
	config.Storage.Driver = "memory"
	services, err := service.NewServiceContainer(ctx, config)
	if err != nil {
		return err
	}
	defer services.Close()

	result, procErr := services.ProcessingService.ProcessDigitalization(ctx, structure.ProcessingRequest{
		SourceReference: args[0],
		Mode:            processMode,
	})
	if procErr != nil && !result.HasDrawing() {
		return procErr
	}

	out := struct {
		responseDto.ProcessDigitalizationResponse
		DrawingSource string `json:"drawingSource,omitempty"`
		Error         string `json:"error,omitempty"`
	}{
		ProcessDigitalizationResponse: responseDto.NewProcessDigitalizationResponse(result),
		DrawingSource:                 result.DrawingSource,
	}
	if procErr != nil {
		out.Error = procErr.Error()
	}

	return writeJSON(cmd, out)
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
