package commands

import (
	"fmt"

	service "github.com/sh5080/vectify-go/pkg/services"
	"github.com/spf13/cobra"
)

var placeholderCmd = &cobra.Command{
	Use:   "placeholder <imageUrl>",
	Short: "파일 이름으로 라벨을 단 SVG 플레이스홀더 한 쌍을 출력합니다",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vector, raster, ok := service.RenderPlaceholder(args[0])
		if !ok {
			return fmt.Errorf("파일 이름을 알 수 없는 참조입니다: %s", args[0])
		}
		return writeJSON(cmd, map[string]string{
			"vectorUrl": vector,
			"pngUrl":    raster,
		})
	},
}

func init() {
	rootCmd.AddCommand(placeholderCmd)
}
