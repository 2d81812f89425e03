package commands

import (
	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/sh5080/vectify-go/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	config  *configs.EnvConfig
)

var rootCmd = &cobra.Command{
	Use:   "vectify",
	Short: "Vectify - 손글씨/드로잉 디지털화 도구",
	Long: `Vectify는 업로드된 이미지에서 텍스트를 추출하고,
드로잉은 여러 공급자를 차례로 시도해 항상 이미지 결과를 만들어 냅니다.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := configs.Load()
		if err != nil {
			return err
		}
		config = loaded

		level := config.Server.LogLevel
		if verbose {
			level = "debug"
		}
		// CLI 출력(JSON)과 섞이지 않도록 로그는 stderr로
		utils.ConfigureLogger(level, "console", cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "디버그 로그 출력")
}

// Execute는 루트 명령을 실행합니다
func Execute() error {
	return rootCmd.Execute()
}
