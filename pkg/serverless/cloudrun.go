package serverless

import (
	"github.com/sh5080/vectify-go/pkg/configs"
	"github.com/sh5080/vectify-go/pkg/utils"
)

// CloudRunMain은 PORT 환경 변수로 앱을 실행합니다
func CloudRunMain() {
	port := configs.GetConfig().Server.Port
	if err := GetApp().Listen(":" + port); err != nil {
		utils.Fatal("serverless", "서버 실행 실패: %v", err)
	}
}
