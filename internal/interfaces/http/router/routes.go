package router

import (
	"blueprint-ai-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	blueprintHandler *handler.BlueprintHandler,
) {
	// 建筑类型目录
	v1.GET("/building-types", blueprintHandler.ListBuildingTypes)

	// 蓝图设计会话
	blueprints := v1.Group("/blueprints")
	{
		blueprints.POST("", blueprintHandler.Generate)
		blueprints.POST("/:sid/iterate", blueprintHandler.Iterate)
		blueprints.POST("/:sid/optimize", blueprintHandler.Optimize)
		blueprints.PUT("/:sid/floor", blueprintHandler.UpdateFloor)
		blueprints.GET("/:sid/floor", blueprintHandler.CurrentFloor)
		blueprints.GET("/:sid/history", blueprintHandler.History)
	}
}
