// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"blueprint-ai-api/internal/application/design"
	"blueprint-ai-api/internal/domain/entity"
	"blueprint-ai-api/internal/interfaces/http/dto"
	"blueprint-ai-api/pkg/errors"
	"blueprint-ai-api/pkg/logger"
)

// BlueprintHandler 蓝图设计处理器
type BlueprintHandler struct {
	service *design.Service
}

// NewBlueprintHandler 创建蓝图设计处理器
func NewBlueprintHandler(service *design.Service) *BlueprintHandler {
	return &BlueprintHandler{service: service}
}

// ListBuildingTypes 获取支持的建筑类型
// @Summary 获取建筑类型列表
// @Tags Blueprints
// @Produce json
// @Success 200 {object} dto.Response[dto.BuildingTypesResponse]
// @Router /v1/building-types [get]
func (h *BlueprintHandler) ListBuildingTypes(c *gin.Context) {
	dto.Success(c, dto.BuildingTypesResponse{
		BuildingTypes: entity.BuildingTypes(),
	})
}

// Generate 创建新会话并生成首版蓝图
// @Summary 生成蓝图
// @Tags Blueprints
// @Accept json
// @Produce json
// @Param body body dto.GenerateBlueprintRequest true "建筑需求"
// @Success 201 {object} dto.Response[dto.BlueprintResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/blueprints [post]
func (h *BlueprintHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Create(ctx, req.ToRequirements())
	if err != nil {
		h.renderError(c, err, "failed to generate blueprint")
		return
	}

	dto.Created(c, dto.ToBlueprintResponse(result))
}

// Iterate 基于用户反馈生成新版本
// @Summary 反馈迭代
// @Tags Blueprints
// @Accept json
// @Produce json
// @Param sid path string true "会话 ID"
// @Param body body dto.IterateBlueprintRequest true "用户反馈"
// @Success 200 {object} dto.Response[dto.BlueprintResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/blueprints/{sid}/iterate [post]
func (h *BlueprintHandler) Iterate(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sid")

	var req dto.IterateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Iterate(ctx, sessionID, req.Feedback)
	if err != nil {
		h.renderError(c, err, "failed to iterate blueprint")
		return
	}

	dto.Success(c, dto.ToBlueprintResponse(result))
}

// Optimize 按目标优化当前设计
// @Summary 目标优化
// @Tags Blueprints
// @Accept json
// @Produce json
// @Param sid path string true "会话 ID"
// @Param body body dto.OptimizeBlueprintRequest true "优化目标"
// @Success 200 {object} dto.Response[dto.BlueprintResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/blueprints/{sid}/optimize [post]
func (h *BlueprintHandler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sid")

	var req dto.OptimizeBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Optimize(ctx, sessionID, req.Goals)
	if err != nil {
		h.renderError(c, err, "failed to optimize blueprint")
		return
	}

	dto.Success(c, dto.ToBlueprintResponse(result))
}

// UpdateFloor 切换当前楼层视图
// @Summary 切换楼层视图
// @Tags Blueprints
// @Accept json
// @Produce json
// @Param sid path string true "会话 ID"
// @Param body body dto.UpdateFloorRequest true "楼层号"
// @Success 200 {object} dto.Response[dto.BlueprintResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/blueprints/{sid}/floor [put]
func (h *BlueprintHandler) UpdateFloor(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sid")

	var req dto.UpdateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.SetCurrentFloor(ctx, sessionID, req.FloorNumber)
	if err != nil {
		h.renderError(c, err, "failed to update floor")
		return
	}

	dto.Success(c, dto.ToBlueprintResponse(result))
}

// History 获取会话的版本历史
// @Summary 获取版本历史
// @Tags Blueprints
// @Produce json
// @Param sid path string true "会话 ID"
// @Success 200 {object} dto.Response[dto.HistoryResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/blueprints/{sid}/history [get]
func (h *BlueprintHandler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sid")

	session, err := h.service.History(ctx, sessionID)
	if err != nil {
		h.renderError(c, err, "failed to get history")
		return
	}

	dto.Success(c, dto.ToHistoryResponse(session))
}

// CurrentFloor 获取会话当前的楼层视图
// @Summary 获取当前楼层
// @Tags Blueprints
// @Produce json
// @Param sid path string true "会话 ID"
// @Success 200 {object} dto.Response[dto.CurrentFloorResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/blueprints/{sid}/floor [get]
func (h *BlueprintHandler) CurrentFloor(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sid")

	floor, err := h.service.CurrentFloor(ctx, sessionID)
	if err != nil {
		h.renderError(c, err, "failed to get current floor")
		return
	}

	dto.Success(c, dto.CurrentFloorResponse{
		SessionID:    sessionID,
		CurrentFloor: floor,
	})
}

func (h *BlueprintHandler) renderError(c *gin.Context, err error, fallbackMsg string) {
	if errors.IsAppError(err) {
		appErr := errors.AsAppError(err)
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, appErr.Detail)
		return
	}
	logger.Error(c.Request.Context(), fallbackMsg, err)
	dto.InternalError(c, fallbackMsg)
}
