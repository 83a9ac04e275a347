package dto

import (
	"time"

	"blueprint-ai-api/internal/application/design"
	"blueprint-ai-api/internal/domain/entity"
)

// GenerateBlueprintRequest 首次生成请求
type GenerateBlueprintRequest struct {
	BuildingType    string   `json:"building_type" binding:"required"`
	TotalArea       float64  `json:"total_area" binding:"required,gt=0"`
	Floors          int      `json:"floors" binding:"required,gt=0"`
	Occupancy       string   `json:"occupancy" binding:"required"`
	SpecialFeatures []string `json:"special_features"`
	BudgetLevel     string   `json:"budget_level"`
}

// ToRequirements 转换为领域需求对象
func (r *GenerateBlueprintRequest) ToRequirements() *entity.BuildingRequirements {
	return entity.NewBuildingRequirements(
		r.BuildingType, r.TotalArea, r.Floors, r.Occupancy,
		r.SpecialFeatures, r.BudgetLevel,
	)
}

// IterateBlueprintRequest 反馈迭代请求
type IterateBlueprintRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// OptimizeBlueprintRequest 目标优化请求
type OptimizeBlueprintRequest struct {
	Goals []string `json:"goals" binding:"required,min=1"`
}

// UpdateFloorRequest 楼层视图切换请求
type UpdateFloorRequest struct {
	FloorNumber int `json:"floor_number" binding:"required,gt=0"`
}

// BlueprintResponse 设计操作响应
type BlueprintResponse struct {
	SessionID string            `json:"session_id"`
	Blueprint *entity.Blueprint `json:"blueprint"`
	Version   int               `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message"`
}

// ToBlueprintResponse 由服务结果构建响应
func ToBlueprintResponse(res *design.Result) BlueprintResponse {
	return BlueprintResponse{
		SessionID: res.SessionID,
		Blueprint: res.Blueprint,
		Version:   res.Version,
		Timestamp: res.Timestamp,
		Message:   res.Message,
	}
}

// BuildingTypesResponse 已知建筑类型清单
type BuildingTypesResponse struct {
	BuildingTypes []string `json:"building_types"`
}

// VersionRecord 历史中的完整版本记录，含当时的蓝图快照
type VersionRecord struct {
	Version      int               `json:"version"`
	Blueprint    *entity.Blueprint `json:"blueprint"`
	Feedback     string            `json:"feedback"`
	Timestamp    time.Time         `json:"timestamp"`
	ChangesMade  []string          `json:"changes_made"`
	CurrentFloor int               `json:"current_floor"`
}

// HistoryResponse 会话历史响应
type HistoryResponse struct {
	SessionID    string          `json:"session_id"`
	Versions     []VersionRecord `json:"versions"`
	CurrentFloor int             `json:"current_floor"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToHistoryResponse 由会话构建历史响应，每个版本都带完整蓝图快照
func ToHistoryResponse(session *entity.DesignSession) HistoryResponse {
	versions := make([]VersionRecord, 0, len(session.Versions))
	for _, v := range session.Versions {
		versions = append(versions, VersionRecord{
			Version:      v.Version,
			Blueprint:    v.Blueprint,
			Feedback:     v.Feedback,
			Timestamp:    v.Timestamp,
			ChangesMade:  v.ChangesMade,
			CurrentFloor: v.CurrentFloor,
		})
	}
	return HistoryResponse{
		SessionID:    session.ID,
		Versions:     versions,
		CurrentFloor: session.CurrentFloor,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

// CurrentFloorResponse 当前楼层视图响应
type CurrentFloorResponse struct {
	SessionID    string `json:"session_id"`
	CurrentFloor int    `json:"current_floor"`
}
