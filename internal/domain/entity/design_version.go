package entity

import (
	"time"
)

// 版本记录使用的触发说明与变更描述常量
const (
	FeedbackInitialGeneration = "Initial generation"

	ChangeInitialCreation         = "Initial creation"
	ChangeUserFeedbackIntegration = "User feedback integration"
	ChangeDesignOptimization      = "Design optimization"
)

// DesignVersion 会话历史中的一个设计快照
type DesignVersion struct {
	Version      int        `json:"version"`
	Blueprint    *Blueprint `json:"blueprint"`
	Feedback     string     `json:"feedback"`
	Timestamp    time.Time  `json:"timestamp"`
	ChangesMade  []string   `json:"changes_made"`
	CurrentFloor int        `json:"current_floor"`
}

// DesignSession 一个会话的完整状态：追加式的版本日志加上独立的“当前楼层”视图指针。
// 除楼层选择外的所有操作都只追加新版本；楼层选择只改指针（并同步到最新快照），
// 不会推进版本号。
type DesignSession struct {
	ID           string          `json:"id"`
	Versions     []DesignVersion `json:"versions"`
	CurrentFloor int             `json:"current_floor"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewDesignSession 创建空会话，当前楼层默认为 1
func NewDesignSession(id string) *DesignSession {
	now := time.Now().UTC()
	return &DesignSession{
		ID:           id,
		Versions:     []DesignVersion{},
		CurrentFloor: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Latest 返回最新快照，历史为空时返回 nil
func (s *DesignSession) Latest() *DesignVersion {
	if s == nil || len(s.Versions) == 0 {
		return nil
	}
	return &s.Versions[len(s.Versions)-1]
}

// NextVersion 返回下一个版本号（追加后版本号恒等于历史长度）
func (s *DesignSession) NextVersion() int {
	if s == nil {
		return 1
	}
	return len(s.Versions) + 1
}

// Append 追加新版本并刷新更新时间
func (s *DesignSession) Append(v DesignVersion) {
	s.Versions = append(s.Versions, v)
	s.UpdatedAt = time.Now().UTC()
}

// SetCurrentFloor 切换当前楼层视图。
// 只更新指针与最新快照的 current_floor 字段，不追加版本。
func (s *DesignSession) SetCurrentFloor(floor int) {
	s.CurrentFloor = floor
	if latest := s.Latest(); latest != nil {
		latest.CurrentFloor = floor
	}
	s.UpdatedAt = time.Now().UTC()
}
