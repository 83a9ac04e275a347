package design

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blueprint-ai-api/internal/domain/entity"
	"blueprint-ai-api/internal/domain/repository"
	apperrors "blueprint-ai-api/pkg/errors"
	"blueprint-ai-api/pkg/logger"
	"blueprint-ai-api/pkg/metrics"
)

// 各操作成功后的固定提示语
const (
	msgGenerated = "Blueprint generated successfully"
	msgIterated  = "Blueprint updated successfully based on feedback"
	msgOptimized = "Blueprint optimized successfully"
)

// Result 一次设计操作的结果
type Result struct {
	SessionID string
	Blueprint *entity.Blueprint
	Version   int
	Timestamp time.Time
	Message   string
}

// Service 设计会话服务。
// 在引擎之上叠加会话生命周期：加载历史、调用引擎、追加版本、落库。
// 同一会话的读-改-写通过按键锁串行化，不同会话完全并行。
type Service struct {
	repo   repository.SessionRepository
	engine *Engine
	locks  *keyedLock
}

// NewService 创建设计会话服务
func NewService(repo repository.SessionRepository, engine *Engine) *Service {
	return &Service{
		repo:   repo,
		engine: engine,
		locks:  newKeyedLock(),
	}
}

// Create 校验需求并生成首版蓝图，返回新会话
func (s *Service) Create(ctx context.Context, req *entity.BuildingRequirements) (*Result, error) {
	start := time.Now()

	if !entity.IsKnownBuildingType(req.BuildingType) {
		metrics.DesignOperationsTotal.WithLabelValues("generate", "error").Inc()
		return nil, apperrors.ErrInvalidBuildingType.WithDetail(
			fmt.Sprintf("unknown building type %q", req.BuildingType))
	}

	sessionID := uuid.New().String()
	ctx = logger.WithContext(ctx, logger.SessionIDKey, sessionID)

	session := entity.NewDesignSession(sessionID)
	version := s.engine.GenerateInitial(ctx, req, session.NextVersion())
	session.Append(version)

	if err := s.repo.Save(ctx, session); err != nil {
		metrics.DesignOperationsTotal.WithLabelValues("generate", "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to persist session")
	}

	metrics.ActiveSessions.Inc()
	metrics.DesignOperationsTotal.WithLabelValues("generate", "success").Inc()
	metrics.DesignOperationDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	logger.Info(ctx, "blueprint session created",
		"building_type", req.BuildingType,
		"floors", req.Floors,
		"version", version.Version,
	)

	return &Result{
		SessionID: sessionID,
		Blueprint: version.Blueprint,
		Version:   version.Version,
		Timestamp: version.Timestamp,
		Message:   msgGenerated,
	}, nil
}

// Iterate 基于用户反馈生成新版本并追加到会话历史
func (s *Service) Iterate(ctx context.Context, sessionID, feedback string) (*Result, error) {
	return s.revise(ctx, sessionID, "iterate", msgIterated,
		func(ctx context.Context, session *entity.DesignSession, current *entity.Blueprint) entity.DesignVersion {
			return s.engine.Iterate(ctx, current, feedback, session.NextVersion(), session.CurrentFloor)
		})
}

// Optimize 按优化目标生成新版本并追加到会话历史
func (s *Service) Optimize(ctx context.Context, sessionID string, goals []string) (*Result, error) {
	return s.revise(ctx, sessionID, "optimize", msgOptimized,
		func(ctx context.Context, session *entity.DesignSession, current *entity.Blueprint) entity.DesignVersion {
			return s.engine.Optimize(ctx, current, goals, session.NextVersion(), session.CurrentFloor)
		})
}

// revise 迭代与优化共用的会话修订流程
func (s *Service) revise(
	ctx context.Context,
	sessionID, operation, message string,
	produce func(ctx context.Context, session *entity.DesignSession, current *entity.Blueprint) entity.DesignVersion,
) (*Result, error) {
	start := time.Now()
	ctx = logger.WithContext(ctx, logger.SessionIDKey, sessionID)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		metrics.DesignOperationsTotal.WithLabelValues(operation, "error").Inc()
		return nil, err
	}
	latest := session.Latest()
	if latest == nil || latest.Blueprint == nil {
		metrics.DesignOperationsTotal.WithLabelValues(operation, "error").Inc()
		return nil, apperrors.ErrNoExistingDesign
	}

	version := produce(ctx, session, latest.Blueprint)
	session.Append(version)

	if err := s.repo.Save(ctx, session); err != nil {
		metrics.DesignOperationsTotal.WithLabelValues(operation, "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to persist session")
	}

	metrics.DesignOperationsTotal.WithLabelValues(operation, "success").Inc()
	metrics.DesignOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	logger.Info(ctx, "blueprint session revised",
		"operation", operation,
		"version", version.Version,
	)

	return &Result{
		SessionID: sessionID,
		Blueprint: version.Blueprint,
		Version:   version.Version,
		Timestamp: version.Timestamp,
		Message:   message,
	}, nil
}

// SetCurrentFloor 切换会话的当前楼层视图。
// 楼层必须存在于最新蓝图中；该操作不追加版本，重复设置同一楼层是幂等的。
func (s *Service) SetCurrentFloor(ctx context.Context, sessionID string, floor int) (*Result, error) {
	ctx = logger.WithContext(ctx, logger.SessionIDKey, sessionID)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		metrics.DesignOperationsTotal.WithLabelValues("update_floor", "error").Inc()
		return nil, err
	}
	latest := session.Latest()
	if latest == nil || latest.Blueprint == nil {
		metrics.DesignOperationsTotal.WithLabelValues("update_floor", "error").Inc()
		return nil, apperrors.ErrNoExistingDesign
	}

	if !floorExists(latest.Blueprint, floor) {
		metrics.DesignOperationsTotal.WithLabelValues("update_floor", "error").Inc()
		return nil, apperrors.ErrInvalidFloorNumber.WithDetail(
			fmt.Sprintf("floor %d not present in current blueprint", floor))
	}

	session.SetCurrentFloor(floor)
	if err := s.repo.Save(ctx, session); err != nil {
		metrics.DesignOperationsTotal.WithLabelValues("update_floor", "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to persist session")
	}

	metrics.DesignOperationsTotal.WithLabelValues("update_floor", "success").Inc()
	logger.Info(ctx, "current floor updated", "floor", floor)

	return &Result{
		SessionID: sessionID,
		Blueprint: latest.Blueprint,
		Version:   latest.Version,
		Timestamp: latest.Timestamp,
		Message:   fmt.Sprintf("Floor %d view updated", floor),
	}, nil
}

// History 返回会话的全部版本历史
func (s *Service) History(ctx context.Context, sessionID string) (*entity.DesignSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// CurrentFloor 返回会话当前的楼层视图指针
func (s *Service) CurrentFloor(ctx context.Context, sessionID string) (int, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return session.CurrentFloor, nil
}

func (s *Service) loadSession(ctx context.Context, sessionID string) (*entity.DesignSession, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to load session")
	}
	if session == nil {
		return nil, apperrors.ErrSessionNotFound.WithDetail(
			fmt.Sprintf("session %q does not exist", sessionID))
	}
	return session, nil
}

func floorExists(bp *entity.Blueprint, floor int) bool {
	for i := range bp.FloorPlans {
		if bp.FloorPlans[i].FloorNumber == floor {
			return true
		}
	}
	return false
}
