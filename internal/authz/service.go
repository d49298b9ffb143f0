package authz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	casbinTableName = "casbin_rule"
	userSubjectFmt  = "user:%d"
)

// 资源类型
const (
	ObjectPost    = "post"
	ObjectComment = "comment"
)

// 动作
const (
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// 写操作仅允许资源所有者执行，不存在角色豁免
const ownerGatedModel = `
[request_definition]
r = sub, owner, obj, act

[policy_definition]
p = obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == r.owner && r.obj == p.obj && r.act == p.act
`

// Policy 权限策略：允许所有者对某类资源执行的动作
type Policy struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

// Service Casbin 授权服务
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务，策略持久化在 casbin_rule 表
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}

	m, err := model.NewModelFromString(ownerGatedModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.EnableAutoSave(true)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

// CanModify 判定 actor 是否可以对 owner 拥有的资源执行动作
func (s *Service) CanModify(actorID, ownerID uint, object, action string) (bool, error) {
	if s == nil || s.enforcer == nil {
		return false, fmt.Errorf("authz service unavailable")
	}
	if actorID == 0 {
		return false, nil
	}
	return s.enforcer.Enforce(
		SubjectForUser(actorID),
		SubjectForUser(ownerID),
		NormalizeObject(object),
		NormalizeAction(action),
	)
}

// GrantPolicy 授予所有者动作
func (s *Service) GrantPolicy(object, action string) error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	normalizedObject, normalizedAction, err := normalizePolicy(object, action)
	if err != nil {
		return err
	}
	if _, err := s.enforcer.AddPolicy(normalizedObject, normalizedAction); err != nil {
		return fmt.Errorf("grant policy failed: %w", err)
	}
	return nil
}

// Policies 列出当前策略
func (s *Service) Policies() ([]Policy, error) {
	if s == nil || s.enforcer == nil {
		return nil, fmt.Errorf("authz service unavailable")
	}
	rules, err := s.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("list policies failed: %w", err)
	}
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 2 {
			continue
		}
		policies = append(policies, Policy{Object: rule[0], Action: rule[1]})
	}
	sort.Slice(policies, func(i, j int) bool {
		if policies[i].Object == policies[j].Object {
			return policies[i].Action < policies[j].Action
		}
		return policies[i].Object < policies[j].Object
	})
	return policies, nil
}

func normalizePolicy(object, action string) (string, string, error) {
	normalizedObject := NormalizeObject(object)
	if normalizedObject == "" {
		return "", "", fmt.Errorf("object is required")
	}
	normalizedAction := NormalizeAction(action)
	if normalizedAction == "" {
		return "", "", fmt.Errorf("action is required")
	}
	return normalizedObject, normalizedAction, nil
}

// SubjectForUser 生成用户主体标识
func SubjectForUser(userID uint) string {
	return fmt.Sprintf(userSubjectFmt, userID)
}

// NormalizeObject 统一资源类型
func NormalizeObject(object string) string {
	return strings.ToLower(strings.TrimSpace(object))
}

// NormalizeAction 统一授权动作
func NormalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
