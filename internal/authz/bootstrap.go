package authz

import "fmt"

// OwnerPolicies 所有者默认可执行的动作
func OwnerPolicies() []Policy {
	return []Policy{
		{Object: ObjectPost, Action: ActionUpdate},
		{Object: ObjectPost, Action: ActionDelete},
		{Object: ObjectComment, Action: ActionDelete},
	}
}

// BootstrapOwnerPolicies 初始化默认所有者策略，已存在的策略跳过
func (s *Service) BootstrapOwnerPolicies() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	for _, policy := range OwnerPolicies() {
		object, action, err := normalizePolicy(policy.Object, policy.Action)
		if err != nil {
			return err
		}
		exists, err := s.enforcer.HasPolicy(object, action)
		if err != nil {
			return fmt.Errorf("check owner policy failed: %w", err)
		}
		if exists {
			continue
		}
		if err := s.GrantPolicy(object, action); err != nil {
			return err
		}
	}
	return nil
}
