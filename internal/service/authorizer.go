package service

// OwnerAuthorizer 判定 actor 能否修改 owner 拥有的资源
type OwnerAuthorizer interface {
	CanModify(actorID, ownerID uint, object, action string) (bool, error)
}

// ownerMatchAuthorizer 未注入授权服务时的兜底实现
type ownerMatchAuthorizer struct{}

func (ownerMatchAuthorizer) CanModify(actorID, ownerID uint, _, _ string) (bool, error) {
	return actorID != 0 && actorID == ownerID, nil
}

func resolveAuthorizer(authorizer OwnerAuthorizer) OwnerAuthorizer {
	if authorizer == nil {
		return ownerMatchAuthorizer{}
	}
	return authorizer
}
