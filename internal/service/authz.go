package service

import "github.com/stpnv0/GymOps/internal/domain"

func requireAdmin(p domain.Principal) error {
	if !p.IsAdmin() {
		return domain.ErrUnauthorized
	}
	return nil
}

// requireMember lets a member act on their own records; admin acts on anyone's.
func requireMember(p domain.Principal, memberID string) error {
	if p.IsAdmin() || p.IsMember(memberID) {
		return nil
	}
	return domain.ErrUnauthorized
}

func requireTrainer(p domain.Principal, trainerID string) error {
	if p.IsAdmin() || p.IsTrainer(trainerID) {
		return nil
	}
	return domain.ErrUnauthorized
}

func requireStaff(p domain.Principal) error {
	if p.IsAdmin() || p.Role == domain.RoleTrainer {
		return nil
	}
	return domain.ErrUnauthorized
}
