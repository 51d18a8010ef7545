package request

import (
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/config"
	requesterrors "go-hrms/internal/request/errors"
)

// ApprovalChain adalah urutan role approver. Level dimulai dari 1 dan
// berurutan tanpa lompatan; level tertinggi adalah approver final.
type ApprovalChain struct {
	levels map[string]int
	roles  []string // index 0 = level 1
}

// NewApprovalChain membangun chain dari pasangan role -> level.
func NewApprovalChain(levels map[string]int) (ApprovalChain, error) {
	if len(levels) == 0 {
		return ApprovalChain{}, fmt.Errorf("approval chain is empty")
	}

	roles := make([]string, len(levels))
	for role, level := range levels {
		if strings.TrimSpace(role) == "" {
			return ApprovalChain{}, fmt.Errorf("approval chain contains an empty role")
		}
		if level < 1 || level > len(levels) {
			return ApprovalChain{}, fmt.Errorf("approval level %d for role %q is out of range 1..%d", level, role, len(levels))
		}
		if roles[level-1] != "" {
			return ApprovalChain{}, fmt.Errorf("approval level %d is assigned to both %q and %q", level, roles[level-1], role)
		}
		roles[level-1] = role
	}

	cp := make(map[string]int, len(levels))
	for role, level := range levels {
		cp[role] = level
	}
	return ApprovalChain{levels: cp, roles: roles}, nil
}

func DefaultApprovalChain() ApprovalChain {
	chain, _ := NewApprovalChain(map[string]int{
		"supervisor":         1,
		"department_manager": 2,
		"factory_manager":    3,
		"hr_manager":         4,
	})
	return chain
}

func (c ApprovalChain) LevelOf(role string) (int, bool) {
	level, ok := c.levels[role]
	return level, ok
}

func (c ApprovalChain) FinalLevel() int {
	return len(c.roles)
}

// RoleAt mengembalikan role pemegang level tertentu, "" bila di luar chain.
func (c ApprovalChain) RoleAt(level int) string {
	if level < 1 || level > len(c.roles) {
		return ""
	}
	return c.roles[level-1]
}

func (c ApprovalChain) Roles() []string {
	out := make([]string, len(c.roles))
	copy(out, c.roles)
	return out
}

// authorize memeriksa prasyarat bersama advance dan reject.
// Tidak ada mutasi di sini.
func (c ApprovalChain) authorize(r *Request, role string) (int, error) {
	level, ok := c.LevelOf(role)
	if !ok {
		return 0, requesterrors.ErrRoleNotInChain
	}
	if r.Status != StatusPending {
		return 0, requesterrors.ErrRequestNotPending
	}
	if level != r.CurrentApproverLevel {
		return 0, requesterrors.ErrNotYourTurn
	}
	return level, nil
}

// Advance memajukan request satu level. Di level final request menjadi
// approved dan ApprovedAt diisi, level tetap di level final.
// Mengembalikan aksi yang terjadi: ActionAdvance atau ActionApprove.
func (c ApprovalChain) Advance(r *Request, role string, now time.Time) (string, error) {
	level, err := c.authorize(r, role)
	if err != nil {
		return "", err
	}

	if level < c.FinalLevel() {
		r.CurrentApproverLevel = level + 1
		return ActionAdvance, nil
	}

	approvedAt := now.UTC()
	r.Status = StatusApproved
	r.ApprovedAt = &approvedAt
	return ActionApprove, nil
}

// Reject menolak request dari level manapun yang sedang aktif.
func (c ApprovalChain) Reject(r *Request, role, reason string) error {
	if _, err := c.authorize(r, role); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return requesterrors.ErrRejectionReasonRequired
	}

	r.Status = StatusRejected
	r.RejectionReason = &reason
	return nil
}

// ChainFromConfig mengubah daftar (role, level) dari konfigurasi.
func ChainFromConfig(entries []config.ApprovalLevel) (ApprovalChain, error) {
	levels := make(map[string]int, len(entries))
	for _, e := range entries {
		if _, dup := levels[e.Role]; dup {
			return ApprovalChain{}, fmt.Errorf("role %q appears more than once in approval chain", e.Role)
		}
		levels[e.Role] = e.Level
	}
	return NewApprovalChain(levels)
}

func (c ApprovalChain) String() string {
	return strings.Join(c.roles, " -> ")
}
