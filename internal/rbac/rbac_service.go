package rbac

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go-hrms/internal/config"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

// role -> (resource, action), tanpa domain karena single company.
const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
	PermissionsForRole(role string) []Permission
}

type service struct {
	enforcer *casbin.Enforcer
	policies []config.Policy
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewEnforcer membangun enforcer casbin dari model di atas tanpa policy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}
	return casbin.NewEnforcer(m)
}

func NewService(enforcer *casbin.Enforcer, policies []config.Policy, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	for _, p := range policies {
		p.Role = strings.TrimSpace(p.Role)
		p.Resource = strings.TrimSpace(p.Resource)
		p.Action = strings.TrimSpace(p.Action)
		if p.Role == "" || p.Resource == "" || p.Action == "" {
			return nil, fmt.Errorf("rbac policy %+v is incomplete", p)
		}
		added, err := enforcer.AddPolicy(p.Role, p.Resource, p.Action)
		if err != nil {
			return nil, err
		}
		if added {
			s.policies = append(s.policies, p)
		}
	}

	l.Info("rbac policies loaded", zap.Int("policies", len(s.policies)))
	return s, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsForRole(role string) []Permission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Permission, 0)
	for _, p := range s.policies {
		if p.Role == role {
			out = append(out, Permission{Resource: p.Resource, Action: p.Action})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Action < out[j].Action
	})
	return out
}
