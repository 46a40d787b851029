package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies is the complete authorization matrix. Two fixed roles; admins
// manage identities and see everyone's ledger and payroll, employees act
// only on their own attendance and payroll. Admins hold no attendance
// permissions: they are not payroll subjects and do not clock in.
var policies = [][]string{
	{domain.RoleAdmin, "employees", "read"},
	{domain.RoleAdmin, "employees", "write"},
	{domain.RoleAdmin, "attendances", "read_all"},
	{domain.RoleAdmin, "payrolls", "read_all"},
	{domain.RoleAdmin, "payrolls", "export"},

	{domain.RoleEmployee, "attendances", "create"},
	{domain.RoleEmployee, "attendances", "read"},
	{domain.RoleEmployee, "payrolls", "read"},
}

// NewEnforcer builds the in-memory enforcer with the static policy set.
// Policies are code, not data: the role model never changes at runtime.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
