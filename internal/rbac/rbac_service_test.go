package rbac_test

import (
	"testing"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"hr requests payments", "hr", rbac.ResourcePayment, rbac.ActionRequest, true},
		{"hr creates payment intents", "hr", rbac.ResourceGateway, rbac.ActionCreateIntent, true},
		{"hr verifies employees", "hr", rbac.ResourceEmployee, rbac.ActionVerify, true},
		{"hr reads dashboard", "hr", rbac.ResourceDashboard, rbac.ActionRead, true},
		{"hr cannot approve payments", "hr", rbac.ResourcePayment, rbac.ActionApprove, false},
		{"hr cannot manage employees", "hr", rbac.ResourceEmployee, rbac.ActionManage, false},

		{"admin approves payments", "admin", rbac.ResourcePayment, rbac.ActionApprove, true},
		{"admin lists unpaid", "admin", rbac.ResourcePayment, rbac.ActionListUnpaid, true},
		{"admin manages employees", "admin", rbac.ResourceEmployee, rbac.ActionManage, true},
		{"admin lists verified users", "admin", rbac.ResourceEmployee, rbac.ActionListVerified, true},
		{"admin reads dashboard", "admin", rbac.ResourceDashboard, rbac.ActionRead, true},
		{"admin cannot request payments", "admin", rbac.ResourcePayment, rbac.ActionRequest, false},

		{"employee cannot request payments", "employee", rbac.ResourcePayment, rbac.ActionRequest, false},
		{"employee cannot read dashboard", "employee", rbac.ResourceDashboard, rbac.ActionRead, false},
		{"unknown role denied", "superuser", rbac.ResourceEmployee, rbac.ActionManage, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
