package model

import "testing"

func TestAccountStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   AccountStatus
		value string
	}{
		{"available", AccountStatusAvailable, "available"},
		{"reserved", AccountStatusReserved, "reserved"},
		{"sold", AccountStatusSold, "sold"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestDepositStatusValues(t *testing.T) {
	cases := []struct {
		status DepositStatus
		value  string
	}{
		{DepositStatusPending, "pending"},
		{DepositStatusApproved, "approved"},
		{DepositStatusRejected, "rejected"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
	}
}

func TestRoleValues(t *testing.T) {
	if RoleUser != "user" || RoleAdmin != "admin" {
		t.Fatalf("unexpected role values: %s %s", RoleUser, RoleAdmin)
	}
}
