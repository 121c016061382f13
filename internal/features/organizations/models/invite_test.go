package organizations_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Invite_IsRedeemable(t *testing.T) {
	now := time.Now().UTC()
	used := now.Add(-time.Minute)

	testCases := []struct {
		name       string
		invite     Invite
		redeemable bool
	}{
		{
			name:       "unused and not expired",
			invite:     Invite{ExpiresAt: now.Add(time.Hour)},
			redeemable: true,
		},
		{
			name:       "expired",
			invite:     Invite{ExpiresAt: now.Add(-time.Hour)},
			redeemable: false,
		},
		{
			name:       "already used",
			invite:     Invite{ExpiresAt: now.Add(time.Hour), UsedAt: &used},
			redeemable: false,
		},
		{
			name:       "expiring exactly now",
			invite:     Invite{ExpiresAt: now},
			redeemable: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.redeemable, tc.invite.IsRedeemable(now))
		})
	}
}
