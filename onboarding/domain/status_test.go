package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePermissionStatus(t *testing.T) {
	tests := []struct {
		stored PermissionStatus
		want   PermissionStatus
	}{
		{PermissionStatusCurrent, PermissionStatusCurrent},
		{PermissionStatusNeedsUpdate, PermissionStatusNeedsUpdate},
		{PermissionStatusNeedsOnboard, PermissionStatusNeedsOnboard},
		{PermissionStatusPending, PermissionStatusPending},
		{PermissionStatusErrored, PermissionStatusErrored},

		// Legacy values written by older revisions.
		{PermissionStatusNoStackName, PermissionStatusNeedsOnboard},
		{PermissionStatus("ERROR"), PermissionStatusErrored},

		{PermissionStatus(""), PermissionStatusUnknown},
		{PermissionStatus("bogus"), PermissionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.stored), func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePermissionStatus(tt.stored))
		})
	}
}
