// file: internals/features/school/enrollments/model/enrollment_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawStampsDateOnce(t *testing.T) {
	m := EnrollmentModel{EnrollmentStatus: StatusActive, EnrollmentIsActive: true}

	m.Withdraw(nil, nil)
	assert.Equal(t, StatusWithdrawn, m.EnrollmentStatus)
	assert.False(t, m.EnrollmentIsActive)
	require.NotNil(t, m.EnrollmentWithdrawalDate)
	first := *m.EnrollmentWithdrawalDate

	// a second withdraw without a date keeps the original stamp
	m.Withdraw(nil, nil)
	assert.Equal(t, first, *m.EnrollmentWithdrawalDate)
}

func TestWithdrawExplicitDateAndReason(t *testing.T) {
	m := EnrollmentModel{EnrollmentStatus: StatusActive, EnrollmentIsActive: true}
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	reason := "Moved out of district"

	m.Withdraw(&date, &reason)
	require.NotNil(t, m.EnrollmentWithdrawalDate)
	assert.Equal(t, date, *m.EnrollmentWithdrawalDate)
	require.NotNil(t, m.EnrollmentWithdrawalReason)
	assert.Equal(t, reason, *m.EnrollmentWithdrawalReason)
}

func TestReactivateRoundTrip(t *testing.T) {
	m := EnrollmentModel{EnrollmentStatus: StatusActive, EnrollmentIsActive: true}
	reason := "Extended absence"
	m.Withdraw(nil, &reason)
	require.True(t, m.IsWithdrawn())

	changed := m.Reactivate()
	assert.True(t, changed)
	assert.Equal(t, StatusActive, m.EnrollmentStatus)
	assert.True(t, m.EnrollmentIsActive)
	assert.Nil(t, m.EnrollmentWithdrawalDate)
	assert.Nil(t, m.EnrollmentWithdrawalReason)
}

func TestReactivateNoOpWhenNotWithdrawn(t *testing.T) {
	m := EnrollmentModel{EnrollmentStatus: StatusActive, EnrollmentIsActive: true}
	assert.False(t, m.Reactivate())
	assert.Equal(t, StatusActive, m.EnrollmentStatus)
	assert.True(t, m.EnrollmentIsActive)
}
