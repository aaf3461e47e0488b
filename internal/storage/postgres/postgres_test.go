package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	uniqueErr := &pq.Error{Code: "23505", Constraint: "registrations_pkey"}
	checkErr := &pq.Error{Code: "23514", Constraint: "events_capacity_check"}

	assert.True(t, isUniqueViolation(uniqueErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("failed to create registration: %w", uniqueErr)))
	assert.False(t, isUniqueViolation(checkErr))
	assert.False(t, isUniqueViolation(errors.New("duplicate key value")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsCheckViolation(t *testing.T) {
	t.Parallel()

	uniqueErr := &pq.Error{Code: "23505"}
	checkErr := &pq.Error{Code: "23514"}

	assert.True(t, isCheckViolation(checkErr))
	assert.True(t, isCheckViolation(fmt.Errorf("failed to create event: %w", checkErr)))
	assert.False(t, isCheckViolation(uniqueErr))
	assert.False(t, isCheckViolation(nil))
}
