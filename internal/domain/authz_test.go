package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panol-api/internal/domain"
)

func TestRequirePrivileged(t *testing.T) {
	assert.NoError(t, domain.RequirePrivileged(true))
	assert.ErrorIs(t, domain.RequirePrivileged(false), domain.ErrForbidden)
}
