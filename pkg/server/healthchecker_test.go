package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticHealth bool

func (s staticHealth) Healthy(context.Context) bool { return bool(s) }

func TestAllHealthChecker(t *testing.T) {
	ctx := context.Background()

	assert.True(t, AllHealthChecker{}.Healthy(ctx))
	assert.True(t, AllHealthChecker{NewOkHealthChecker(), staticHealth(true)}.Healthy(ctx))
	assert.False(t, AllHealthChecker{NewOkHealthChecker(), staticHealth(false)}.Healthy(ctx))
}
