package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func TestRelay_DependencyGraph(t *testing.T) {
	err := fx.ValidateApp(relay(zap.NewNop()))

	assert.NoError(t, err)
}
