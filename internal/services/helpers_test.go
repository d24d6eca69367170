package services_test

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
