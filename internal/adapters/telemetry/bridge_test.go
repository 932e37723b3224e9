package telemetry_test

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/codes"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	tp := telemetry.NewProvider(telemetry.NewBridge(mockLogger))

	mockLogger.EXPECT().Debug(gomock.Cond(func(x any) bool {
		msg, ok := x.(string)
		return ok && strings.HasPrefix(msg, "sdk.resolve finished in")
	})).Times(1)

	_, span := tp.Tracer("test").Start(context.Background(), "sdk.resolve")
	span.End()
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	tp := telemetry.NewProvider(telemetry.NewBridge(mockLogger))

	mockLogger.EXPECT().Debug(gomock.Cond(func(x any) bool {
		msg, ok := x.(string)
		return ok && strings.Contains(msg, "feed.latest failed after") && strings.HasSuffix(msg, "feed unavailable")
	})).Times(1)

	_, span := tp.Tracer("test").Start(context.Background(), "feed.latest")
	span.SetStatus(codes.Error, "feed unavailable")
	span.End()
}

func TestBridge_NilLogger(_ *testing.T) {
	tp := telemetry.NewProvider(telemetry.NewBridge(nil))

	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.End()
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	if err := bridge.ForceFlush(context.Background()); err != nil {
		t.Errorf("ForceFlush() should not return error, got: %v", err)
	}
	if err := bridge.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() should not return error, got: %v", err)
	}
}
