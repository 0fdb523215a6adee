package logging

import (
	"context"
	"testing"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	ctx = WithRunID(ctx, "run-123")
	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID() = %q, want %q", got, "run-123")
	}

	ctx = WithFile(ctx, "src/main.lua")
	if got := GetFile(ctx); got != "src/main.lua" {
		t.Errorf("GetFile() = %q, want %q", got, "src/main.lua")
	}

	ctx = WithRule(ctx, "remove_comments")
	if got := GetRule(ctx); got != "remove_comments" {
		t.Errorf("GetRule() = %q, want %q", got, "remove_comments")
	}

	ctx = WithTraceID(ctx, "trace-abc")
	if got := GetTraceID(ctx); got != "trace-abc" {
		t.Errorf("GetTraceID() = %q, want %q", got, "trace-abc")
	}

	ctx = WithSpanID(ctx, "span-def")
	if got := GetSpanID(ctx); got != "span-def" {
		t.Errorf("GetSpanID() = %q, want %q", got, "span-def")
	}
}

func TestContextKeys_Empty(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		get  func(context.Context) string
	}{
		{"RunID", GetRunID},
		{"File", GetFile},
		{"Rule", GetRule},
		{"TraceID", GetTraceID},
		{"SpanID", GetSpanID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(ctx); got != "" {
				t.Errorf("Get%s() = %q, want empty string", tt.name, got)
			}
		})
	}
}

func TestExtractContextFields(t *testing.T) {
	tests := []struct {
		name       string
		setupCtx   func(context.Context) context.Context
		wantFields map[string]string
	}{
		{
			name: "empty context",
			setupCtx: func(ctx context.Context) context.Context {
				return ctx
			},
			wantFields: map[string]string{},
		},
		{
			name: "run ID only",
			setupCtx: func(ctx context.Context) context.Context {
				return WithRunID(ctx, "run-123")
			},
			wantFields: map[string]string{
				"run_id": "run-123",
			},
		},
		{
			name: "all fields",
			setupCtx: func(ctx context.Context) context.Context {
				ctx = WithRunID(ctx, "run-789")
				ctx = WithFile(ctx, "a.lua")
				ctx = WithRule(ctx, "rename_variables")
				ctx = WithTraceID(ctx, "trace-1")
				ctx = WithSpanID(ctx, "span-1")
				return ctx
			},
			wantFields: map[string]string{
				"run_id":   "run-789",
				"file":     "a.lua",
				"rule":     "rename_variables",
				"trace_id": "trace-1",
				"span_id":  "span-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx(context.Background())
			fields := extractContextFields(ctx)

			fieldsMap := make(map[string]string)
			for i := 0; i < len(fields); i += 2 {
				key := fields[i].(string)
				value := fields[i+1].(string)
				fieldsMap[key] = value
			}

			for key, expectedValue := range tt.wantFields {
				if gotValue, ok := fieldsMap[key]; !ok {
					t.Errorf("Expected field %q not found", key)
				} else if gotValue != expectedValue {
					t.Errorf("Field %q = %q, want %q", key, gotValue, expectedValue)
				}
			}

			if len(fieldsMap) != len(tt.wantFields) {
				t.Errorf("Got %d fields, want %d. Fields: %v",
					len(fieldsMap), len(tt.wantFields), fieldsMap)
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	ctx = WithRunID(ctx, "run-cl-1")
	ctx = WithFile(ctx, "a.lua")

	logger, err := New(Config{
		Level:      "info",
		Format:     "json",
		BufferSize: 100,
	})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Shutdown()

	ctxLogger := NewContextLogger(logger, ctx)
	if ctxLogger == nil {
		t.Fatal("NewContextLogger returned nil")
	}

	ctxLogger.Debug("debug message")
	ctxLogger.Info("info message")
	ctxLogger.Warn("warn message")
	ctxLogger.Error("error message")

	childLogger := ctxLogger.With("extra", "value")
	if childLogger == nil {
		t.Fatal("ContextLogger.With returned nil")
	}

	childLogger.Info("child message")
}

func TestContextLogger_With(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-with-1")

	logger, err := New(Config{
		Level:      "info",
		Format:     "json",
		BufferSize: 100,
	})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Shutdown()

	ctxLogger := NewContextLogger(logger, ctx)

	childLogger := ctxLogger.With("key1", "value1", "key2", 42)
	if childLogger == nil {
		t.Fatal("ContextLogger.With returned nil")
	}

	childLogger.Info("test message")
}

func TestContextChaining(t *testing.T) {
	ctx := context.Background()
	ctx = WithRunID(ctx, "run-chain-1")
	ctx = WithFile(ctx, "a.lua")
	ctx = WithRule(ctx, "rule1")

	if got := GetRunID(ctx); got != "run-chain-1" {
		t.Errorf("After chaining, GetRunID() = %q, want %q", got, "run-chain-1")
	}
	if got := GetFile(ctx); got != "a.lua" {
		t.Errorf("After chaining, GetFile() = %q, want %q", got, "a.lua")
	}
	if got := GetRule(ctx); got != "rule1" {
		t.Errorf("After chaining, GetRule() = %q, want %q", got, "rule1")
	}

	ctx = WithTraceID(ctx, "trace1")

	if got := GetTraceID(ctx); got != "trace1" {
		t.Errorf("After more chaining, GetTraceID() = %q, want %q", got, "trace1")
	}

	if got := GetRunID(ctx); got != "run-chain-1" {
		t.Errorf("Original value changed: GetRunID() = %q, want %q", got, "run-chain-1")
	}
}

func TestContextOverwrite(t *testing.T) {
	ctx := context.Background()
	ctx = WithRunID(ctx, "run-old")

	if got := GetRunID(ctx); got != "run-old" {
		t.Errorf("Initial GetRunID() = %q, want %q", got, "run-old")
	}

	ctx = WithRunID(ctx, "run-new")

	if got := GetRunID(ctx); got != "run-new" {
		t.Errorf("After overwrite, GetRunID() = %q, want %q", got, "run-new")
	}
}

func BenchmarkExtractContextFields(b *testing.B) {
	ctx := context.Background()
	ctx = WithRunID(ctx, "run-bench")
	ctx = WithFile(ctx, "a.lua")
	ctx = WithRule(ctx, "rule1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = extractContextFields(ctx)
	}
}

func BenchmarkWithRunID(b *testing.B) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WithRunID(ctx, "run-123")
	}
}

func BenchmarkGetRunID(b *testing.B) {
	ctx := WithRunID(context.Background(), "run-123")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetRunID(ctx)
	}
}
