package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestFromFallsBackToDefault(t *testing.T) {
	gt.Value(t, logging.From(context.Background())).Equal(logging.Default())
}

func TestWithCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelInfo, logging.FormatJSON, false)

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("hello", "k", "v")

	gt.String(t, buf.String()).Contains(`"msg":"hello"`)
	gt.String(t, buf.String()).Contains(`"k":"v"`)
}

func TestNewLoggerRedactsSecrets(t *testing.T) {
	type verification struct {
		Phone string
		Code  string `masq:"secret"`
		Role  string
	}

	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelInfo, logging.FormatJSON, false)
	logger.Info("issued", "verification", verification{Phone: "555-0100", Code: "123456", Role: "survivor"})

	out := buf.String()
	gt.Bool(t, bytes.Contains(buf.Bytes(), []byte("555-0100"))).False()
	gt.Bool(t, bytes.Contains(buf.Bytes(), []byte("123456"))).False()
	gt.String(t, out).Contains("survivor")
}
