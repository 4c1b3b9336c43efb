package app

import (
	"log"

	"go.uber.org/zap"

	"service-shipment-bridge/internal/logx"
)

// NewLogger builds the production logger.
func NewLogger() logx.Logger {
	base, err := zap.NewProduction()
	if err != nil {
		log.Printf("zap init failed, falling back to nop logger: %v", err)
		return logx.Nop()
	}
	return logx.NewZapAdapter(base)
}
