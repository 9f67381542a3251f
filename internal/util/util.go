package util

import (
	"time"

	"github.com/shopspring/decimal"
)

func TimePtr(t time.Time) *time.Time {
	return &t
}

func StringPtr(s string) *string {
	return &s
}

func Int32Ptr(i int32) *int32 {
	return &i
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
