package test

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type decimalMatcher struct {
	want decimal.Decimal
}

// DecimalEq returns a matcher for a decimal.Decimal numerically equal to s.
func DecimalEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	switch d := x.(type) {
	case decimal.Decimal:
		return d.Equal(m.want)
	case *decimal.Decimal:
		return d != nil && d.Equal(m.want)
	}

	return false
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal equal to %s", m.want)
}
