package fare

import "fmt"

// Money is an amount in paise (1 rupee = 100 paise).
type Money struct {
	paise int64
}

func NewMoney(paise int64) Money {
	return Money{paise: paise}
}

func FromRupees(rupees int64) Money {
	return Money{paise: rupees * 100}
}

func (m Money) Paise() int64 { return m.paise }

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) MultiplyPercent(pct int64) Money {
	// round half up on the paise value
	return Money{paise: (m.paise*pct + 50) / 100}
}

func (m Money) String() string {
	return fmt.Sprintf("₹%d.%02d", m.paise/100, m.paise%100)
}
