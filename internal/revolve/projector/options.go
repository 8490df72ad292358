package projector

import "math"

// ============================================================
// Options
// ============================================================

type Option func(*options)

type options struct {
	key              string
	sealTolerance    float64
	degenerateMargin float64
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithKey задаёт пространство имён градиентов вместо вычисленного.
func WithKey(key string) Option {
	return func(o *options) { o.key = key }
}

// WithSealTolerance крышка-заглушка рисуется, когда радиусы соседних
// кромок расходятся больше чем на t. По умолчанию 0 - любое расхождение.
// Отрицательное значение и NaN приводятся к 0.
func WithSealTolerance(t float64) Option {
	return func(o *options) { o.sealTolerance = nonNegative(t) }
}

// WithDegenerateMargin сегмент считается вырожденным при hypot < |r2-r1| + m.
// При m < 0 |sinT| мог бы превысить 1, поэтому m приводится к 0.
func WithDegenerateMargin(m float64) Option {
	return func(o *options) { o.degenerateMargin = nonNegative(m) }
}

func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}

func (o options) needsSeal(lastNear, far float64) bool {
	return math.Abs(far-lastNear) > o.sealTolerance
}

func (o options) degenerate(hypot, dr float64) bool {
	return hypot < math.Abs(dr)+o.degenerateMargin
}
