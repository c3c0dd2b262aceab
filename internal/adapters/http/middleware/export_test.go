package middleware

import "time"

func SetLimiterClock(l *IPRateLimiter, now func() time.Time) { l.now = now }
