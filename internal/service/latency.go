package service

import (
	"context"
	"time"
)

// Latency 模拟网络往返的人工延迟（只影响"加载中"体感，不影响语义）
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Write  time.Duration
	Delete time.Duration
	Login  time.Duration
}

// DefaultLatency 与旧版前端 mock 保持一致
var DefaultLatency = Latency{
	List:   300 * time.Millisecond,
	Get:    200 * time.Millisecond,
	Write:  400 * time.Millisecond,
	Delete: 500 * time.Millisecond,
	Login:  500 * time.Millisecond,
}

// NoLatency 零延迟
var NoLatency = Latency{}

// wait 在延迟期间被取消时返回 ctx.Err()，此时尚未写入任何数据
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
