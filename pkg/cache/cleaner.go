package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// cleaner 按固定间隔调用 cleanupExpired 的后台清理任务。
//
// 已知限制: robfig/cron 的 @every 调度粒度下限为 1 秒，
// 更小的间隔会被向上取整；对默认的 60 秒间隔无影响。
type cleaner struct {
	cron     *cron.Cron
	stopOnce sync.Once
}

func newCleaner(db *store, interval time.Duration) (*cleaner, error) {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		db.cleanupExpired()
	}); err != nil {
		return nil, fmt.Errorf("cache: schedule cleanup: %w", err)
	}
	return &cleaner{cron: c}, nil
}

// start 启动调度（非阻塞）。
func (c *cleaner) start() {
	c.cron.Start()
}

// stop 停止调度并等待正在执行的清理完成，保证退出时不持有引擎锁。
// 幂等：多次调用只执行一次。
func (c *cleaner) stop() {
	c.stopOnce.Do(func() {
		<-c.cron.Stop().Done()
	})
}
