package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-mq/pkg/datastructs/deque"
	"github.com/huynhanx03/go-mq/pkg/mq"
	rt "github.com/huynhanx03/go-mq/pkg/runtime"
	"github.com/huynhanx03/go-mq/pkg/settings"
	"github.com/huynhanx03/go-mq/pkg/timer"
)

// action is the demo message payload.
type action int

const actionCount = 7

func (a action) String() string {
	names := [...]string{
		"action_none", "action_1", "action_2", "action_3",
		"action_4", "action_5", "action_6", "action_7",
	}
	if a < 0 || int(a) >= len(names) {
		return "action_unknown"
	}
	return names[a]
}

// message carries an action and its production timestamp, so listeners can
// report queueing latency.
type message struct {
	Action action
	At     time.Time
}

// acceptSet builds the predicate for listener id: actions are partitioned
// round-robin across listeners, so every action has exactly one consumer
// group member accepting it.
func acceptSet(id, listeners int) mq.Predicate[message] {
	accepted := make(map[action]bool, actionCount)
	for a := 1; a <= actionCount; a++ {
		if (a-1)%listeners == id {
			accepted[action(a)] = true
		}
	}
	return func(msg message) bool {
		return accepted[msg.Action]
	}
}

func runDemo(cfg settings.Config, zlog *zap.Logger) error {
	mode, err := mq.ParseMode(cfg.Queue.Mode)
	if err != nil {
		return err
	}

	var backing deque.Deque[message]
	if cfg.Queue.Backing == "list" {
		backing = deque.NewList[message]()
	} else {
		backing = deque.NewRing[message](cfg.Queue.Capacity)
	}

	queue, err := mq.New(backing, mode, cfg.Queue.Capacity)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.Demo.RunSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Demo.RunSeconds)*time.Second)
		defer cancel()
	}

	clk := timer.NewCachedTimer(time.Millisecond)
	defer clk.Stop()

	zlog.Info("starting demo",
		zap.Int("capacity", cfg.Queue.Capacity),
		zap.Stringer("mode", mode),
		zap.String("backing", cfg.Queue.Backing),
		zap.Int("producers", cfg.Demo.Producers),
		zap.Int("listeners", cfg.Demo.Listeners),
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Demo.Producers; i++ {
		id := i
		g.Go(func() error {
			return produce(ctx, id, mq.NewProducer(queue), clk, cfg.Demo, zlog)
		})
	}
	for i := 0; i < cfg.Demo.Listeners; i++ {
		id := i
		g.Go(func() error {
			return listen(ctx, id, mq.NewReceiver(queue), acceptSet(id, cfg.Demo.Listeners), cfg.Demo, zlog)
		})
	}
	if cfg.Demo.ModeFlipSeconds > 0 {
		g.Go(func() error {
			return flipMode(ctx, queue, time.Duration(cfg.Demo.ModeFlipSeconds)*time.Second, zlog)
		})
	}

	err = g.Wait()
	zlog.Info("demo finished", zap.Int("left_in_queue", queue.Len()))
	return err
}

// produce emits random actions at random intervals until ctx is done.
func produce(ctx context.Context, id int, p *mq.Producer[message], clk timer.Timer, cfg settings.Demo, zlog *zap.Logger) error {
	log := zlog.With(zap.Int("producer", id))
	for {
		msg := message{
			Action: action(rt.IntRange(1, actionCount)),
			At:     clk.Now(),
		}
		ok, err := p.Enqueue(ctx, msg)
		if err != nil {
			return nil // context cancelled, shut down quietly
		}
		if ok {
			log.Info("produced", zap.Stringer("action", msg.Action))
		}
		if err := sleepRange(ctx, cfg.ProduceMinMs, cfg.ProduceMaxMs); err != nil {
			return nil
		}
	}
}

// listen consumes the actions this listener accepts. A predicate miss leaves
// the element in place for another listener; back off briefly so that
// listener gets a chance to look at it.
func listen(ctx context.Context, id int, r *mq.Receiver[message], accepts mq.Predicate[message], cfg settings.Demo, zlog *zap.Logger) error {
	log := zlog.With(zap.Int("listener", id))
	for {
		msg, ok, err := r.DequeueIf(ctx, accepts)
		if err != nil {
			return nil
		}
		if !ok {
			if err := sleepRange(ctx, cfg.ConsumeMinMs/2, cfg.ConsumeMinMs); err != nil {
				return nil
			}
			continue
		}
		log.Info("consumed",
			zap.Stringer("action", msg.Action),
			zap.Duration("queued_for", time.Since(msg.At)),
		)
		// Simulate some time-consuming task.
		if err := sleepRange(ctx, cfg.ConsumeMinMs, cfg.ConsumeMaxMs); err != nil {
			return nil
		}
	}
}

// flipMode toggles the removal discipline on a fixed interval to exercise the
// runtime switch.
func flipMode(ctx context.Context, q *mq.Queue[message], every time.Duration, zlog *zap.Logger) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			next := mq.LIFO
			if q.Mode() == mq.LIFO {
				next = mq.FIFO
			}
			if err := q.SetMode(next); err != nil {
				return err
			}
			zlog.Info("mode switched", zap.Stringer("mode", next))
		}
	}
}

// sleepRange sleeps a random duration in [minMs, maxMs] milliseconds, waking
// early when ctx is done.
func sleepRange(ctx context.Context, minMs, maxMs int) error {
	d := time.Duration(rt.IntRange(minMs, maxMs)) * time.Millisecond
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
