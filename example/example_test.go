package example

import (
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	yuulogrus "github.com/Yuzu02/YuuLogger/profile/contrib/sirupsen/logrus"
	"github.com/Yuzu02/YuuLogger/profile/logsink"
	"github.com/Yuzu02/YuuLogger/profile/measure"
	"github.com/Yuzu02/YuuLogger/profile/report"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/profile_sampler"
)

func TestProfiler_EndToEnd(t *testing.T) {
	base := logrus.New()

	// one sampler shared by the profiler and the sink keeps a single
	// process-wide admission gate
	sampler := profile_sampler.New(profile_sampler.Config{
		GeneralRate:     1,
		ProfileRate:     1,
		AlwaysLogErrors: true,
	})
	store := measure.NewStore(measure.WithLogger(yuulogrus.NewLogger(base)))

	profiler := yuuprofiler.NewProfiler(
		yuuprofiler.WithLogger(yuulogrus.NewLogger(base)),
		yuuprofiler.WithSampler(sampler),
		yuuprofiler.WithMeasurementStore(store),
	)
	yuuprofiler.SetGlobalProfiler(profiler)

	sink := yuulogrus.NewSink(base, sampler)

	pid := profiler.StartProfile("Checkout",
		yuuprofiler.ContextAs("OrderService"),
		yuuprofiler.WithMetadata(map[string]interface{}{"orderId": 4211}),
	)
	cid := profiler.StartChildProfile(pid, "ValidateCart")
	time.Sleep(5 * time.Millisecond)
	profiler.StopProfile(cid)
	time.Sleep(10 * time.Millisecond)

	// interceptor-style enrichment of a still-active profile
	if active, ok := profiler.ActiveProfiles()[pid]; ok {
		req := yuuprofiler.RequestInfo{
			Method:        "POST",
			Path:          "/checkout",
			CorrelationID: yuuprofiler.NewCorrelationID(),
		}
		for k, v := range req.Metadata() {
			active.Metadata[k] = v
		}
	}

	finished := profiler.StopProfile(pid)
	sink.WriteReport(report.Render(finished, report.PlainTheme{}))

	if stats := store.Stats("Checkout"); stats != nil {
		fmt.Printf("Checkout: count=%d avg=%s max=%s\n", stats.Count, stats.AverageDuration, stats.MaxDuration)
	}

	sink.WriteRecord(logsink.Record{
		Level:     logsink.LevelInfo,
		Message:   "checkout flow profiled",
		Context:   "OrderService",
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"profileId": pid},
	})
}

func TestProfiler_WithGlobal(t *testing.T) {
	yuuprofiler.SetGlobalProfiler(yuuprofiler.NewProfiler())

	id := yuuprofiler.StartProfile("NightlyReconciliation", yuuprofiler.ContextAs("BillingService"))
	child := yuuprofiler.StartChildProfile(id, "LoadPendingInvoices")
	yuuprofiler.StopProfile(child)
	yuuprofiler.StopProfile(id)
}

func TestMeasure_FlatTimings(t *testing.T) {
	store := measure.NewStore()

	store.Start("RenderTemplate", nil)
	time.Sleep(2 * time.Millisecond)
	store.Stop("RenderTemplate")

	if stats := store.Stats("RenderTemplate"); stats != nil {
		fmt.Printf("RenderTemplate: count=%d total=%s\n", stats.Count, stats.TotalDuration)
	}
	store.Clear("RenderTemplate")
}
