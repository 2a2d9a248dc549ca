package linear

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"go.polydawn.net/revisr/api/def"
	"go.polydawn.net/revisr/engine"
)

func awaitResult(c <-chan engine.Result) engine.Result {
	select {
	case res := <-c:
		return res
	case <-time.After(5 * time.Second):
		panic("timed out waiting for a revision")
	}
}

func TestLinearScheduling(t *testing.T) {
	Convey("Given a linear scheduler driving a counter root", t, func() {
		rt := engine.New(engine.Options{})
		keyc := make(chan engine.Key[int], 1)
		root := func(fr *engine.Frame) {
			k := engine.State(fr, 0)
			select {
			case keyc <- k:
			default:
			}
		}
		results := make(chan engine.Result, 16)
		sched := New(nil)
		sched.Configure(rt, root)
		sched.ObserveResults(results)

		Convey("Start should run a first revision unprompted", func() {
			sched.Start()
			defer sched.Stop()
			res := awaitResult(results)
			So(res.Revision, ShouldEqual, def.Revision(1))

			Convey("A state write should provoke exactly one more revision", func() {
				key := <-keyc
				key.Set(1)
				res := awaitResult(results)
				So(res.Revision, ShouldEqual, def.Revision(2))
				// quiet now: no further revisions come unbidden.
				select {
				case res := <-results:
					t.Fatalf("unexpected revision %d", res.Revision)
				case <-time.After(50 * time.Millisecond):
				}
			})

			Convey("A burst of writes should coalesce into few revisions, ending converged", func() {
				key := <-keyc
				for i := 1; i <= 50; i++ {
					key.Set(i)
				}
				// however the burst interleaved with running, the loop
				// settles: eventually a revision runs with nothing pending.
				settled := awaitResult(results)
				for settled.WakePending || len(results) > 0 {
					settled = awaitResult(results)
				}
				So(settled.Revision, ShouldBeLessThanOrEqualTo, def.Revision(53))
			})
		})

		Convey("Stop should be idempotent and final", func() {
			sched.Start()
			awaitResult(results)
			sched.Stop()
			sched.Stop()
			key := <-keyc
			key.Set(9)
			select {
			case res := <-results:
				t.Fatalf("revision %d ran after Stop", res.Revision)
			case <-time.After(50 * time.Millisecond):
			}
		})

		Convey("Stop on a never-started scheduler should return, not hang", func() {
			idle := New(nil)
			stopped := make(chan struct{})
			go func() {
				idle.Stop()
				idle.Stop()
				close(stopped)
			}()
			select {
			case <-stopped:
			case <-time.After(5 * time.Second):
				t.Fatal("Stop hung on a never-started scheduler")
			}
		})

		Convey("Start before Configure should panic", func() {
			So(func() { New(nil).Start() }, ShouldPanic)
		})
	})
}
