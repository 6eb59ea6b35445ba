package app

import (
	"context"
	"time"

	"github.com/five82/domterm/vdom"
)

var uptimeTick = time.Second

// StatusBar is the default root component: the configured caption segments
// in a row, followed by how long the session has been up.
func StatusBar(segments []string) vdom.Component {
	return func(s *vdom.Scope) *vdom.Element {
		started := vdom.UseSignal(s, time.Now)
		uptime := vdom.UseSignal(s, func() time.Duration { return 0 })
		vdom.UseFuture(s, func(ctx context.Context) {
			ticker := time.NewTicker(uptimeTick)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					uptime.Set(now.Sub(started.Get()).Truncate(time.Second))
				}
			}
		})

		row := vdom.Div().Class("flex-row").Attr("gap", "2")
		for _, seg := range segments {
			row.Append(vdom.Span(vdom.Text(seg)))
		}
		return row.Append(vdom.Span(vdom.Textf("up %s", uptime.Get())).Class("uptime"))
	}
}
