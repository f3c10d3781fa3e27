package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"rgbcal/bus"
	"rgbcal/services/state"
	"rgbcal/types"
	"rgbcal/x/logx"
)

type fakeKnob struct{ q uint32 }

func (k *fakeKnob) Measure() uint32 { return k.q }

type fakeButton struct{ down bool }

func (b *fakeButton) Pressed() bool { return b.down }

type bench struct {
	c      *Controller
	knob   *fakeKnob
	a, b   *fakeButton
	shared *state.Shared
	out    *bytes.Buffer
	sub    *bus.Subscription
}

func newBench(q uint32) *bench {
	b := &bench{
		knob:   &fakeKnob{q: q},
		a:      &fakeButton{},
		b:      &fakeButton{},
		shared: state.New(),
		out:    &bytes.Buffer{},
	}
	conn := bus.NewBus(256).NewConnection("test")
	b.sub = conn.Subscribe(bus.T("state", "#"))
	b.shared.Observe(conn)
	b.c = New(b.knob, b.a, b.b, b.shared, logx.New(b.out))
	return b
}

// published drains and returns the state snapshots written since the last call.
func (b *bench) published() []*bus.Message {
	var msgs []*bus.Message
	for {
		select {
		case m := <-b.sub.Channel():
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}

// lines drains and returns the log lines written since the last call.
func (b *bench) lines() []string {
	s := b.out.String()
	b.out.Reset()
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func showBlock(r, g, bl, fr string) []string {
	return []string{"", "red: " + r, "green: " + g, "blue: " + bl, "frame rate: " + fr}
}

func equalLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q (all %q)", i, got[i], want[i], got)
		}
	}
}

func TestReadButtons_Table(t *testing.T) {
	cases := []struct {
		a, b bool
		want types.Parameter
	}{
		{false, false, types.ParamFrameRate},
		{true, false, types.ParamBlue},
		{false, true, types.ParamGreen},
		{true, true, types.ParamRed},
	}
	for _, tc := range cases {
		b := newBench(0)
		b.a.down, b.b.down = tc.a, tc.b
		if got := b.c.readButtons(); got != tc.want {
			t.Fatalf("a=%v b=%v: got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMapKnob(t *testing.T) {
	cases := []struct {
		q    uint32
		p    types.Parameter
		want uint32
	}{
		{0, types.ParamFrameRate, 10},
		{9, types.ParamFrameRate, 100},
		{15, types.ParamFrameRate, 160},
		{0, types.ParamRed, 0},
		{8, types.ParamGreen, 8},
		{15, types.ParamBlue, 15},
	}
	for _, tc := range cases {
		if got := mapKnob(tc.q, tc.p); got != tc.want {
			t.Fatalf("mapKnob(%d, %v) = %d, want %d", tc.q, tc.p, got, tc.want)
		}
	}
}

func TestSeed_BootWithKnobAtZero(t *testing.T) {
	b := newBench(0)
	b.c.seed()

	if got := b.shared.GetLevels(); got != [types.Channels]uint32{0, 0, 0} {
		t.Fatalf("shared levels = %v", got)
	}
	if got := b.shared.GetFrameRate(); got != 100 {
		t.Fatalf("shared frame rate = %d", got)
	}
	if got := b.c.st.levels; got != [types.Channels]uint32{15, 15, 0} {
		t.Fatalf("cached levels = %v", got)
	}
	equalLines(t, b.lines(), showBlock("15", "15", "0", "100"))
	if n := len(b.published()); n != 1 {
		t.Fatalf("seed published %d snapshots, want 1", n)
	}

	// Knob still at zero, no buttons: the first tick changes nothing but the
	// frame rate, which moves to the knob's 10 fps.
	b.c.poll()
	if got := b.shared.GetFrameRate(); got != 10 {
		t.Fatalf("frame rate after first tick = %d", got)
	}
}

func TestPoll_FrameRateSweep(t *testing.T) {
	b := newBench(0)
	b.c.seed()
	b.lines()
	b.published()

	var changed []string
	for q := uint32(0); q < types.Levels; q++ {
		b.knob.q = q
		b.c.poll()
		want := uint64(types.FrameRateMin + q*types.FrameRateStep)
		if got := b.shared.GetFrameRate(); got != want {
			t.Fatalf("q=%d: frame rate = %d, want %d", q, got, want)
		}
		for _, l := range b.lines() {
			if strings.HasPrefix(l, "Frame rate changed to : ") {
				changed = append(changed, l)
			}
		}
		for _, m := range b.published() {
			if m.Topic.At(1) != "frame_rate" {
				t.Fatalf("q=%d: unexpected publish on %v", q, m.Topic)
			}
		}
	}
	if len(changed) != types.Levels {
		t.Fatalf("changes = %q", changed)
	}
	if changed[0] != "Frame rate changed to : 10 fps" || changed[len(changed)-1] != "Frame rate changed to : 160 fps" {
		t.Fatalf("changes = %q", changed)
	}
}

func TestPoll_RedWithBothButtons(t *testing.T) {
	b := newBench(0)
	b.c.seed()
	b.lines()

	b.a.down, b.b.down = true, true
	b.knob.q = 8
	b.c.poll()

	if got := b.shared.GetLevels(); got != [types.Channels]uint32{8, 0, 0} {
		t.Fatalf("shared levels = %v", got)
	}
	if got := b.shared.GetFrameRate(); got != 100 {
		t.Fatalf("frame rate = %d", got)
	}
	want := append([]string{"Now controlling: Red"}, showBlock("15", "15", "0", "100")...)
	want = append(want, showBlock("8", "15", "0", "100")...)
	equalLines(t, b.lines(), want)
}

func TestPoll_ModeSwitch(t *testing.T) {
	b := newBench(5)
	b.c.seed()

	b.a.down = true
	b.c.poll()
	if b.c.st.current != types.ParamBlue {
		t.Fatalf("current = %v", b.c.st.current)
	}
	b.lines()
	b.published()

	// A released: frame rate takes the knob value.
	b.a.down = false
	b.c.poll()
	want := append([]string{"Now controlling: FrameRate"}, showBlock("15", "15", "5", "100")...)
	want = append(want, showBlock("15", "15", "5", "60")...)
	want = append(want, "Frame rate changed to : 60 fps")
	equalLines(t, b.lines(), want)

	// B pressed: green takes the knob value.
	b.b.down = true
	b.c.poll()
	want = append([]string{"Now controlling: Green"}, showBlock("15", "15", "5", "60")...)
	want = append(want, showBlock("15", "5", "5", "60")...)
	equalLines(t, b.lines(), want)

	if got := b.shared.GetLevels(); got != [types.Channels]uint32{0, 5, 5} {
		t.Fatalf("shared levels = %v", got)
	}
	if got := b.shared.GetFrameRate(); got != 60 {
		t.Fatalf("frame rate = %d", got)
	}
}

func TestPoll_PublishOnlyOnChange(t *testing.T) {
	b := newBench(3)
	b.c.seed()
	b.b.down = true
	b.c.poll()
	b.lines()
	b.published()

	for i := 0; i < 20; i++ {
		b.c.poll()
	}
	if msgs := b.published(); len(msgs) != 0 {
		t.Fatalf("%d publishes with a steady knob", len(msgs))
	}
	if l := b.lines(); len(l) != 0 {
		t.Fatalf("log with a steady knob: %q", l)
	}

	b.knob.q = 4
	b.c.poll()
	msgs := b.published()
	if len(msgs) != 1 || msgs[0].Topic.At(1) != "levels" {
		t.Fatalf("publishes = %d", len(msgs))
	}
}

type countingSleeper struct {
	n      int
	period time.Duration
	cancel context.CancelFunc
	after  int
}

func (s *countingSleeper) Sleep(ctx context.Context, d time.Duration) bool {
	s.n++
	s.period = d
	if s.n == s.after {
		s.cancel()
	}
	return ctx.Err() == nil
}

func TestRun_PollsEveryPeriodUntilCancelled(t *testing.T) {
	b := newBench(2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := &countingSleeper{cancel: cancel, after: 5}
	b.c.sleep = s

	b.c.Run(ctx)

	if s.n != 5 {
		t.Fatalf("sleeps = %d, want 5", s.n)
	}
	if s.period != types.UIPollPeriod {
		t.Fatalf("period = %v", s.period)
	}
	if got := b.shared.GetFrameRate(); got != 30 {
		t.Fatalf("frame rate = %d", got)
	}
	if got := b.shared.GetLevels(); got != [types.Channels]uint32{0, 0, 2} {
		t.Fatalf("levels = %v", got)
	}
}
